package domain

import (
	"time"

	"github.com/google/uuid"
)

// IssueID uniquely identifies a published issue.
type IssueID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id IssueID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a UUID string.
func (id IssueID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *IssueID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// IssueKind distinguishes the two content products of a niche.
type IssueKind string

const (
	// IssueNewsletter is a short daily-style briefing built from aggregated
	// news articles.
	IssueNewsletter IssueKind = "newsletter"
	// IssueReport is a longform deep-dive published on a slower cadence.
	IssueReport IssueKind = "report"
)

// Valid reports whether the kind is a known issue kind.
func (k IssueKind) Valid() bool {
	return k == IssueNewsletter || k == IssueReport
}

// Article is a single aggregated news item attached to a newsletter issue.
type Article struct {
	// Source is the publication or feed the article came from.
	Source string `json:"source"`
	// Title is the article headline.
	Title string `json:"title"`
	// URL links to the original article.
	URL string `json:"url"`
	// Summary is the short abstract carried by the feed.
	Summary string `json:"summary,omitempty"`
}

// Issue is a single published newsletter or report for a niche.
// Newsletter issues carry the aggregated articles they were built from;
// report issues carry a longform body instead.
type Issue struct {
	// ID is the unique identifier of the issue.
	ID IssueID `json:"id"`
	// NicheID identifies the niche the issue belongs to.
	NicheID NicheID `json:"nicheId"`

	// Kind is newsletter or report.
	Kind IssueKind `json:"kind"`
	// Title is the issue headline.
	Title string `json:"title"`
	// Summary is the briefing text of a newsletter issue.
	Summary string `json:"summary,omitempty"`
	// Body is the longform content of a report issue.
	Body string `json:"body,omitempty"`
	// Cadence records the rhythm the issue was generated on.
	Cadence Cadence `json:"cadence"`
	// Articles are the aggregated news items a newsletter was built from.
	Articles []Article `json:"articles,omitempty"`

	// PublishedAt is when the issue was published.
	PublishedAt time.Time `json:"publishedAt"`
}
