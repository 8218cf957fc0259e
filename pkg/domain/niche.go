package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NicheID uniquely identifies a niche.
type NicheID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id NicheID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a UUID string.
func (id NicheID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *NicheID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Cadence is the publication rhythm of newsletters and reports for a niche.
type Cadence string

const (
	CadenceDaily     Cadence = "daily"
	CadenceWeekly    Cadence = "weekly"
	CadenceMonthly   Cadence = "monthly"
	CadenceQuarterly Cadence = "quarterly"
)

// Valid reports whether the cadence is one of the supported rhythms.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceQuarterly:
		return true
	}

	return false
}

// Niche represents an industry content vertical curated by a niche admin.
// Pricing, cadence and the AI guidance fields (voice and style) are all
// configured per niche by its owner.
type Niche struct {
	// ID is the unique identifier of the niche.
	ID NicheID `json:"id"`
	// OwnerID identifies the curator who owns this niche. It is nil for
	// platform-seeded niches without an owner.
	OwnerID *UserID `json:"ownerId,omitempty"`

	// Name is the unique (case-insensitive) display name.
	Name string `json:"name"`
	// ShortDescription is shown on the niche catalogue.
	ShortDescription string `json:"shortDescription"`
	// DetailedDescription is the longform marketing copy for the niche page.
	DetailedDescription string `json:"detailedDescription,omitempty"`
	// SplashImageURL is an optional hero image for the niche page.
	SplashImageURL string `json:"splashImageUrl,omitempty"`

	// NewsletterPrice is the recurring price for the newsletter product.
	NewsletterPrice decimal.Decimal `json:"newsletterPrice"`
	// ReportPrice is the recurring price for the longform report product.
	ReportPrice decimal.Decimal `json:"reportPrice"`
	// CurrencyCode is the ISO 4217 code prices are denominated in.
	CurrencyCode string `json:"currencyCode"`
	// NewsletterCadence controls how often newsletter issues are generated.
	NewsletterCadence Cadence `json:"newsletterCadence"`
	// ReportCadence controls how often report issues are generated.
	ReportCadence Cadence `json:"reportCadence"`

	// VoiceInstructions guide the tone of AI-generated content.
	VoiceInstructions string `json:"voiceInstructions,omitempty"`
	// StyleGuide guides the structure and formatting of AI-generated content.
	StyleGuide string `json:"styleGuide,omitempty"`

	// CreatedAt is when the niche was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the niche was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
