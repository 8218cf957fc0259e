package storage

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

// IssueFilter narrows issue listings.
type IssueFilter struct {
	// Kind restricts results to newsletters or reports when non-empty.
	Kind domain.IssueKind
	// Limit caps the number of rows returned. Zero means no cap.
	Limit uint
}

// IssueStorage defines persistence operations for published issues and their
// aggregated articles.
type IssueStorage interface {
	// StoreIssue inserts an issue together with its articles and returns the
	// stored row including generated fields.
	StoreIssue(ctx context.Context, issue domain.Issue) (*domain.Issue, error)
	// IssueByID fetches an issue with its articles. Returns nil when not
	// found.
	IssueByID(ctx context.Context, id domain.IssueID) (*domain.Issue, error)
	// NicheIssues returns issues for a niche ordered by published_at
	// descending, optionally filtered by kind.
	NicheIssues(ctx context.Context, nicheID domain.NicheID, filter IssueFilter) ([]domain.Issue, error)
}
