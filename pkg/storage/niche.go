package storage

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/shopspring/decimal"
)

// NicheUpdates describes optional fields applied to an existing niche.
// Only non-nil fields are changed; updated_at is always set.
type NicheUpdates struct {
	Name                *string
	ShortDescription    *string
	DetailedDescription *string
	SplashImageURL      *string
	NewsletterPrice     *decimal.Decimal
	ReportPrice         *decimal.Decimal
	CurrencyCode        *string
	NewsletterCadence   *domain.Cadence
	ReportCadence       *domain.Cadence
	VoiceInstructions   *string
	StyleGuide          *string
}

// NicheDeletion reports the dependent rows removed alongside a niche.
type NicheDeletion struct {
	Subscriptions int64
	Issues        int64
	Articles      int64
}

// NicheStorage defines persistence operations for niches.
type NicheStorage interface {
	// StoreNiche inserts a new niche and returns the stored row. A name
	// collision (case-insensitive) surfaces as ErrDuplicate.
	StoreNiche(ctx context.Context, niche domain.Niche) (*domain.Niche, error)
	// NicheByID fetches a niche by ID. Returns nil when not found.
	NicheByID(ctx context.Context, id domain.NicheID) (*domain.Niche, error)
	// NicheByName fetches a niche by name, matched case-insensitively.
	// Returns nil when not found.
	NicheByName(ctx context.Context, name string) (*domain.Niche, error)
	// Niches returns all niches ordered by lower(name) ascending.
	Niches(ctx context.Context) ([]domain.Niche, error)
	// UpdateNiche applies the provided field set and returns the updated row,
	// or nil when the niche does not exist.
	UpdateNiche(ctx context.Context, id domain.NicheID, updates NicheUpdates) (*domain.Niche, error)
	// DeleteNiche removes a niche together with its dependent subscriptions,
	// issues and articles, and reports what was removed. The schema carries
	// no cascades, so callers should run this inside a transaction.
	DeleteNiche(ctx context.Context, id domain.NicheID) (*NicheDeletion, error)
	// NicheCountByOwner returns how many niches the given user owns.
	NicheCountByOwner(ctx context.Context, ownerID domain.UserID) (int64, error)
}
