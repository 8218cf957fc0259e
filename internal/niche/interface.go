package niche

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/storage"
)

//go:generate mockgen -package mockniche -source=interface.go -destination=mock/mockniche.go *
type Niches interface {
	// List returns all niches ordered alphabetically.
	List(ctx context.Context) ([]domain.Niche, error)
	// ByID fetches a single niche. A not-found error is returned when no
	// niche matches.
	ByID(ctx context.Context, id domain.NicheID) (*domain.Niche, error)
	// Create persists a new niche owned by the given curator, enforcing the
	// niche allowance of their plan.
	Create(ctx context.Context, owner domain.User, input Input) (*domain.Niche, error)
	// Update applies partial updates to a niche the user is allowed to
	// manage.
	Update(ctx context.Context,
		user domain.User,
		id domain.NicheID,
		updates storage.NicheUpdates) (*domain.Niche, error)
	// Delete removes a niche the user is allowed to manage together with its
	// dependent subscriptions, issues and articles.
	Delete(ctx context.Context, user domain.User, id domain.NicheID) error
}
