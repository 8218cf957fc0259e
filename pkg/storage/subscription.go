package storage

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

// UserSubscription pairs a subscription with the niche it belongs to, as
// needed by the subscription management views.
type UserSubscription struct {
	Subscription domain.Subscription
	Niche        domain.Niche
}

// SubscriptionStorage defines persistence operations for reader
// subscriptions.
type SubscriptionStorage interface {
	// UpsertSubscription inserts or updates the (user, niche) subscription
	// row and returns it as stored.
	UpsertSubscription(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error)
	// SubscriptionByID fetches a subscription owned by the given user.
	// Returns nil when not found.
	SubscriptionByID(ctx context.Context,
		userID domain.UserID,
		id domain.SubscriptionID) (*domain.Subscription, error)
	// SubscriptionByUserAndNiche fetches the unique subscription for the
	// (user, niche) pair. Returns nil when none exists.
	SubscriptionByUserAndNiche(ctx context.Context,
		userID domain.UserID,
		nicheID domain.NicheID) (*domain.Subscription, error)
	// UserSubscriptions returns the user's subscriptions joined with their
	// niches, ordered by start time descending.
	UserSubscriptions(ctx context.Context, userID domain.UserID) ([]UserSubscription, error)
	// DeleteSubscription removes a subscription owned by the given user and
	// returns the deleted row, or nil when it was not found.
	DeleteSubscription(ctx context.Context,
		userID domain.UserID,
		id domain.SubscriptionID) (*domain.Subscription, error)
}
