package storage

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/shopspring/decimal"
)

// SubscriptionMetrics carries the recomputed revenue split persisted onto a
// subscription row.
type SubscriptionMetrics struct {
	GrossAmount         decimal.Decimal
	PlatformFeeAmount   decimal.Decimal
	CreatorPayoutAmount decimal.Decimal
	CurrencyCode        string
	BillingCadence      domain.Cadence
	Status              domain.SubscriptionStatus
}

// BillingStorage defines persistence for the platform monetisation
// configuration, creator plans and creator subscriptions.
type BillingStorage interface {
	// PlatformSettings returns the singleton settings row, or nil when it has
	// not been created yet.
	PlatformSettings(ctx context.Context) (*domain.PlatformSettings, error)
	// SavePlatformSettings inserts or replaces the singleton settings row and
	// returns it as stored.
	SavePlatformSettings(ctx context.Context, s domain.PlatformSettings) (*domain.PlatformSettings, error)

	// CreatorPlans returns all plans ordered by monthly fee ascending.
	CreatorPlans(ctx context.Context) ([]domain.CreatorPlan, error)
	// CreatorPlanByID fetches a plan by ID. Returns nil when not found.
	CreatorPlanByID(ctx context.Context, id domain.PlanID) (*domain.CreatorPlan, error)
	// StoreCreatorPlan inserts a new plan. A slug collision surfaces as
	// ErrDuplicate.
	StoreCreatorPlan(ctx context.Context, plan domain.CreatorPlan) (*domain.CreatorPlan, error)
	// UpdateCreatorPlan replaces the mutable fields of an existing plan and
	// returns the updated row, or nil when the plan does not exist.
	UpdateCreatorPlan(ctx context.Context, plan domain.CreatorPlan) (*domain.CreatorPlan, error)

	// ActiveCreatorSubscription returns the newest active or trialing plan
	// subscription for the user, or nil when they have none.
	ActiveCreatorSubscription(ctx context.Context, userID domain.UserID) (*domain.CreatorSubscription, error)
	// StoreCreatorSubscription inserts a creator subscription and returns the
	// stored row.
	StoreCreatorSubscription(ctx context.Context,
		sub domain.CreatorSubscription) (*domain.CreatorSubscription, error)

	// UpdateSubscriptionMetrics writes the revenue split fields onto a
	// subscription row and returns the updated row, or nil when the
	// subscription does not exist.
	UpdateSubscriptionMetrics(ctx context.Context,
		id domain.SubscriptionID,
		metrics SubscriptionMetrics) (*domain.Subscription, error)
}
