package billing

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -package mockbilling -source=interface.go -destination=mock/mockbilling.go *
type Billing interface {
	// Settings returns the platform monetisation settings, creating the
	// defaults row on first call.
	Settings(ctx context.Context) (*domain.PlatformSettings, error)
	// UpdateSettings replaces the platform monetisation settings.
	UpdateSettings(ctx context.Context, update SettingsUpdate) (*domain.PlatformSettings, error)

	// Plans returns all curator plans ordered by monthly fee ascending.
	Plans(ctx context.Context) ([]domain.CreatorPlan, error)
	// UpsertPlan creates a new plan, or updates the plan named by
	// input.ID when it is set.
	UpsertPlan(ctx context.Context, input PlanInput) (*domain.CreatorPlan, error)

	// ActivePlan returns the plan behind the user's newest active or
	// trialing creator subscription, or nil when they have none.
	ActivePlan(ctx context.Context, userID domain.UserID) (*domain.CreatorPlan, error)
	// SubscribeToPlan starts a creator subscription for the user and mirrors
	// the resulting privileges onto their account.
	SubscribeToPlan(ctx context.Context,
		userID domain.UserID,
		planID domain.PlanID) (*domain.CreatorSubscription, error)
	// AttachCreatorPrivileges makes the user's role and premium flag mirror
	// the state of their creator plan.
	AttachCreatorPrivileges(ctx context.Context, userID domain.UserID) (*domain.User, error)

	// ApplySubscriptionMetrics recomputes the revenue split for a reader
	// subscription and persists it.
	ApplySubscriptionMetrics(ctx context.Context,
		sub domain.Subscription,
		niche domain.Niche) (*domain.Subscription, error)
}

// SettingsUpdate carries replacement values for the platform settings row.
type SettingsUpdate struct {
	FeePercent           decimal.Decimal
	MinimumFee           decimal.Decimal
	CurrencyCode         string
	StripePublishableKey string
	StripeSecretKey      string
}

// PlanInput carries the fields of a curator plan create or update.
type PlanInput struct {
	// ID selects an existing plan to update. Nil creates a new plan.
	ID                 *domain.PlanID
	Slug               string
	DisplayName        string
	Description        string
	MonthlyFee         decimal.Decimal
	CurrencyCode       string
	StripePriceID      string
	MaxNiches          int
	FeatureSummary     string
	FeeDiscountPercent decimal.Decimal
}
