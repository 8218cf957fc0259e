package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanID uniquely identifies a creator plan.
type PlanID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id PlanID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a UUID string.
func (id PlanID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *PlanID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// CreatorSubscriptionID uniquely identifies a curator's plan subscription.
type CreatorSubscriptionID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id CreatorSubscriptionID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a UUID string.
func (id CreatorSubscriptionID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a UUID string.
func (id *CreatorSubscriptionID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// PlatformSettings is the singleton monetisation configuration for the
// platform. It controls the fee taken from every subscriber charge before
// the remainder is paid out to the niche curator.
type PlatformSettings struct {
	// FeePercent is the platform's percentage cut of each gross charge.
	FeePercent decimal.Decimal `json:"feePercent"`
	// MinimumFee is the smallest fee charged per billing cycle. It applies
	// whenever the percentage cut of a charge would fall below it.
	MinimumFee decimal.Decimal `json:"minimumFee"`
	// CurrencyCode is the platform's default currency.
	CurrencyCode string `json:"currencyCode"`

	// StripePublishableKey is the optional Stripe key exposed to clients.
	StripePublishableKey string `json:"stripePublishableKey,omitempty"`
	// StripeSecretKey is the optional Stripe secret used server-side. Never serialized.
	StripeSecretKey string `json:"-"`

	// UpdatedAt is when the settings were last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatorPlan is a paid tier that unlocks curation features for a user.
// Plans cap how many niches a curator may own and can discount the platform
// fee applied to their subscriber revenue.
type CreatorPlan struct {
	// ID is the unique identifier of the plan.
	ID PlanID `json:"id"`

	// Slug is the URL-safe identifier of the plan (lowercase, dashed).
	Slug string `json:"slug"`
	// DisplayName is the plan name shown to curators.
	DisplayName string `json:"displayName"`
	// Description is optional marketing copy for the plan.
	Description string `json:"description,omitempty"`
	// MonthlyFee is the recurring charge for the plan itself.
	MonthlyFee decimal.Decimal `json:"monthlyFee"`
	// CurrencyCode is the currency of the monthly fee.
	CurrencyCode string `json:"currencyCode"`
	// StripePriceID links the plan to a Stripe price object, when set.
	StripePriceID string `json:"stripePriceId,omitempty"`
	// MaxNiches caps how many niches a curator on this plan may own. Always >= 1.
	MaxNiches int `json:"maxNiches"`
	// FeatureSummary is a short bullet summary shown on the upgrade screen.
	FeatureSummary string `json:"featureSummary"`
	// FeeDiscountPercent is subtracted from the platform fee percent for
	// revenue earned by curators on this plan.
	FeeDiscountPercent decimal.Decimal `json:"feeDiscountPercent"`

	// CreatedAt is when the plan was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the plan was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatorSubscription links a curator to the plan they are paying for.
type CreatorSubscription struct {
	// ID is the unique identifier of the creator subscription.
	ID CreatorSubscriptionID `json:"id"`
	// UserID identifies the curator.
	UserID UserID `json:"userId"`
	// PlanID identifies the plan subscribed to.
	PlanID PlanID `json:"planId"`

	// Status is the lifecycle state of the plan subscription.
	Status SubscriptionStatus `json:"status"`

	// StartedAt is when the plan subscription began.
	StartedAt time.Time `json:"startedAt"`
	// EndsAt marks the scheduled end of the subscription, when set.
	EndsAt time.Time `json:"endsAt,omitzero"`
}
