package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionID uniquely identifies a reader subscription.
type SubscriptionID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id SubscriptionID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a UUID string.
func (id SubscriptionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a UUID string.
func (id *SubscriptionID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// SubscriptionStatus is the billing lifecycle state of a subscription.
type SubscriptionStatus string

const (
	// SubscriptionTrialing is the state of a subscription with no paid
	// products selected (gross amount is zero).
	SubscriptionTrialing SubscriptionStatus = "trialing"
	// SubscriptionActive is the state of a subscription that is being billed.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionCanceled marks a subscription that has been ended.
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription links a user to a niche together with the products they have
// selected and the revenue split computed for the current billing cycle.
// There is at most one subscription per (user, niche) pair.
type Subscription struct {
	// ID is the unique identifier of the subscription.
	ID SubscriptionID `json:"id"`
	// UserID identifies the subscribing user.
	UserID UserID `json:"userId"`
	// NicheID identifies the niche subscribed to.
	NicheID NicheID `json:"nicheId"`

	// WantsNewsletter is true when the user receives the newsletter product.
	WantsNewsletter bool `json:"wantsNewsletter"`
	// WantsReport is true when the user receives the report product.
	WantsReport bool `json:"wantsReport"`

	// Status is the billing lifecycle state of the subscription.
	Status SubscriptionStatus `json:"status"`
	// GrossAmount is the recurring amount charged to the subscriber.
	GrossAmount decimal.Decimal `json:"grossAmount"`
	// PlatformFeeAmount is the platform's cut of the gross amount.
	PlatformFeeAmount decimal.Decimal `json:"platformFeeAmount"`
	// CreatorPayoutAmount is the remainder paid out to the niche curator.
	CreatorPayoutAmount decimal.Decimal `json:"creatorPayoutAmount"`
	// CurrencyCode is the currency the amounts are denominated in.
	CurrencyCode string `json:"currencyCode"`
	// BillingCadence records the recurring charge rhythm for the split.
	BillingCadence Cadence `json:"billingCadence"`

	// StartedAt is when the subscription was first created.
	StartedAt time.Time `json:"startedAt"`
	// ExpiresAt marks the end of the current paid period, when set.
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}
