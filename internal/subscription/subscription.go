// Package subscription implements reader subscriptions to niches, including
// product selection and the revenue metrics refreshed on every change.
package subscription

import (
	"context"
	"fmt"

	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"go.uber.org/zap"
)

//go:generate mockgen -package mocksubscription -source=subscription.go -destination=mock/mocksubscription.go *
type Subscriptions interface {
	// Upsert creates or updates the user's subscription to a niche and
	// refreshes its revenue metrics.
	Upsert(ctx context.Context,
		user domain.User,
		nicheID domain.NicheID,
		wantsNewsletter, wantsReport bool) (*domain.Subscription, error)
	// List returns the user's subscriptions together with their niches.
	List(ctx context.Context, userID domain.UserID) ([]storage.UserSubscription, error)
	// Delete removes a subscription owned by the user.
	Delete(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) error
}

type subscriptions struct {
	storage storage.Storage
	billing billing.Billing
}

// New creates a new Subscriptions instance backed by the provided storage.
func New(strg storage.Storage, bill billing.Billing) Subscriptions {
	return &subscriptions{
		storage: strg,
		billing: bill,
	}
}

// Upsert creates or updates the user's subscription to a niche. The revenue
// split is recomputed from the niche prices and current platform settings.
func (s subscriptions) Upsert(ctx context.Context,
	user domain.User,
	nicheID domain.NicheID,
	wantsNewsletter, wantsReport bool) (*domain.Subscription, error) {
	if !wantsNewsletter && !wantsReport {
		return nil, serrors.With(serrors.ErrBadRequest, "select at least one product")
	}

	niche, err := s.storage.NicheByID(ctx, nicheID)
	if err != nil {
		return nil, fmt.Errorf("could not get niche: %w", err)
	}
	if niche == nil {
		return nil, serrors.With(serrors.ErrNotFound, "niche not found")
	}

	sub, err := s.storage.UpsertSubscription(ctx, domain.Subscription{
		UserID:          user.ID,
		NicheID:         nicheID,
		WantsNewsletter: wantsNewsletter,
		WantsReport:     wantsReport,
		Status:          domain.SubscriptionTrialing,
		CurrencyCode:    niche.CurrencyCode,
		BillingCadence:  niche.NewsletterCadence,
	})
	if err != nil {
		return nil, fmt.Errorf("could not upsert subscription: %w", err)
	}

	updated, err := s.billing.ApplySubscriptionMetrics(ctx, *sub, *niche)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "updated subscription",
		zap.String("user", user.Email),
		zap.String("niche", niche.Name),
		zap.Bool("newsletter", wantsNewsletter),
		zap.Bool("report", wantsReport))

	return updated, nil
}

// List returns the user's subscriptions together with their niches.
func (s subscriptions) List(ctx context.Context,
	userID domain.UserID) ([]storage.UserSubscription, error) {
	subs, err := s.storage.UserSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list subscriptions: %w", err)
	}

	return subs, nil
}

// Delete removes a subscription owned by the user.
func (s subscriptions) Delete(ctx context.Context,
	userID domain.UserID,
	id domain.SubscriptionID) error {
	deleted, err := s.storage.DeleteSubscription(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete subscription: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "subscription not found")
	}

	return nil
}
