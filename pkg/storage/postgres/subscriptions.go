package postgres

import (
	"context"
	"fmt"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	subscriptionsTable = "subscriptions"
)

// UpsertSubscription inserts or refreshes the unique (user, niche)
// subscription row and returns it as stored.
func (p *PgSQL) UpsertSubscription(ctx context.Context,
	sub domain.Subscription) (*domain.Subscription, error) {
	var row PgSubscription
	row.FromDomain(sub)

	var result PgSubscription
	found, err := p.Builder.Insert(subscriptionsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id, niche_id", goqu.Record{
			"wants_newsletter":      row.WantsNewsletter,
			"wants_report":          row.WantsReport,
			"status":                row.Status,
			"gross_amount":          row.GrossAmount,
			"platform_fee_amount":   row.PlatformFeeAmount,
			"creator_payout_amount": row.CreatorPayoutAmount,
			"currency_code":         row.CurrencyCode,
			"billing_cadence":       row.BillingCadence,
			"expires_at":            row.ExpiresAt,
		})).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not upsert subscription into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not upsert subscription into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// SubscriptionByID returns a subscription owned by the given user. Returns
// nil when not found.
func (p *PgSQL) SubscriptionByID(ctx context.Context,
	userID domain.UserID,
	id domain.SubscriptionID) (*domain.Subscription, error) {
	var row PgSubscription
	found, err := p.Builder.From(subscriptionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscription by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SubscriptionByUserAndNiche returns the unique subscription for the
// (user, niche) pair. Returns nil when none exists.
func (p *PgSQL) SubscriptionByUserAndNiche(ctx context.Context,
	userID domain.UserID,
	nicheID domain.NicheID) (*domain.Subscription, error) {
	var row PgSubscription
	found, err := p.Builder.From(subscriptionsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("niche_id").Eq(uuid.UUID(nicheID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscription by user and niche: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserSubscriptions returns the user's subscriptions paired with their
// niches, newest first.
func (p *PgSQL) UserSubscriptions(ctx context.Context,
	userID domain.UserID) ([]storage.UserSubscription, error) {
	var rows []PgSubscription
	if err := p.Builder.From(subscriptionsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("started_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user subscriptions from pg: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	nicheIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		nicheIDs = append(nicheIDs, rows[i].NicheID)
	}

	var nicheRows []PgNiche
	if err := p.Builder.From(nichesTable).
		Where(goqu.I("id").In(nicheIDs)).
		Executor().ScanStructsContext(ctx, &nicheRows); err != nil {
		return nil, fmt.Errorf("could not fetch subscription niches from pg: %w", err)
	}

	niches := make(map[uuid.UUID]*PgNiche, len(nicheRows))
	for i := range nicheRows {
		niches[nicheRows[i].ID] = &nicheRows[i]
	}

	out := make([]storage.UserSubscription, 0, len(rows))
	for i := range rows {
		niche, ok := niches[rows[i].NicheID]
		if !ok {
			// niche deleted from under the subscription, skip the orphan
			continue
		}

		out = append(out, storage.UserSubscription{
			Subscription: *rows[i].ToDomain(),
			Niche:        *niche.ToDomain(),
		})
	}

	return out, nil
}

// DeleteSubscription removes a subscription owned by the given user and
// returns the deleted row, or nil when it was not found.
func (p *PgSQL) DeleteSubscription(ctx context.Context,
	userID domain.UserID,
	id domain.SubscriptionID) (*domain.Subscription, error) {
	var row PgSubscription
	found, err := p.Builder.Delete(subscriptionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete subscription in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
