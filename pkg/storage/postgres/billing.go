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
	platformSettingsTable     = "platform_settings"
	creatorPlansTable         = "creator_plans"
	creatorSubscriptionsTable = "creator_subscriptions"
)

// PlatformSettings returns the singleton settings row, or nil when it has not
// been created yet.
func (p *PgSQL) PlatformSettings(ctx context.Context) (*domain.PlatformSettings, error) {
	var row PgPlatformSettings
	found, err := p.Builder.From(platformSettingsTable).
		Where(goqu.I("id").Eq(1)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch platform settings from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SavePlatformSettings inserts or replaces the singleton settings row and
// returns it as stored.
func (p *PgSQL) SavePlatformSettings(ctx context.Context,
	s domain.PlatformSettings) (*domain.PlatformSettings, error) {
	var row PgPlatformSettings
	row.FromDomain(s)

	var result PgPlatformSettings
	found, err := p.Builder.Insert(platformSettingsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"fee_percent":            row.FeePercent,
			"minimum_fee":            row.MinimumFee,
			"currency_code":          row.CurrencyCode,
			"stripe_publishable_key": row.StripePublishableKey,
			"stripe_secret_key":      row.StripeSecretKey,
			"updated_at":             goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgPlatformSettings{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not save platform settings into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not save platform settings into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// CreatorPlans returns all plans ordered by monthly fee ascending.
func (p *PgSQL) CreatorPlans(ctx context.Context) ([]domain.CreatorPlan, error) {
	var rows []PgCreatorPlan
	if err := p.Builder.From(creatorPlansTable).
		Order(goqu.I("monthly_fee").Asc(), goqu.I("slug").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch creator plans from pg: %w", err)
	}

	out := make([]domain.CreatorPlan, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// CreatorPlanByID returns a plan by its ID. Returns nil when not found.
func (p *PgSQL) CreatorPlanByID(ctx context.Context, id domain.PlanID) (*domain.CreatorPlan, error) {
	var row PgCreatorPlan
	found, err := p.Builder.From(creatorPlansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch creator plan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreCreatorPlan(ctx context.Context,
	plan domain.CreatorPlan) (*domain.CreatorPlan, error) {
	var row PgCreatorPlan
	row.FromDomain(plan)

	var result PgCreatorPlan
	found, err := p.Builder.Insert(creatorPlansTable).
		Rows(row).
		Returning(&PgCreatorPlan{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store creator plan into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store creator plan into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// UpdateCreatorPlan replaces the mutable fields of an existing plan and
// returns the updated row, or nil when the plan does not exist.
func (p *PgSQL) UpdateCreatorPlan(ctx context.Context,
	plan domain.CreatorPlan) (*domain.CreatorPlan, error) {
	var row PgCreatorPlan
	row.FromDomain(plan)

	var result PgCreatorPlan
	found, err := p.Builder.Update(creatorPlansTable).
		Set(goqu.Record{
			"slug":                 row.Slug,
			"display_name":         row.DisplayName,
			"description":          row.Description,
			"monthly_fee":          row.MonthlyFee,
			"currency_code":        row.CurrencyCode,
			"stripe_price_id":      row.StripePriceID,
			"max_niches":           row.MaxNiches,
			"feature_summary":      row.FeatureSummary,
			"fee_discount_percent": row.FeeDiscountPercent,
			"updated_at":           goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgCreatorPlan{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update creator plan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain(), nil
}

// ActiveCreatorSubscription returns the newest active or trialing plan
// subscription for the user, or nil when they have none.
func (p *PgSQL) ActiveCreatorSubscription(ctx context.Context,
	userID domain.UserID) (*domain.CreatorSubscription, error) {
	var row PgCreatorSubscription
	found, err := p.Builder.From(creatorSubscriptionsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").In(
				string(domain.SubscriptionActive),
				string(domain.SubscriptionTrialing),
			),
		).
		Order(goqu.I("started_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active creator subscription: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreCreatorSubscription(ctx context.Context,
	sub domain.CreatorSubscription) (*domain.CreatorSubscription, error) {
	var row PgCreatorSubscription
	row.FromDomain(sub)

	var result PgCreatorSubscription
	found, err := p.Builder.Insert(creatorSubscriptionsTable).
		Rows(row).
		Returning(&PgCreatorSubscription{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store creator subscription into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store creator subscription into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// UpdateSubscriptionMetrics writes the recomputed revenue split onto a
// subscription row and returns the updated row, or nil when the subscription
// does not exist.
func (p *PgSQL) UpdateSubscriptionMetrics(ctx context.Context,
	id domain.SubscriptionID,
	metrics storage.SubscriptionMetrics) (*domain.Subscription, error) {
	var row PgSubscription
	found, err := p.Builder.Update(subscriptionsTable).
		Set(goqu.Record{
			"gross_amount":          metrics.GrossAmount,
			"platform_fee_amount":   metrics.PlatformFeeAmount,
			"creator_payout_amount": metrics.CreatorPayoutAmount,
			"currency_code":         metrics.CurrencyCode,
			"billing_cadence":       string(metrics.BillingCadence),
			"status":                string(metrics.Status),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update subscription metrics in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
