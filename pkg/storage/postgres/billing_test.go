package postgres_test

import (
	"context"
	"testing"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_PlatformSettings(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	got, err := pgSQL.PlatformSettings(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	saved, err := pgSQL.SavePlatformSettings(ctx, domain.PlatformSettings{
		FeePercent:   decimal.RequireFromString("15.00"),
		MinimumFee:   decimal.RequireFromString("1.00"),
		CurrencyCode: "GBP",
	})
	require.NoError(t, err)
	require.True(t, saved.FeePercent.Equal(decimal.RequireFromString("15.00")))

	// saving again replaces the singleton row
	saved, err = pgSQL.SavePlatformSettings(ctx, domain.PlatformSettings{
		FeePercent:      decimal.RequireFromString("12.50"),
		MinimumFee:      decimal.RequireFromString("0.50"),
		CurrencyCode:    "USD",
		StripeSecretKey: "sk_test_123",
	})
	require.NoError(t, err)
	require.True(t, saved.FeePercent.Equal(decimal.RequireFromString("12.50")))
	require.Equal(t, "sk_test_123", saved.StripeSecretKey)

	got, err = pgSQL.PlatformSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "USD", got.CurrencyCode)
}

func TestPgSQL_CreatorPlans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	pro, err := pgSQL.StoreCreatorPlan(ctx, domain.CreatorPlan{
		Slug:               "pro",
		DisplayName:        "Pro",
		MonthlyFee:         decimal.RequireFromString("29.00"),
		CurrencyCode:       "GBP",
		MaxNiches:          10,
		FeeDiscountPercent: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)

	_, err = pgSQL.StoreCreatorPlan(ctx, domain.CreatorPlan{
		Slug:         "starter",
		DisplayName:  "Starter",
		MonthlyFee:   decimal.RequireFromString("9.00"),
		CurrencyCode: "GBP",
		MaxNiches:    1,
	})
	require.NoError(t, err)

	t.Run("duplicate slug", func(t *testing.T) {
		_, err := pgSQL.StoreCreatorPlan(ctx, domain.CreatorPlan{
			Slug:         "pro",
			DisplayName:  "Pro again",
			MonthlyFee:   decimal.RequireFromString("30.00"),
			CurrencyCode: "GBP",
			MaxNiches:    1,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("ordered by fee", func(t *testing.T) {
		plans, err := pgSQL.CreatorPlans(ctx)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		require.Equal(t, "starter", plans[0].Slug)
		require.Equal(t, "pro", plans[1].Slug)
	})

	t.Run("update plan", func(t *testing.T) {
		pro.MaxNiches = 25
		updated, err := pgSQL.UpdateCreatorPlan(ctx, *pro)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, 25, updated.MaxNiches)
	})
}

func TestPgSQL_ActiveCreatorSubscription(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        "plans@example.com",
		FullName:     "Plan Holder",
		PasswordHash: "hash",
		Role:         domain.RoleNicheAdmin,
	})
	require.NoError(t, err)

	plan, err := pgSQL.StoreCreatorPlan(ctx, domain.CreatorPlan{
		Slug:         "growth",
		DisplayName:  "Growth",
		MonthlyFee:   decimal.RequireFromString("19.00"),
		CurrencyCode: "GBP",
		MaxNiches:    5,
	})
	require.NoError(t, err)

	got, err := pgSQL.ActiveCreatorSubscription(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = pgSQL.StoreCreatorSubscription(ctx, domain.CreatorSubscription{
		UserID: user.ID,
		PlanID: plan.ID,
		Status: domain.SubscriptionActive,
	})
	require.NoError(t, err)

	got, err = pgSQL.ActiveCreatorSubscription(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, plan.ID, got.PlanID)
}

func TestPgSQL_UpdateSubscriptionMetrics(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        "metrics@example.com",
		FullName:     "Metrics",
		PasswordHash: "hash",
		Role:         domain.RoleSubscriber,
	})
	require.NoError(t, err)

	niche, err := pgSQL.StoreNiche(ctx, testNiche("Quant Finance"))
	require.NoError(t, err)

	sub, err := pgSQL.UpsertSubscription(ctx, domain.Subscription{
		UserID:         user.ID,
		NicheID:        niche.ID,
		WantsReport:    true,
		Status:         domain.SubscriptionActive,
		CurrencyCode:   "GBP",
		BillingCadence: domain.CadenceMonthly,
	})
	require.NoError(t, err)

	updated, err := pgSQL.UpdateSubscriptionMetrics(ctx, sub.ID, storage.SubscriptionMetrics{
		GrossAmount:         decimal.RequireFromString("9.99"),
		PlatformFeeAmount:   decimal.RequireFromString("1.50"),
		CreatorPayoutAmount: decimal.RequireFromString("8.49"),
		CurrencyCode:        "GBP",
		BillingCadence:      domain.CadenceMonthly,
		Status:              domain.SubscriptionActive,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.GrossAmount.Equal(decimal.RequireFromString("9.99")))
	require.True(t, updated.CreatorPayoutAmount.Equal(decimal.RequireFromString("8.49")))

	t.Run("missing subscription", func(t *testing.T) {
		got, err := pgSQL.UpdateSubscriptionMetrics(ctx, domain.SubscriptionID{}, storage.SubscriptionMetrics{
			CurrencyCode:   "GBP",
			BillingCadence: domain.CadenceMonthly,
			Status:         domain.SubscriptionActive,
		})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
