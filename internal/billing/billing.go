package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aboldguess/Nichifier/internal/config"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options hold the monetisation defaults seeded into the settings row when
// none exists yet.
type Options struct {
	DefaultFeePercent decimal.Decimal
	DefaultMinimumFee decimal.Decimal
	DefaultCurrency   string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	feePercent, err := decimal.NewFromString(cfg.Billing.DefaultFeePercent)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse default fee percent: %w", err)
	}
	minimumFee, err := decimal.NewFromString(cfg.Billing.DefaultMinimumFee)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse default minimum fee: %w", err)
	}

	return Options{
		DefaultFeePercent: feePercent,
		DefaultMinimumFee: minimumFee,
		DefaultCurrency:   cfg.Billing.DefaultCurrency,
	}, nil
}

// billing is the concrete implementation of the Billing interface.
type billing struct {
	options Options
	storage storage.Storage
}

// New creates a new Billing instance backed by the provided storage.
func New(strg storage.Storage, options Options) Billing {
	return &billing{
		options: options,
		storage: strg,
	}
}

// quantize rounds monetary values to two decimal places, halves away from
// zero.
func quantize(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// NormalizeSlug lowercases a plan slug and turns spaces into dashes.
func NormalizeSlug(slug string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(slug)), " ", "-")
}

// SubscriptionGross computes the gross recurring amount for a subscriber
// based on the products they chose.
func SubscriptionGross(niche domain.Niche, wantsNewsletter, wantsReport bool) decimal.Decimal {
	gross := decimal.Zero
	if wantsNewsletter {
		gross = gross.Add(niche.NewsletterPrice)
	}
	if wantsReport {
		gross = gross.Add(niche.ReportPrice)
	}

	return quantize(gross)
}

// RevenueSplit returns (platform fee, creator payout) for a gross amount.
// The plan's fee discount lowers the percentage but never below zero, and the
// configured minimum fee applies to any non-zero gross.
func RevenueSplit(gross decimal.Decimal,
	settings domain.PlatformSettings,
	plan *domain.CreatorPlan) (decimal.Decimal, decimal.Decimal) {
	if !gross.IsPositive() {
		return decimal.Zero, decimal.Zero
	}

	feePercent := settings.FeePercent
	if plan != nil && plan.FeeDiscountPercent.IsPositive() {
		feePercent = settings.FeePercent.Sub(plan.FeeDiscountPercent)
		if feePercent.IsNegative() {
			feePercent = decimal.Zero
		}
	}

	fee := gross.Mul(feePercent).Div(decimal.NewFromInt(100))
	if fee.LessThan(settings.MinimumFee) {
		fee = settings.MinimumFee
	}
	fee = quantize(fee)

	return fee, quantize(gross.Sub(fee))
}

// Settings returns the platform monetisation settings, creating the defaults
// row on first call.
func (b billing) Settings(ctx context.Context) (*domain.PlatformSettings, error) {
	settings, err := b.storage.PlatformSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get platform settings: %w", err)
	}
	if settings != nil {
		return settings, nil
	}

	created, err := b.storage.SavePlatformSettings(ctx, domain.PlatformSettings{
		FeePercent:   b.options.DefaultFeePercent,
		MinimumFee:   b.options.DefaultMinimumFee,
		CurrencyCode: b.options.DefaultCurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create default platform settings: %w", err)
	}

	logger.Info(ctx, "created default monetisation settings",
		zap.String("feePercent", created.FeePercent.String()),
		zap.String("minimumFee", created.MinimumFee.String()),
		zap.String("currency", created.CurrencyCode))

	return created, nil
}

// UpdateSettings replaces the platform monetisation settings.
func (b billing) UpdateSettings(ctx context.Context,
	update SettingsUpdate) (*domain.PlatformSettings, error) {
	if update.FeePercent.IsNegative() || update.MinimumFee.IsNegative() {
		return nil, serrors.With(serrors.ErrBadRequest, "fees cannot be negative")
	}

	saved, err := b.storage.SavePlatformSettings(ctx, domain.PlatformSettings{
		FeePercent:           quantize(update.FeePercent),
		MinimumFee:           quantize(update.MinimumFee),
		CurrencyCode:         strings.ToUpper(update.CurrencyCode),
		StripePublishableKey: update.StripePublishableKey,
		StripeSecretKey:      update.StripeSecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not save platform settings: %w", err)
	}

	logger.Info(ctx, "updated monetisation settings",
		zap.String("feePercent", saved.FeePercent.String()),
		zap.String("minimumFee", saved.MinimumFee.String()),
		zap.String("currency", saved.CurrencyCode))

	return saved, nil
}

// Plans returns all curator plans ordered by monthly fee ascending.
func (b billing) Plans(ctx context.Context) ([]domain.CreatorPlan, error) {
	plans, err := b.storage.CreatorPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list creator plans: %w", err)
	}

	return plans, nil
}

// UpsertPlan creates a new plan, or updates the plan named by input.ID.
func (b billing) UpsertPlan(ctx context.Context, input PlanInput) (*domain.CreatorPlan, error) {
	plan := domain.CreatorPlan{
		Slug:               NormalizeSlug(input.Slug),
		DisplayName:        strings.TrimSpace(input.DisplayName),
		Description:        strings.TrimSpace(input.Description),
		MonthlyFee:         quantize(input.MonthlyFee),
		CurrencyCode:       strings.ToUpper(input.CurrencyCode),
		StripePriceID:      strings.TrimSpace(input.StripePriceID),
		MaxNiches:          max(1, input.MaxNiches),
		FeatureSummary:     strings.TrimSpace(input.FeatureSummary),
		FeeDiscountPercent: quantize(input.FeeDiscountPercent),
	}
	if plan.Slug == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "plan slug is required")
	}
	if plan.DisplayName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "plan display name is required")
	}

	var (
		saved *domain.CreatorPlan
		err   error
	)
	if input.ID == nil {
		saved, err = b.storage.StoreCreatorPlan(ctx, plan)
	} else {
		plan.ID = *input.ID
		saved, err = b.storage.UpdateCreatorPlan(ctx, plan)
	}
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "plan slug is already taken")
		}

		return nil, fmt.Errorf("could not upsert creator plan: %w", err)
	}
	if saved == nil {
		return nil, serrors.With(serrors.ErrNotFound, "creator plan not found")
	}

	logger.Info(ctx, "upserted creator plan", zap.String("slug", saved.Slug))

	return saved, nil
}

// ActivePlan returns the plan behind the user's newest active or trialing
// creator subscription, or nil when they have none.
func (b billing) ActivePlan(ctx context.Context,
	userID domain.UserID) (*domain.CreatorPlan, error) {
	sub, err := b.storage.ActiveCreatorSubscription(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get active creator subscription: %w", err)
	}
	if sub == nil {
		return nil, nil
	}

	plan, err := b.storage.CreatorPlanByID(ctx, sub.PlanID)
	if err != nil {
		return nil, fmt.Errorf("could not get creator plan: %w", err)
	}

	return plan, nil
}

// SubscribeToPlan starts a creator subscription and mirrors the resulting
// privileges onto the user in the same transaction.
func (b billing) SubscribeToPlan(ctx context.Context,
	userID domain.UserID,
	planID domain.PlanID) (*domain.CreatorSubscription, error) {
	var created *domain.CreatorSubscription
	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plan, err := tx.CreatorPlanByID(ctx, planID)
		if err != nil {
			return fmt.Errorf("could not get creator plan: %w", err)
		}
		if plan == nil {
			return serrors.With(serrors.ErrNotFound, "creator plan not found")
		}

		created, err = tx.StoreCreatorSubscription(ctx, domain.CreatorSubscription{
			UserID: userID,
			PlanID: planID,
			Status: domain.SubscriptionActive,
		})
		if err != nil {
			return fmt.Errorf("could not store creator subscription: %w", err)
		}

		if _, err := mirrorPrivileges(ctx, tx, userID, plan); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not subscribe to plan: %w", err)
	}

	return created, nil
}

// AttachCreatorPrivileges makes the user's role and premium flag mirror the
// state of their creator plan. Admin accounts keep their role.
func (b billing) AttachCreatorPrivileges(ctx context.Context,
	userID domain.UserID) (*domain.User, error) {
	plan, err := b.ActivePlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	return mirrorPrivileges(ctx, b.storage, userID, plan)
}

func mirrorPrivileges(ctx context.Context,
	strg storage.AllStorage,
	userID domain.UserID,
	activePlan *domain.CreatorPlan) (*domain.User, error) {
	user, err := strg.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	role := domain.RoleSubscriber
	if activePlan != nil {
		role = domain.RoleNicheAdmin
	}
	if user.Role == domain.RoleAdmin {
		role = domain.RoleAdmin
	}
	premium := activePlan != nil || role == domain.RoleAdmin

	updated, err := strg.UpdateUser(ctx, userID, storage.UserUpdates{
		Role:    &role,
		Premium: &premium,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update user privileges: %w", err)
	}

	logger.Info(ctx, "mirrored creator privileges onto user",
		zap.String("email", user.Email),
		zap.String("role", string(role)),
		zap.Bool("premium", premium))

	return updated, nil
}

// ApplySubscriptionMetrics recomputes the revenue split for a reader
// subscription and persists it. The subscription goes active when it carries
// a charge and trialing otherwise.
func (b billing) ApplySubscriptionMetrics(ctx context.Context,
	sub domain.Subscription,
	niche domain.Niche) (*domain.Subscription, error) {
	settings, err := b.Settings(ctx)
	if err != nil {
		return nil, err
	}

	var plan *domain.CreatorPlan
	if niche.OwnerID != nil {
		plan, err = b.ActivePlan(ctx, *niche.OwnerID)
		if err != nil {
			return nil, err
		}
	}

	gross := SubscriptionGross(niche, sub.WantsNewsletter, sub.WantsReport)
	fee, payout := RevenueSplit(gross, *settings, plan)

	status := domain.SubscriptionTrialing
	if gross.IsPositive() {
		status = domain.SubscriptionActive
	}

	currency := niche.CurrencyCode
	if currency == "" {
		currency = settings.CurrencyCode
	}

	cadence := niche.NewsletterCadence
	if !sub.WantsNewsletter && sub.WantsReport {
		cadence = niche.ReportCadence
	}

	updated, err := b.storage.UpdateSubscriptionMetrics(ctx, sub.ID, storage.SubscriptionMetrics{
		GrossAmount:         gross,
		PlatformFeeAmount:   fee,
		CreatorPayoutAmount: payout,
		CurrencyCode:        currency,
		BillingCadence:      cadence,
		Status:              status,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update subscription metrics: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "subscription not found")
	}

	logger.Info(ctx, "updated subscription metrics",
		zap.String("gross", updated.GrossAmount.String()),
		zap.String("platformFee", updated.PlatformFeeAmount.String()),
		zap.String("creatorPayout", updated.CreatorPayoutAmount.String()))

	return updated, nil
}
