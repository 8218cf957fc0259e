// Package niche implements curation of niches: creation, editing and removal
// together with the plan allowance and ownership rules that govern them.
package niche

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Input carries the fields of a niche creation request.
type Input struct {
	Name                string
	ShortDescription    string
	DetailedDescription string
	SplashImageURL      string
	NewsletterPrice     decimal.Decimal
	ReportPrice         decimal.Decimal
	CurrencyCode        string
	NewsletterCadence   domain.Cadence
	ReportCadence       domain.Cadence
	VoiceInstructions   string
	StyleGuide          string
}

type niches struct {
	storage storage.Storage
	billing billing.Billing
}

// New creates a new Niches instance backed by the provided storage. The
// billing service supplies plan allowances for creation limits.
func New(strg storage.Storage, bill billing.Billing) Niches {
	return &niches{
		storage: strg,
		billing: bill,
	}
}

// List returns all niches ordered alphabetically.
func (n niches) List(ctx context.Context) ([]domain.Niche, error) {
	all, err := n.storage.Niches(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list niches: %w", err)
	}

	return all, nil
}

// ByID fetches a single niche.
func (n niches) ByID(ctx context.Context, id domain.NicheID) (*domain.Niche, error) {
	found, err := n.storage.NicheByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get niche: %w", err)
	}
	if found == nil {
		return nil, serrors.With(serrors.ErrNotFound, "niche not found")
	}

	return found, nil
}

func (in *Input) sanitize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.DetailedDescription = strings.TrimSpace(in.DetailedDescription)
	in.SplashImageURL = strings.TrimSpace(in.SplashImageURL)
	in.VoiceInstructions = strings.TrimSpace(in.VoiceInstructions)
	in.StyleGuide = strings.TrimSpace(in.StyleGuide)
	in.CurrencyCode = strings.ToUpper(strings.TrimSpace(in.CurrencyCode))

	if in.Name == "" {
		return serrors.With(serrors.ErrBadRequest, "niche name is required")
	}
	if in.NewsletterPrice.IsNegative() || in.ReportPrice.IsNegative() {
		return serrors.With(serrors.ErrBadRequest, "prices cannot be negative")
	}
	if in.NewsletterCadence == "" {
		in.NewsletterCadence = domain.CadenceWeekly
	}
	if in.ReportCadence == "" {
		in.ReportCadence = domain.CadenceMonthly
	}
	if !in.NewsletterCadence.Valid() || !in.ReportCadence.Valid() {
		return serrors.With(serrors.ErrBadRequest, "invalid cadence")
	}

	return nil
}

// Create persists a new niche owned by the given curator. Non-admin curators
// are held to the niche allowance of their active plan.
func (n niches) Create(ctx context.Context, owner domain.User, input Input) (*domain.Niche, error) {
	if err := input.sanitize(); err != nil {
		return nil, err
	}

	if owner.Role != domain.RoleAdmin {
		if err := n.checkAllowance(ctx, owner.ID); err != nil {
			return nil, err
		}
	}

	ownerID := owner.ID
	created, err := n.storage.StoreNiche(ctx, domain.Niche{
		OwnerID:             &ownerID,
		Name:                input.Name,
		ShortDescription:    input.ShortDescription,
		DetailedDescription: input.DetailedDescription,
		SplashImageURL:      input.SplashImageURL,
		NewsletterPrice:     input.NewsletterPrice,
		ReportPrice:         input.ReportPrice,
		CurrencyCode:        input.CurrencyCode,
		NewsletterCadence:   input.NewsletterCadence,
		ReportCadence:       input.ReportCadence,
		VoiceInstructions:   input.VoiceInstructions,
		StyleGuide:          input.StyleGuide,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "a niche with that name already exists")
		}

		return nil, fmt.Errorf("could not store niche: %w", err)
	}

	logger.Info(ctx, "created niche",
		zap.String("name", created.Name),
		zap.String("owner", owner.Email))

	return created, nil
}

// checkAllowance rejects the creation when the curator already owns as many
// niches as their plan allows.
func (n niches) checkAllowance(ctx context.Context, ownerID domain.UserID) error {
	plan, err := n.billing.ActivePlan(ctx, ownerID)
	if err != nil {
		return err
	}
	if plan == nil {
		return serrors.With(serrors.ErrForbidden, "an active creator plan is required to curate niches")
	}

	owned, err := n.storage.NicheCountByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("could not count owned niches: %w", err)
	}
	if owned >= int64(plan.MaxNiches) {
		return serrors.With(serrors.ErrForbidden,
			"your plan allows at most %d niches", plan.MaxNiches)
	}

	return nil
}

func canManage(user domain.User, niche *domain.Niche) bool {
	if user.Role == domain.RoleAdmin {
		return true
	}
	if user.Role != domain.RoleNicheAdmin {
		return false
	}

	return niche.OwnerID != nil && *niche.OwnerID == user.ID
}

// Update applies partial updates to a niche the user is allowed to manage.
func (n niches) Update(ctx context.Context,
	user domain.User,
	id domain.NicheID,
	updates storage.NicheUpdates) (*domain.Niche, error) {
	existing, err := n.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(user, existing) {
		return nil, serrors.With(serrors.ErrForbidden, "you cannot manage this niche")
	}

	if updates.Name != nil {
		trimmed := strings.TrimSpace(*updates.Name)
		if trimmed == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "niche name is required")
		}
		updates.Name = &trimmed
	}
	if updates.NewsletterCadence != nil && !updates.NewsletterCadence.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cadence")
	}
	if updates.ReportCadence != nil && !updates.ReportCadence.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cadence")
	}

	updated, err := n.storage.UpdateNiche(ctx, id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "a niche with that name already exists")
		}

		return nil, fmt.Errorf("could not update niche: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "niche not found")
	}

	logger.Info(ctx, "updated niche", zap.String("name", updated.Name))

	return updated, nil
}

// Delete removes a niche and its dependent rows in one transaction. The
// dependent counts are logged so removals stay auditable.
func (n niches) Delete(ctx context.Context, user domain.User, id domain.NicheID) error {
	existing, err := n.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(user, existing) {
		return serrors.With(serrors.ErrForbidden, "you cannot manage this niche")
	}

	if err := n.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deletion, err := tx.DeleteNiche(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete niche: %w", err)
		}
		if deletion == nil {
			return serrors.With(serrors.ErrNotFound, "niche not found")
		}

		logger.Info(ctx, "deleted niche",
			zap.String("name", existing.Name),
			zap.Int64("subscriptions", deletion.Subscriptions),
			zap.Int64("issues", deletion.Issues),
			zap.Int64("articles", deletion.Articles))

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete niche %q: %w", existing.Name, err)
	}

	return nil
}
