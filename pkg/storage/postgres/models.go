package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string `db:"email"`
	FullName     string `db:"full_name"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Premium      bool   `db:"premium"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		FullName:     p.FullName,
		PasswordHash: p.PasswordHash,
		Role:         domain.UserRole(p.Role),
		Premium:      p.Premium,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Premium:      user.Premium,
		CreatedAt:    user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
	}
}

type PgNiche struct {
	ID      uuid.UUID     `db:"id" goqu:"skipinsert"`
	OwnerID uuid.NullUUID `db:"owner_id"`

	Name                string `db:"name"`
	ShortDescription    string `db:"short_description"`
	DetailedDescription string `db:"detailed_description"`
	SplashImageURL      string `db:"splash_image_url"`

	NewsletterPrice   decimal.Decimal `db:"newsletter_price"`
	ReportPrice       decimal.Decimal `db:"report_price"`
	CurrencyCode      string          `db:"currency_code"`
	NewsletterCadence string          `db:"newsletter_cadence"`
	ReportCadence     string          `db:"report_cadence"`

	VoiceInstructions string `db:"voice_instructions"`
	StyleGuide        string `db:"style_guide"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgNiche) ToDomain() *domain.Niche {
	var owner *domain.UserID
	if p.OwnerID.Valid {
		id := domain.UserID(p.OwnerID.UUID)
		owner = &id
	}

	return &domain.Niche{
		ID:                  domain.NicheID(p.ID),
		OwnerID:             owner,
		Name:                p.Name,
		ShortDescription:    p.ShortDescription,
		DetailedDescription: p.DetailedDescription,
		SplashImageURL:      p.SplashImageURL,
		NewsletterPrice:     p.NewsletterPrice,
		ReportPrice:         p.ReportPrice,
		CurrencyCode:        p.CurrencyCode,
		NewsletterCadence:   domain.Cadence(p.NewsletterCadence),
		ReportCadence:       domain.Cadence(p.ReportCadence),
		VoiceInstructions:   p.VoiceInstructions,
		StyleGuide:          p.StyleGuide,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt.Time,
	}
}

func (p *PgNiche) FromDomain(niche domain.Niche) {
	var owner uuid.NullUUID
	if niche.OwnerID != nil {
		owner = uuid.NullUUID{UUID: uuid.UUID(*niche.OwnerID), Valid: true}
	}

	*p = PgNiche{
		ID:                  uuid.UUID(niche.ID),
		OwnerID:             owner,
		Name:                niche.Name,
		ShortDescription:    niche.ShortDescription,
		DetailedDescription: niche.DetailedDescription,
		SplashImageURL:      niche.SplashImageURL,
		NewsletterPrice:     niche.NewsletterPrice,
		ReportPrice:         niche.ReportPrice,
		CurrencyCode:        niche.CurrencyCode,
		NewsletterCadence:   string(niche.NewsletterCadence),
		ReportCadence:       string(niche.ReportCadence),
		VoiceInstructions:   niche.VoiceInstructions,
		StyleGuide:          niche.StyleGuide,
		CreatedAt:           niche.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  niche.UpdatedAt,
			Valid: !niche.UpdatedAt.IsZero(),
		},
	}
}

func pgNichesToDomain(rows []PgNiche) []domain.Niche {
	out := make([]domain.Niche, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgSubscription struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID  uuid.UUID `db:"user_id"`
	NicheID uuid.UUID `db:"niche_id"`

	WantsNewsletter bool `db:"wants_newsletter"`
	WantsReport     bool `db:"wants_report"`

	Status              string          `db:"status"`
	GrossAmount         decimal.Decimal `db:"gross_amount"`
	PlatformFeeAmount   decimal.Decimal `db:"platform_fee_amount"`
	CreatorPayoutAmount decimal.Decimal `db:"creator_payout_amount"`
	CurrencyCode        string          `db:"currency_code"`
	BillingCadence      string          `db:"billing_cadence"`

	StartedAt time.Time    `db:"started_at" goqu:"skipinsert"`
	ExpiresAt sql.NullTime `db:"expires_at"`
}

func (p *PgSubscription) ToDomain() *domain.Subscription {
	return &domain.Subscription{
		ID:                  domain.SubscriptionID(p.ID),
		UserID:              domain.UserID(p.UserID),
		NicheID:             domain.NicheID(p.NicheID),
		WantsNewsletter:     p.WantsNewsletter,
		WantsReport:         p.WantsReport,
		Status:              domain.SubscriptionStatus(p.Status),
		GrossAmount:         p.GrossAmount,
		PlatformFeeAmount:   p.PlatformFeeAmount,
		CreatorPayoutAmount: p.CreatorPayoutAmount,
		CurrencyCode:        p.CurrencyCode,
		BillingCadence:      domain.Cadence(p.BillingCadence),
		StartedAt:           p.StartedAt,
		ExpiresAt:           p.ExpiresAt.Time,
	}
}

func (p *PgSubscription) FromDomain(sub domain.Subscription) {
	*p = PgSubscription{
		ID:                  uuid.UUID(sub.ID),
		UserID:              uuid.UUID(sub.UserID),
		NicheID:             uuid.UUID(sub.NicheID),
		WantsNewsletter:     sub.WantsNewsletter,
		WantsReport:         sub.WantsReport,
		Status:              string(sub.Status),
		GrossAmount:         sub.GrossAmount,
		PlatformFeeAmount:   sub.PlatformFeeAmount,
		CreatorPayoutAmount: sub.CreatorPayoutAmount,
		CurrencyCode:        sub.CurrencyCode,
		BillingCadence:      string(sub.BillingCadence),
		StartedAt:           sub.StartedAt,
		ExpiresAt: sql.NullTime{
			Time:  sub.ExpiresAt,
			Valid: !sub.ExpiresAt.IsZero(),
		},
	}
}

type PgIssue struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	NicheID uuid.UUID `db:"niche_id"`

	Kind     string          `db:"kind"`
	Title    string          `db:"title"`
	Summary  string          `db:"summary"`
	Body     string          `db:"body"`
	Cadence  string          `db:"cadence"`
	Articles json.RawMessage `db:"articles"`

	PublishedAt time.Time `db:"published_at" goqu:"skipinsert"`
}

func (p *PgIssue) ToDomain() (*domain.Issue, error) {
	var articles []domain.Article
	if len(p.Articles) > 0 {
		if err := json.Unmarshal(p.Articles, &articles); err != nil {
			return nil, fmt.Errorf("could not unmarshal issue articles: %w", err)
		}
	}

	return &domain.Issue{
		ID:          domain.IssueID(p.ID),
		NicheID:     domain.NicheID(p.NicheID),
		Kind:        domain.IssueKind(p.Kind),
		Title:       p.Title,
		Summary:     p.Summary,
		Body:        p.Body,
		Cadence:     domain.Cadence(p.Cadence),
		Articles:    articles,
		PublishedAt: p.PublishedAt,
	}, nil
}

func (p *PgIssue) FromDomain(issue domain.Issue) error {
	articles, err := json.Marshal(issue.Articles)
	if err != nil {
		return fmt.Errorf("could not marshal issue articles: %w", err)
	}

	*p = PgIssue{
		ID:          uuid.UUID(issue.ID),
		NicheID:     uuid.UUID(issue.NicheID),
		Kind:        string(issue.Kind),
		Title:       issue.Title,
		Summary:     issue.Summary,
		Body:        issue.Body,
		Cadence:     string(issue.Cadence),
		Articles:    articles,
		PublishedAt: issue.PublishedAt,
	}

	return nil
}

type PgPlatformSettings struct {
	ID int16 `db:"id"`

	FeePercent   decimal.Decimal `db:"fee_percent"`
	MinimumFee   decimal.Decimal `db:"minimum_fee"`
	CurrencyCode string          `db:"currency_code"`

	StripePublishableKey sql.NullString `db:"stripe_publishable_key"`
	StripeSecretKey      sql.NullString `db:"stripe_secret_key"`

	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPlatformSettings) ToDomain() *domain.PlatformSettings {
	return &domain.PlatformSettings{
		FeePercent:           p.FeePercent,
		MinimumFee:           p.MinimumFee,
		CurrencyCode:         p.CurrencyCode,
		StripePublishableKey: p.StripePublishableKey.String,
		StripeSecretKey:      p.StripeSecretKey.String,
		UpdatedAt:            p.UpdatedAt.Time,
	}
}

func (p *PgPlatformSettings) FromDomain(s domain.PlatformSettings) {
	*p = PgPlatformSettings{
		// singleton row
		ID:           1,
		FeePercent:   s.FeePercent,
		MinimumFee:   s.MinimumFee,
		CurrencyCode: s.CurrencyCode,
		StripePublishableKey: sql.NullString{
			String: s.StripePublishableKey,
			Valid:  s.StripePublishableKey != "",
		},
		StripeSecretKey: sql.NullString{
			String: s.StripeSecretKey,
			Valid:  s.StripeSecretKey != "",
		},
	}
}

type PgCreatorPlan struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Slug               string          `db:"slug"`
	DisplayName        string          `db:"display_name"`
	Description        string          `db:"description"`
	MonthlyFee         decimal.Decimal `db:"monthly_fee"`
	CurrencyCode       string          `db:"currency_code"`
	StripePriceID      sql.NullString  `db:"stripe_price_id"`
	MaxNiches          int             `db:"max_niches"`
	FeatureSummary     string          `db:"feature_summary"`
	FeeDiscountPercent decimal.Decimal `db:"fee_discount_percent"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCreatorPlan) ToDomain() *domain.CreatorPlan {
	return &domain.CreatorPlan{
		ID:                 domain.PlanID(p.ID),
		Slug:               p.Slug,
		DisplayName:        p.DisplayName,
		Description:        p.Description,
		MonthlyFee:         p.MonthlyFee,
		CurrencyCode:       p.CurrencyCode,
		StripePriceID:      p.StripePriceID.String,
		MaxNiches:          p.MaxNiches,
		FeatureSummary:     p.FeatureSummary,
		FeeDiscountPercent: p.FeeDiscountPercent,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
	}
}

func (p *PgCreatorPlan) FromDomain(plan domain.CreatorPlan) {
	*p = PgCreatorPlan{
		ID:           uuid.UUID(plan.ID),
		Slug:         plan.Slug,
		DisplayName:  plan.DisplayName,
		Description:  plan.Description,
		MonthlyFee:   plan.MonthlyFee,
		CurrencyCode: plan.CurrencyCode,
		StripePriceID: sql.NullString{
			String: plan.StripePriceID,
			Valid:  plan.StripePriceID != "",
		},
		MaxNiches:          plan.MaxNiches,
		FeatureSummary:     plan.FeatureSummary,
		FeeDiscountPercent: plan.FeeDiscountPercent,
	}
}

type PgCreatorSubscription struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`
	PlanID uuid.UUID `db:"plan_id"`

	Status string `db:"status"`

	StartedAt time.Time    `db:"started_at" goqu:"skipinsert"`
	EndsAt    sql.NullTime `db:"ends_at"`
}

func (p *PgCreatorSubscription) ToDomain() *domain.CreatorSubscription {
	return &domain.CreatorSubscription{
		ID:        domain.CreatorSubscriptionID(p.ID),
		UserID:    domain.UserID(p.UserID),
		PlanID:    domain.PlanID(p.PlanID),
		Status:    domain.SubscriptionStatus(p.Status),
		StartedAt: p.StartedAt,
		EndsAt:    p.EndsAt.Time,
	}
}

func (p *PgCreatorSubscription) FromDomain(sub domain.CreatorSubscription) {
	*p = PgCreatorSubscription{
		ID:     uuid.UUID(sub.ID),
		UserID: uuid.UUID(sub.UserID),
		PlanID: uuid.UUID(sub.PlanID),
		Status: string(sub.Status),
		EndsAt: sql.NullTime{
			Time:  sub.EndsAt,
			Valid: !sub.EndsAt.IsZero(),
		},
	}
}
