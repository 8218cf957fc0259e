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
	nichesTable = "niches"
)

func (p *PgSQL) StoreNiche(ctx context.Context, niche domain.Niche) (*domain.Niche, error) {
	var row PgNiche
	row.FromDomain(niche)

	var result PgNiche
	found, err := p.Builder.Insert(nichesTable).
		Rows(row).
		Returning(&PgNiche{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store niche into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store niche into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// NicheByID returns a niche by its ID. Returns nil when not found.
func (p *PgSQL) NicheByID(ctx context.Context, id domain.NicheID) (*domain.Niche, error) {
	var row PgNiche
	found, err := p.Builder.From(nichesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch niche by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// NicheByName returns a niche matched by name case-insensitively. Returns nil
// when not found.
func (p *PgSQL) NicheByName(ctx context.Context, name string) (*domain.Niche, error) {
	var row PgNiche
	found, err := p.Builder.From(nichesTable).
		Where(goqu.L("LOWER(name)").Eq(goqu.L("LOWER(?)", name))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch niche by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Niches returns all niches ordered alphabetically, ignoring case.
func (p *PgSQL) Niches(ctx context.Context) ([]domain.Niche, error) {
	var rows []PgNiche
	if err := p.Builder.From(nichesTable).
		Order(goqu.L("LOWER(name)").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch niches from pg: %w", err)
	}

	return pgNichesToDomain(rows), nil
}

// UpdateNiche applies the non-nil fields from updates to the given niche and
// returns the updated row. updated_at is always set.
//
//nolint: gocyclo
func (p *PgSQL) UpdateNiche(ctx context.Context,
	id domain.NicheID,
	updates storage.NicheUpdates) (*domain.Niche, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.ShortDescription != nil {
		rec["short_description"] = *updates.ShortDescription
	}
	if updates.DetailedDescription != nil {
		rec["detailed_description"] = *updates.DetailedDescription
	}
	if updates.SplashImageURL != nil {
		rec["splash_image_url"] = *updates.SplashImageURL
	}
	if updates.NewsletterPrice != nil {
		rec["newsletter_price"] = *updates.NewsletterPrice
	}
	if updates.ReportPrice != nil {
		rec["report_price"] = *updates.ReportPrice
	}
	if updates.CurrencyCode != nil {
		rec["currency_code"] = *updates.CurrencyCode
	}
	if updates.NewsletterCadence != nil {
		rec["newsletter_cadence"] = string(*updates.NewsletterCadence)
	}
	if updates.ReportCadence != nil {
		rec["report_cadence"] = string(*updates.ReportCadence)
	}
	if updates.VoiceInstructions != nil {
		rec["voice_instructions"] = *updates.VoiceInstructions
	}
	if updates.StyleGuide != nil {
		rec["style_guide"] = *updates.StyleGuide
	}

	var row PgNiche
	found, err := p.Builder.Update(nichesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgNiche{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update niche in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteNiche removes a niche and its dependent rows. The schema carries no
// cascades, so dependents are deleted explicitly, deepest first. Callers run
// this inside a transaction via WithTx.
func (p *PgSQL) DeleteNiche(ctx context.Context, id domain.NicheID) (*storage.NicheDeletion, error) {
	nicheID := uuid.UUID(id)

	// articles live inside the issues JSON column, count them before the
	// issue rows go away
	var articleCount int64
	if _, err := p.Builder.From(issuesTable).
		Select(goqu.COALESCE(goqu.SUM(goqu.L("jsonb_array_length(articles)")), 0)).
		Where(goqu.I("niche_id").Eq(nicheID)).
		Executor().ScanValContext(ctx, &articleCount); err != nil {
		return nil, fmt.Errorf("could not count niche articles in pg: %w", err)
	}

	subsResult, err := p.Builder.Delete(subscriptionsTable).
		Where(goqu.I("niche_id").Eq(nicheID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not delete niche subscriptions in pg: %w", err)
	}
	subs, err := subsResult.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read deleted subscription count: %w", err)
	}

	issuesResult, err := p.Builder.Delete(issuesTable).
		Where(goqu.I("niche_id").Eq(nicheID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not delete niche issues in pg: %w", err)
	}
	issues, err := issuesResult.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read deleted issue count: %w", err)
	}

	nicheResult, err := p.Builder.Delete(nichesTable).
		Where(goqu.I("id").Eq(nicheID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not delete niche in pg: %w", err)
	}
	deleted, err := nicheResult.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read deleted niche count: %w", err)
	}
	if deleted == 0 {
		return nil, nil
	}

	return &storage.NicheDeletion{
		Subscriptions: subs,
		Issues:        issues,
		Articles:      articleCount,
	}, nil
}

// NicheCountByOwner returns how many niches the given user owns.
func (p *PgSQL) NicheCountByOwner(ctx context.Context, ownerID domain.UserID) (int64, error) {
	count, err := p.Builder.From(nichesTable).
		Where(goqu.I("owner_id").Eq(uuid.UUID(ownerID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count niches by owner in pg: %w", err)
	}

	return count, nil
}
