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
	issuesTable = "issues"
)

func (p *PgSQL) StoreIssue(ctx context.Context, issue domain.Issue) (*domain.Issue, error) {
	var row PgIssue
	if err := row.FromDomain(issue); err != nil {
		return nil, err
	}

	var result PgIssue
	found, err := p.Builder.Insert(issuesTable).
		Rows(row).
		Returning(&PgIssue{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store issue into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store issue into pg: no row returned")
	}

	return result.ToDomain()
}

// IssueByID returns an issue with its articles. Returns nil when not found.
func (p *PgSQL) IssueByID(ctx context.Context, id domain.IssueID) (*domain.Issue, error) {
	var row PgIssue
	found, err := p.Builder.From(issuesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch issue by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// NicheIssues returns issues for a niche ordered by published_at descending,
// optionally filtered by kind and capped by limit.
func (p *PgSQL) NicheIssues(ctx context.Context,
	nicheID domain.NicheID,
	filter storage.IssueFilter) ([]domain.Issue, error) {
	w := []goqu.Expression{
		goqu.I("niche_id").Eq(uuid.UUID(nicheID)),
	}
	if filter.Kind != "" {
		w = append(w, goqu.I("kind").Eq(string(filter.Kind)))
	}

	ds := p.Builder.From(issuesTable).
		Where(w...).
		Order(goqu.I("published_at").Desc(), goqu.I("id").Desc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgIssue
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch niche issues from pg: %w", err)
	}

	out := make([]domain.Issue, 0, len(rows))
	for i := range rows {
		issue, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *issue)
	}

	return out, nil
}
