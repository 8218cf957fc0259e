package postgres_test

import (
	"context"
	"testing"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreIssue(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	niche, err := pgSQL.StoreNiche(ctx, testNiche("Homelab"))
	require.NoError(t, err)

	stored, err := pgSQL.StoreIssue(ctx, domain.Issue{
		NicheID: niche.ID,
		Kind:    domain.IssueNewsletter,
		Title:   "Homelab briefing",
		Summary: "Two stories worth your time",
		Cadence: domain.CadenceWeekly,
		Articles: []domain.Article{
			{Source: "feed", Title: "NAS upgrade notes", URL: "https://example.com/nas"},
			{Source: "feed", Title: "Proxmox tips", URL: "https://example.com/pve", Summary: "short"},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.IssueID{}, stored.ID)
	require.False(t, stored.PublishedAt.IsZero())
	require.Len(t, stored.Articles, 2)
	require.Equal(t, "NAS upgrade notes", stored.Articles[0].Title)

	t.Run("fetch by id", func(t *testing.T) {
		got, err := pgSQL.IssueByID(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, stored.Title, got.Title)
		require.Equal(t, stored.Articles, got.Articles)
	})

	t.Run("missing issue", func(t *testing.T) {
		got, err := pgSQL.IssueByID(ctx, domain.IssueID{})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_NicheIssues(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	niche, err := pgSQL.StoreNiche(ctx, testNiche("Specialty Coffee"))
	require.NoError(t, err)
	other, err := pgSQL.StoreNiche(ctx, testNiche("Trail Running"))
	require.NoError(t, err)

	for _, issue := range []domain.Issue{
		{NicheID: niche.ID, Kind: domain.IssueNewsletter, Title: "Brew #1", Cadence: domain.CadenceWeekly},
		{NicheID: niche.ID, Kind: domain.IssueNewsletter, Title: "Brew #2", Cadence: domain.CadenceWeekly},
		{NicheID: niche.ID, Kind: domain.IssueReport, Title: "Origin deep dive", Body: "longform", Cadence: domain.CadenceMonthly},
		{NicheID: other.ID, Kind: domain.IssueNewsletter, Title: "Elsewhere", Cadence: domain.CadenceWeekly},
	} {
		_, err := pgSQL.StoreIssue(ctx, issue)
		require.NoError(t, err)
	}

	issues, err := pgSQL.NicheIssues(ctx, niche.ID, storage.IssueFilter{})
	require.NoError(t, err)
	require.Len(t, issues, 3)
	for i := 1; i < len(issues); i++ {
		require.False(t, issues[i].PublishedAt.After(issues[i-1].PublishedAt))
	}

	t.Run("filter by kind", func(t *testing.T) {
		reports, err := pgSQL.NicheIssues(ctx, niche.ID, storage.IssueFilter{Kind: domain.IssueReport})
		require.NoError(t, err)
		require.Len(t, reports, 1)
		require.Equal(t, "longform", reports[0].Body)
	})

	t.Run("limit", func(t *testing.T) {
		capped, err := pgSQL.NicheIssues(ctx, niche.ID, storage.IssueFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, capped, 2)
	})

	t.Run("empty niche", func(t *testing.T) {
		none, err := pgSQL.NicheIssues(ctx, domain.NicheID{}, storage.IssueFilter{})
		require.NoError(t, err)
		require.Empty(t, none)
	})
}
