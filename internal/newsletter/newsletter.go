// Package newsletter implements issue generation for niches: aggregating
// articles from external feeds, drafting content through the configured
// generator and persisting the published issues.
package newsletter

import (
	"context"
	"fmt"
	"time"

	"github.com/aboldguess/Nichifier/internal/config"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/newsfeed"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"go.uber.org/zap"
)

//go:generate mockgen -package mocknewsletter -source=newsletter.go -destination=mock/mocknewsletter.go *
type Newsletters interface {
	// RequestIssue enqueues generation of a fresh issue for the niche. The
	// boolean result reports whether a new job was queued; false means a
	// matching job is already in flight.
	RequestIssue(ctx context.Context,
		user domain.User,
		nicheID domain.NicheID,
		kind domain.IssueKind) (bool, error)
	// GenerateIssue aggregates articles, drafts the content and stores the
	// resulting issue. It is invoked by the background worker.
	GenerateIssue(ctx context.Context,
		nicheID domain.NicheID,
		kind domain.IssueKind) (*domain.Issue, error)
	// NicheIssues lists published issues for a niche, newest first.
	NicheIssues(ctx context.Context,
		nicheID domain.NicheID,
		kind domain.IssueKind,
		limit uint) ([]domain.Issue, error)
	// Issue fetches a single published issue.
	Issue(ctx context.Context, id domain.IssueID) (*domain.Issue, error)
}

// Options configure feed aggregation and issue generation.
type Options struct {
	// FeedURLs are the JSON feeds polled for articles.
	FeedURLs []string
	// ArticleLimit caps how many aggregated articles feed a single issue.
	ArticleLimit int
	// FetchTimeout bounds a single feed fetch.
	FetchTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FeedURLs:     cfg.Newsletter.FeedURLs,
		ArticleLimit: cfg.Newsletter.ArticleLimit,
		FetchTimeout: cfg.Newsletter.FetchTimeout,
	}
}

// newsletters is the concrete implementation of the Newsletters interface.
type newsletters struct {
	options   Options
	storage   storage.Storage
	feed      newsfeed.Client
	generator Generator
}

// New creates a new Newsletters instance. generator may be nil, in which case
// issues are composed from the deterministic fallback.
func New(strg storage.Storage, feed newsfeed.Client, generator Generator, options Options) Newsletters {
	return &newsletters{
		options:   options,
		storage:   strg,
		feed:      feed,
		generator: generator,
	}
}

func canRequest(user domain.User, niche *domain.Niche) bool {
	if user.Role == domain.RoleAdmin {
		return true
	}

	return user.Role == domain.RoleNicheAdmin &&
		niche.OwnerID != nil && *niche.OwnerID == user.ID
}

// RequestIssue enqueues generation of a fresh issue for the niche.
func (n newsletters) RequestIssue(ctx context.Context,
	user domain.User,
	nicheID domain.NicheID,
	kind domain.IssueKind) (bool, error) {
	if !kind.Valid() {
		return false, serrors.With(serrors.ErrBadRequest, "invalid issue kind")
	}

	niche, err := n.storage.NicheByID(ctx, nicheID)
	if err != nil {
		return false, fmt.Errorf("could not get niche: %w", err)
	}
	if niche == nil {
		return false, serrors.With(serrors.ErrNotFound, "niche not found")
	}
	if !canRequest(user, niche) {
		return false, serrors.With(serrors.ErrForbidden, "you cannot publish for this niche")
	}

	added, err := n.storage.AddJob(ctx, NewJobArgs(*niche, kind), nil)
	if err != nil {
		return false, fmt.Errorf("could not add generation job: %w", err)
	}

	logger.Info(ctx, "requested issue generation",
		zap.String("niche", niche.Name),
		zap.String("kind", string(kind)),
		zap.Bool("queued", added))

	return added, nil
}

// cadenceFor picks the niche cadence matching the issue kind.
func cadenceFor(niche domain.Niche, kind domain.IssueKind) domain.Cadence {
	if kind == domain.IssueReport {
		return niche.ReportCadence
	}

	return niche.NewsletterCadence
}

// cadencePeriod translates a publication cadence into the unique job window.
func cadencePeriod(cadence domain.Cadence) time.Duration {
	switch cadence {
	case domain.CadenceDaily:
		return 24 * time.Hour
	case domain.CadenceWeekly:
		return 7 * 24 * time.Hour
	case domain.CadenceMonthly:
		return 30 * 24 * time.Hour
	case domain.CadenceQuarterly:
		return 90 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// aggregate pulls articles from every configured feed. Individual feed
// failures are logged and skipped so one dead feed does not block an issue.
func (n newsletters) aggregate(ctx context.Context) []domain.Article {
	var articles []domain.Article
	for _, feedURL := range n.options.FeedURLs {
		fetchCtx, cancel := context.WithTimeout(ctx, n.options.FetchTimeout)
		fetched, err := n.feed.Fetch(fetchCtx, feedURL, n.options.ArticleLimit)
		cancel()
		if err != nil {
			logger.Error(ctx, "could not fetch feed",
				zap.String("feed", feedURL),
				zap.Error(err))

			continue
		}

		articles = append(articles, fetched...)
		if len(articles) >= n.options.ArticleLimit {
			articles = articles[:n.options.ArticleLimit]

			break
		}
	}

	return articles
}

// GenerateIssue aggregates articles, drafts the content and stores the
// resulting issue.
func (n newsletters) GenerateIssue(ctx context.Context,
	nicheID domain.NicheID,
	kind domain.IssueKind) (*domain.Issue, error) {
	niche, err := n.storage.NicheByID(ctx, nicheID)
	if err != nil {
		return nil, fmt.Errorf("could not get niche: %w", err)
	}
	if niche == nil {
		return nil, serrors.With(serrors.ErrNotFound, "niche not found")
	}

	articles := n.aggregate(ctx)
	cadence := cadenceFor(*niche, kind)

	var prompt string
	if kind == domain.IssueReport {
		insights := make([]string, 0, len(articles))
		for _, article := range articles {
			insights = append(insights, article.Title)
		}
		prompt = BuildReportPrompt(niche.Name, cadence, niche.VoiceInstructions, niche.StyleGuide, insights)
	} else {
		prompt = BuildNewsletterPrompt(niche.Name, niche.VoiceInstructions, niche.StyleGuide, articles)
	}

	body := n.draft(ctx, *niche, kind, prompt, articles)

	issue, err := n.storage.StoreIssue(ctx, domain.Issue{
		NicheID:  nicheID,
		Kind:     kind,
		Title:    issueTitle(*niche, kind),
		Summary:  issueSummary(articles),
		Body:     body,
		Cadence:  cadence,
		Articles: articles,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store issue: %w", err)
	}

	logger.Info(ctx, "generated issue",
		zap.String("niche", niche.Name),
		zap.String("kind", string(kind)),
		zap.Int("articles", len(articles)))

	return issue, nil
}

// draft runs the configured generator, falling back to the deterministic
// composer when no generator is wired or the draft fails.
func (n newsletters) draft(ctx context.Context,
	niche domain.Niche,
	kind domain.IssueKind,
	prompt string,
	articles []domain.Article) string {
	if n.generator == nil {
		return composeFallbackBody(niche, kind, articles)
	}

	body, err := n.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Warn(ctx, "generator failed, composing fallback issue",
			zap.String("niche", niche.Name),
			zap.Error(err))

		return composeFallbackBody(niche, kind, articles)
	}

	return body
}

func issueTitle(niche domain.Niche, kind domain.IssueKind) string {
	if kind == domain.IssueReport {
		return fmt.Sprintf("%s %s report", niche.Name, niche.ReportCadence)
	}

	return fmt.Sprintf("%s briefing", niche.Name)
}

func issueSummary(articles []domain.Article) string {
	if len(articles) == 0 {
		return "Curated update"
	}

	return fmt.Sprintf("Covering %d stories, starting with %q", len(articles), articles[0].Title)
}

// NicheIssues lists published issues for a niche, newest first.
func (n newsletters) NicheIssues(ctx context.Context,
	nicheID domain.NicheID,
	kind domain.IssueKind,
	limit uint) ([]domain.Issue, error) {
	if kind != "" && !kind.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid issue kind")
	}

	niche, err := n.storage.NicheByID(ctx, nicheID)
	if err != nil {
		return nil, fmt.Errorf("could not get niche: %w", err)
	}
	if niche == nil {
		return nil, serrors.With(serrors.ErrNotFound, "niche not found")
	}

	issues, err := n.storage.NicheIssues(ctx, nicheID, storage.IssueFilter{
		Kind:  kind,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list issues: %w", err)
	}

	return issues, nil
}

// Issue fetches a single published issue.
func (n newsletters) Issue(ctx context.Context, id domain.IssueID) (*domain.Issue, error) {
	issue, err := n.storage.IssueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get issue: %w", err)
	}
	if issue == nil {
		return nil, serrors.With(serrors.ErrNotFound, "issue not found")
	}

	return issue, nil
}
