package newsletter_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aboldguess/Nichifier/internal/newsletter"
	mocknewsletter "github.com/aboldguess/Nichifier/internal/newsletter/mock"
	"github.com/aboldguess/Nichifier/pkg/domain"
	mocknewsfeed "github.com/aboldguess/Nichifier/pkg/newsfeed/mock"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/aboldguess/Nichifier/pkg/storage"
	mockstorage "github.com/aboldguess/Nichifier/pkg/storage/mock"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/mock/gomock"
)

func testOptions() newsletter.Options {
	return newsletter.Options{
		FeedURLs:     []string{"https://feeds.example.com/stories.json"},
		ArticleLimit: 5,
		FetchTimeout: time.Second,
	}
}

func newTestNewsletters(t *testing.T,
	generator newsletter.Generator) (*gomock.Controller, *mockstorage.MockStorage, *mocknewsfeed.MockClient, newsletter.Newsletters) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	feed := mocknewsfeed.NewMockClient(ctrl)

	return ctrl, st, feed, newsletter.New(st, feed, generator, testOptions())
}

func testNiche() domain.Niche {
	return domain.Niche{
		ID:                domain.NicheID(uuid.New()),
		Name:              "Fintech",
		ShortDescription:  "Payments and banking news",
		NewsletterCadence: domain.CadenceDaily,
		ReportCadence:     domain.CadenceMonthly,
	}
}

func admin() domain.User {
	return domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}
}

func TestBuildNewsletterPromptDefaults(t *testing.T) {
	articles := []domain.Article{
		{Source: "Example", Title: "Big Launch", URL: "https://example.com/launch"},
	}

	prompt := newsletter.BuildNewsletterPrompt("Fintech", "", "", articles)
	if !strings.Contains(prompt, "You are writing a daily briefing for the 'Fintech' industry.") {
		t.Fatalf("prompt missing briefing line: %q", prompt)
	}
	if !strings.Contains(prompt, "Voice guidance: Use an energetic, professional tone.") {
		t.Fatalf("prompt missing default voice: %q", prompt)
	}
	if !strings.Contains(prompt, "Style guidance: Write in short paragraphs with bullet highlights.") {
		t.Fatalf("prompt missing default style: %q", prompt)
	}
	if !strings.Contains(prompt, "- Big Launch (https://example.com/launch)") {
		t.Fatalf("prompt missing article line: %q", prompt)
	}
}

func TestBuildNewsletterPromptCustomGuidance(t *testing.T) {
	prompt := newsletter.BuildNewsletterPrompt("Fintech", "Dry and factual.", "Plain prose.", nil)
	if !strings.Contains(prompt, "Voice guidance: Dry and factual.") {
		t.Fatalf("prompt dropped custom voice: %q", prompt)
	}
	if !strings.Contains(prompt, "Style guidance: Plain prose.") {
		t.Fatalf("prompt dropped custom style: %q", prompt)
	}
}

func TestBuildReportPrompt(t *testing.T) {
	prompt := newsletter.BuildReportPrompt("Fintech", domain.CadenceMonthly, "", "", []string{"Rates rose"})
	if !strings.Contains(prompt, "Draft a monthly deep-dive report for the 'Fintech' niche.") {
		t.Fatalf("prompt missing report line: %q", prompt)
	}
	if !strings.Contains(prompt, "Voice guidance: Adopt an authoritative yet friendly tone.") {
		t.Fatalf("prompt missing default voice: %q", prompt)
	}
	if !strings.Contains(prompt, "* Rates rose") {
		t.Fatalf("prompt missing insight line: %q", prompt)
	}
}

func TestJobArgsUniqueWindow(t *testing.T) {
	niche := testNiche()

	cases := []struct {
		kind   domain.IssueKind
		period time.Duration
	}{
		{domain.IssueNewsletter, 24 * time.Hour},
		{domain.IssueReport, 30 * 24 * time.Hour},
	}
	for _, tc := range cases {
		opts := newsletter.NewJobArgs(niche, tc.kind).InsertOpts()
		if !opts.UniqueOpts.ByArgs {
			t.Fatalf("%s: expected uniqueness by args", tc.kind)
		}
		if opts.UniqueOpts.ByPeriod != tc.period {
			t.Fatalf("%s: unexpected unique period: %v", tc.kind, opts.UniqueOpts.ByPeriod)
		}

		// a finished job must still block re-enqueues for the rest of the
		// cadence window, otherwise the hourly sweep republishes every hour
		states := map[rivertype.JobState]bool{}
		for _, s := range opts.UniqueOpts.ByState {
			states[s] = true
		}
		for _, s := range []rivertype.JobState{
			rivertype.JobStateAvailable,
			rivertype.JobStateCompleted,
			rivertype.JobStatePending,
			rivertype.JobStateRunning,
			rivertype.JobStateRetryable,
			rivertype.JobStateScheduled,
		} {
			if !states[s] {
				t.Fatalf("%s: unique states missing %s", tc.kind, s)
			}
		}
	}
}

func TestRequestIssue(t *testing.T) {
	ctrl, st, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	niche := testNiche()
	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			jobArgs, ok := args.(newsletter.JobArgs)
			if !ok {
				t.Fatalf("unexpected job args type: %T", args)
			}
			if jobArgs.NicheID != uuid.UUID(niche.ID) {
				t.Fatalf("unexpected job niche: %v", jobArgs.NicheID)
			}
			if jobArgs.IssueKind != string(domain.IssueNewsletter) {
				t.Fatalf("unexpected job kind: %v", jobArgs.IssueKind)
			}

			return true, nil
		})

	queued, err := svc.RequestIssue(context.Background(), admin(), niche.ID, domain.IssueNewsletter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !queued {
		t.Fatal("expected job to be queued")
	}
}

func TestRequestIssueAlreadyQueued(t *testing.T) {
	ctrl, st, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	niche := testNiche()
	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)

	queued, err := svc.RequestIssue(context.Background(), admin(), niche.ID, domain.IssueReport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if queued {
		t.Fatal("expected duplicate request to report queued=false")
	}
}

func TestRequestIssueInvalidKind(t *testing.T) {
	ctrl, _, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	_, err := svc.RequestIssue(context.Background(), admin(), domain.NicheID(uuid.New()), "digest")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got: %v", err)
	}
}

func TestRequestIssueOwnership(t *testing.T) {
	ctrl, st, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	owner := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleNicheAdmin}
	stranger := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleNicheAdmin}

	niche := testNiche()
	ownerID := owner.ID
	niche.OwnerID = &ownerID

	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	if _, err := svc.RequestIssue(context.Background(), stranger, niche.ID, domain.IssueNewsletter); !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got: %v", err)
	}

	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	if _, err := svc.RequestIssue(context.Background(), owner, niche.ID, domain.IssueNewsletter); err != nil {
		t.Fatalf("unexpected error for owner: %v", err)
	}
}

func TestRequestIssueNicheNotFound(t *testing.T) {
	ctrl, st, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	id := domain.NicheID(uuid.New())
	st.EXPECT().NicheByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.RequestIssue(context.Background(), admin(), id, domain.IssueNewsletter)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
}

func TestGenerateIssueWithGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	feed := mocknewsfeed.NewMockClient(ctrl)
	generator := mocknewsletter.NewMockGenerator(ctrl)
	svc := newsletter.New(st, feed, generator, testOptions())

	niche := testNiche()
	articles := []domain.Article{
		{Source: "Example", Title: "Big Launch", URL: "https://example.com/launch"},
		{Source: "Example", Title: "Rates Update", URL: "https://example.com/rates"},
	}

	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	feed.EXPECT().Fetch(gomock.Any(), "https://feeds.example.com/stories.json", 5).Return(articles, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "'Fintech'") {
				t.Fatalf("prompt missing niche name: %q", prompt)
			}

			return "Markets moved today.", nil
		})
	st.EXPECT().StoreIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, issue domain.Issue) (*domain.Issue, error) {
			if issue.Title != "Fintech briefing" {
				t.Fatalf("unexpected title: %q", issue.Title)
			}
			if issue.Summary != `Covering 2 stories, starting with "Big Launch"` {
				t.Fatalf("unexpected summary: %q", issue.Summary)
			}
			if issue.Body != "Markets moved today." {
				t.Fatalf("unexpected body: %q", issue.Body)
			}
			if issue.Cadence != domain.CadenceDaily {
				t.Fatalf("unexpected cadence: %v", issue.Cadence)
			}

			return &issue, nil
		})

	issue, err := svc.GenerateIssue(context.Background(), niche.ID, domain.IssueNewsletter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issue.Articles) != 2 {
		t.Fatalf("unexpected article count: %d", len(issue.Articles))
	}
}

func TestGenerateIssueFallsBackWithoutGenerator(t *testing.T) {
	ctrl, st, feed, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	niche := testNiche()
	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	feed.EXPECT().Fetch(gomock.Any(), gomock.Any(), 5).Return(nil, nil)
	st.EXPECT().StoreIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, issue domain.Issue) (*domain.Issue, error) {
			if !strings.Contains(issue.Body, "## Fintech briefing") {
				t.Fatalf("fallback body missing heading: %q", issue.Body)
			}
			if !strings.Contains(issue.Body, "No fresh articles were available this time around.") {
				t.Fatalf("fallback body missing empty notice: %q", issue.Body)
			}
			if issue.Summary != "Curated update" {
				t.Fatalf("unexpected summary: %q", issue.Summary)
			}

			return &issue, nil
		})

	if _, err := svc.GenerateIssue(context.Background(), niche.ID, domain.IssueNewsletter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateIssueFallsBackOnGeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	feed := mocknewsfeed.NewMockClient(ctrl)
	generator := mocknewsletter.NewMockGenerator(ctrl)
	svc := newsletter.New(st, feed, generator, testOptions())

	niche := testNiche()
	articles := []domain.Article{
		{Source: "Example", Title: "Rates Update", URL: "https://example.com/rates"},
	}

	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	feed.EXPECT().Fetch(gomock.Any(), gomock.Any(), 5).Return(articles, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("model overloaded"))
	st.EXPECT().StoreIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, issue domain.Issue) (*domain.Issue, error) {
			if !strings.Contains(issue.Body, "## Fintech monthly report") {
				t.Fatalf("fallback report heading missing: %q", issue.Body)
			}
			if !strings.Contains(issue.Body, "Rates Update") {
				t.Fatalf("fallback body missing article highlight: %q", issue.Body)
			}
			if issue.Title != "Fintech monthly report" {
				t.Fatalf("unexpected report title: %q", issue.Title)
			}

			return &issue, nil
		})

	if _, err := svc.GenerateIssue(context.Background(), niche.ID, domain.IssueReport); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateIssueSkipsDeadFeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	feed := mocknewsfeed.NewMockClient(ctrl)
	options := testOptions()
	options.FeedURLs = []string{
		"https://feeds.example.com/dead.json",
		"https://feeds.example.com/alive.json",
	}
	svc := newsletter.New(st, feed, nil, options)

	niche := testNiche()
	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	feed.EXPECT().Fetch(gomock.Any(), "https://feeds.example.com/dead.json", 5).
		Return(nil, errors.New("connection refused"))
	feed.EXPECT().Fetch(gomock.Any(), "https://feeds.example.com/alive.json", 5).
		Return([]domain.Article{{Title: "Survivor", URL: "https://example.com/s"}}, nil)
	st.EXPECT().StoreIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, issue domain.Issue) (*domain.Issue, error) {
			if len(issue.Articles) != 1 {
				t.Fatalf("unexpected article count: %d", len(issue.Articles))
			}

			return &issue, nil
		})

	if _, err := svc.GenerateIssue(context.Background(), niche.ID, domain.IssueNewsletter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNicheIssues(t *testing.T) {
	ctrl, st, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	niche := testNiche()
	st.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	st.EXPECT().NicheIssues(gomock.Any(), niche.ID, storage.IssueFilter{
		Kind:  domain.IssueNewsletter,
		Limit: 10,
	}).Return([]domain.Issue{{NicheID: niche.ID}}, nil)

	issues, err := svc.NicheIssues(context.Background(), niche.ID, domain.IssueNewsletter, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("unexpected issue count: %d", len(issues))
	}
}

func TestNicheIssuesInvalidKind(t *testing.T) {
	ctrl, _, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	_, err := svc.NicheIssues(context.Background(), domain.NicheID(uuid.New()), "digest", 0)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got: %v", err)
	}
}

func TestIssueNotFound(t *testing.T) {
	ctrl, st, _, svc := newTestNewsletters(t, nil)
	defer ctrl.Finish()

	id := domain.IssueID(uuid.New())
	st.EXPECT().IssueByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.Issue(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
}
