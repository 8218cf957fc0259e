package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aboldguess/Nichifier/internal/newsletter"
	mocknewsletter "github.com/aboldguess/Nichifier/internal/newsletter/mock"
	"github.com/aboldguess/Nichifier/internal/worker"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	mockstorage "github.com/aboldguess/Nichifier/pkg/storage/mock"
	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, nicheID uuid.UUID, kind domain.IssueKind) *river.Job[newsletter.JobArgs] {
	return &river.Job[newsletter.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: newsletter.JobArgs{
			NicheID:   nicheID,
			IssueKind: string(kind),
		},
	}
}

func TestGenerateIssueWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocknewsletter.NewMockNewsletters(ctrl)
	w := worker.NewGenerateIssueWorker(mock)

	nicheID := uuid.New()
	mock.EXPECT().GenerateIssue(gomock.Any(), domain.NicheID(nicheID), domain.IssueNewsletter).
		Return(&domain.Issue{
			ID:   domain.IssueID(uuid.New()),
			Kind: domain.IssueNewsletter,
		}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, nicheID, domain.IssueNewsletter)))
}

func TestGenerateIssueWorker_Work_MissingNicheCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocknewsletter.NewMockNewsletters(ctrl)
	w := worker.NewGenerateIssueWorker(mock)

	nicheID := uuid.New()
	mock.EXPECT().GenerateIssue(gomock.Any(), domain.NicheID(nicheID), domain.IssueReport).
		Return(nil, serrors.With(serrors.ErrNotFound, "niche not found"))

	err := w.Work(context.Background(), makeJob(2, nicheID, domain.IssueReport))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestGenerateIssueWorker_Work_GenericErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocknewsletter.NewMockNewsletters(ctrl)
	w := worker.NewGenerateIssueWorker(mock)

	nicheID := uuid.New()
	genErr := errors.New("feed outage")
	mock.EXPECT().GenerateIssue(gomock.Any(), domain.NicheID(nicheID), domain.IssueNewsletter).
		Return(nil, genErr)

	err := w.Work(context.Background(), makeJob(3, nicheID, domain.IssueNewsletter))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	require.ErrorIs(t, err, genErr)
}

func TestScheduleIssuesWorker_Work_EnqueuesBothKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewScheduleIssuesWorker(st)

	niches := []domain.Niche{
		{ID: domain.NicheID(uuid.New()), Name: "Fintech", NewsletterCadence: domain.CadenceDaily, ReportCadence: domain.CadenceMonthly},
		{ID: domain.NicheID(uuid.New()), Name: "Climate", NewsletterCadence: domain.CadenceWeekly, ReportCadence: domain.CadenceQuarterly},
	}
	st.EXPECT().Niches(gomock.Any()).Return(niches, nil)

	var seen []string
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Times(4).
		DoAndReturn(func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			jobArgs, ok := args.(newsletter.JobArgs)
			require.True(t, ok)
			seen = append(seen, jobArgs.NicheID.String()+"/"+jobArgs.IssueKind)

			return true, nil
		})

	require.NoError(t, w.Work(context.Background(), &river.Job[worker.ScheduleIssuesArgs]{
		JobRow: &rivertype.JobRow{ID: 10},
		Args:   worker.ScheduleIssuesArgs{},
	}))
	require.Len(t, seen, 4)
	require.Contains(t, seen, uuid.UUID(niches[0].ID).String()+"/newsletter")
	require.Contains(t, seen, uuid.UUID(niches[1].ID).String()+"/report")
}

func TestScheduleIssuesWorker_Work_SkipsFailedEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewScheduleIssuesWorker(st)

	niches := []domain.Niche{
		{ID: domain.NicheID(uuid.New()), Name: "Fintech", NewsletterCadence: domain.CadenceDaily, ReportCadence: domain.CadenceMonthly},
	}
	st.EXPECT().Niches(gomock.Any()).Return(niches, nil)

	gomock.InOrder(
		st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("pool exhausted")),
		st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil),
	)

	require.NoError(t, w.Work(context.Background(), &river.Job[worker.ScheduleIssuesArgs]{
		JobRow: &rivertype.JobRow{ID: 11},
		Args:   worker.ScheduleIssuesArgs{},
	}))
}

func TestScheduleIssuesWorker_Work_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewScheduleIssuesWorker(st)

	st.EXPECT().Niches(gomock.Any()).Return(nil, errors.New("connection reset"))

	err := w.Work(context.Background(), &river.Job[worker.ScheduleIssuesArgs]{
		JobRow: &rivertype.JobRow{ID: 12},
		Args:   worker.ScheduleIssuesArgs{},
	})
	require.Error(t, err)
}
