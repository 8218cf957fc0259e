package worker

import (
	"context"
	"fmt"

	"github.com/aboldguess/Nichifier/internal/newsletter"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ScheduleIssuesArgs triggers a sweep over all niches that enqueues issue
// generation for every (niche, kind) pair. The generation jobs carry their
// own cadence-based uniqueness windows, so sweeping more often than a
// cadence rolls over is a no-op.
type ScheduleIssuesArgs struct{}

func (ScheduleIssuesArgs) Kind() string { return "ScheduleIssuesJob" }

// ScheduleIssuesWorker fans a sweep job out into per-niche generation jobs.
type ScheduleIssuesWorker struct {
	river.WorkerDefaults[ScheduleIssuesArgs]

	storage storage.Storage
}

// NewScheduleIssuesWorker creates a new ScheduleIssuesWorker instance.
func NewScheduleIssuesWorker(strg storage.Storage) *ScheduleIssuesWorker {
	return &ScheduleIssuesWorker{
		storage: strg,
	}
}

func (w *ScheduleIssuesWorker) Work(ctx context.Context, _ *river.Job[ScheduleIssuesArgs]) error {
	niches, err := w.storage.Niches(ctx)
	if err != nil {
		return fmt.Errorf("could not list niches: %w", err)
	}

	var queued int
	for _, niche := range niches {
		for _, kind := range []domain.IssueKind{domain.IssueNewsletter, domain.IssueReport} {
			added, err := w.storage.AddJob(ctx, newsletter.NewJobArgs(niche, kind), nil)
			if err != nil {
				logger.Error(ctx, "could not enqueue scheduled issue",
					zap.String("niche", niche.Name),
					zap.String("kind", string(kind)),
					zap.Error(err))

				continue
			}
			if added {
				queued++
			}
		}
	}

	logger.Info(ctx, "cadence sweep finished",
		zap.Int("niches", len(niches)),
		zap.Int("queued", queued))

	return nil
}
