// Package worker runs the background job processing for the platform: a
// River client that drafts requested issues and a periodic sweep that keeps
// every niche on its publication cadence.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aboldguess/Nichifier/internal/newsletter"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// scheduleInterval is how often the cadence sweep runs. Job uniqueness
// windows keep the sweep idempotent, so an hourly run only enqueues work for
// niches whose cadence window has rolled over.
const scheduleInterval = time.Hour

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	strg storage.Storage,
	newsletters newsletter.Newsletters) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewGenerateIssueWorker(newsletters))
	river.AddWorker(workers, NewScheduleIssuesWorker(strg))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 100}, // TODO: make configurable
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(scheduleInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return ScheduleIssuesArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
