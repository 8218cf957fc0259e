package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/aboldguess/Nichifier/internal/newsletter"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/serrors"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// GenerateIssueWorker is a River worker that drafts and stores a single issue
// for a niche. Jobs for niches that no longer exist are canceled instead of
// retried, since a deleted niche never comes back.
type GenerateIssueWorker struct {
	river.WorkerDefaults[newsletter.JobArgs]

	newsletters newsletter.Newsletters
}

// NewGenerateIssueWorker creates a new GenerateIssueWorker instance.
func NewGenerateIssueWorker(newsletters newsletter.Newsletters) *GenerateIssueWorker {
	return &GenerateIssueWorker{
		newsletters: newsletters,
	}
}

func (w *GenerateIssueWorker) Work(ctx context.Context, job *river.Job[newsletter.JobArgs]) error {
	issue, err := w.newsletters.GenerateIssue(ctx,
		domain.NicheID(job.Args.NicheID),
		domain.IssueKind(job.Args.IssueKind))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "canceling issue job for missing niche",
				zap.Int64("jobID", job.ID),
				zap.String("nicheID", job.Args.NicheID.String()))

			return river.JobCancel(err)
		}

		return fmt.Errorf("could not generate issue for job %d: %w", job.ID, err)
	}

	logger.Info(ctx, "issue generated",
		zap.Int64("jobID", job.ID),
		zap.String("issueID", uuid.UUID(issue.ID).String()),
		zap.String("kind", string(issue.Kind)))

	return nil
}
