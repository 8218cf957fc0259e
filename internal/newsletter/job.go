package newsletter

import (
	"time"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an issue generation job submitted to
// River. The (niche, kind) pair is the unique key so a niche never has two
// competing drafts of the same product in flight.
type JobArgs struct {
	// NicheID names the niche the issue is generated for.
	NicheID uuid.UUID `json:"nicheId" river:"unique"`
	// IssueKind selects the product, newsletter or report.
	IssueKind string `json:"kind" river:"unique"`

	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// NewJobArgs builds the job arguments for generating an issue of the given
// kind, with the uniqueness window derived from the niche's publication
// cadence.
func NewJobArgs(niche domain.Niche, kind domain.IssueKind) JobArgs {
	return JobArgs{
		NicheID:         uuid.UUID(niche.ID),
		IssueKind:       string(kind),
		uniqueJobPeriod: cadencePeriod(cadenceFor(niche, kind)),
	}
}

// Kind returns the River job kind used to register and dispatch the issue
// generation worker.
func (args JobArgs) Kind() string { return "GenerateIssueJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including uniqueness constraints that prevent duplicate drafts for the same
// niche and product.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		// one job per (niche, kind) in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
