package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; when
// used through a TxStorage the insert is atomic with the surrounding
// transaction. The boolean result reports whether a job was actually
// inserted; false means a unique job with the same arguments already exists.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. opts may be nil to
	// use the defaults declared by the job args.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
