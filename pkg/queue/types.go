// Package queue runs the asynchronous brief generation workers.
//
// Jobs live on the session row itself: ending a session sets brief_status to
// PENDING, a worker claims it with FOR UPDATE SKIP LOCKED and flips it to
// GENERATING, and the outcome lands as DONE or FAILED. Claims are row-level,
// so any number of replicas can run the pool.
package queue

import (
	"context"
	"errors"

	"github.com/verdictlabs/verdict/ent"
)

// ErrNoJobsAvailable signals an empty queue; workers back off and re-poll.
var ErrNoJobsAvailable = errors.New("no brief jobs available")

// BriefGenerator is the job body. Implemented by brief.Generator.
type BriefGenerator interface {
	Generate(ctx context.Context, sessionID string) (*ent.Brief, error)
	// RecordFailure persists a placeholder brief when Generate errored, so
	// read-only consumers still find a row for the session.
	RecordFailure(ctx context.Context, sessionID string, genErr error) error
}

// WorkerHealth is one worker's state snapshot.
type WorkerHealth struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	CurrentJob    string `json:"current_job,omitempty"`
	JobsProcessed int    `json:"jobs_processed"`
}

// PoolHealth is the pool's state snapshot, surfaced on /readyz.
type PoolHealth struct {
	QueueDepth    int            `json:"queue_depth"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveWorkers int            `json:"active_workers"`
	StaleRequeued int            `json:"stale_requeued"`
	Workers       []WorkerHealth `json:"workers"`
}
