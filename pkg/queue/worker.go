package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/pkg/config"
)

// Worker status values.
const (
	workerStatusIdle    = "idle"
	workerStatusWorking = "working"
)

// Worker polls for PENDING brief jobs and runs the generator on them.
type Worker struct {
	id        string
	client    *ent.Client
	cfg       *config.WorkerConfig
	generator BriefGenerator
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu            sync.RWMutex
	status        string
	currentJob    string
	jobsProcessed int
}

// NewWorker creates a brief worker.
func NewWorker(id string, client *ent.Client, cfg *config.WorkerConfig, generator BriefGenerator) *Worker {
	return &Worker{
		id:        id,
		client:    client,
		cfg:       cfg,
		generator: generator,
		stopCh:    make(chan struct{}),
		status:    workerStatusIdle,
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current job to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's state snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJob:    w.currentJob,
		JobsProcessed: w.jobsProcessed,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Brief worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Brief worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, brief worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing brief job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	sessionID, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("session_id", sessionID, "worker_id", w.id)
	log.Info("Brief job claimed")

	w.setStatus(workerStatusWorking, sessionID)
	defer w.setStatus(workerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.cfg.JobTimeout)
	defer cancel()

	_, genErr := w.generator.Generate(jobCtx, sessionID)

	// Terminal status goes through a background context: the job context may
	// already be cancelled and the claim must not be left dangling.
	final := session.BriefStatusDone
	if genErr != nil {
		final = session.BriefStatusFailed
		log.Error("Brief generation failed", "error", genErr)
		if err := w.generator.RecordFailure(context.Background(), sessionID, genErr); err != nil {
			log.Error("Failed to record brief failure placeholder", "error", err)
		}
	}
	if err := w.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetBriefStatus(final).
		Exec(context.Background()); err != nil {
		return fmt.Errorf("failed to record brief job outcome: %w", err)
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Brief job finished", "brief_status", final)
	return nil
}

// claimNextJob atomically claims the oldest PENDING brief job using
// FOR UPDATE SKIP LOCKED, flipping it to GENERATING.
func (w *Worker) claimNextJob(ctx context.Context) (string, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := tx.Session.Query().
		Where(session.BriefStatusEQ(session.BriefStatusPending)).
		Order(ent.Asc(session.FieldUpdatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNoJobsAvailable
		}
		return "", fmt.Errorf("failed to query pending brief jobs: %w", err)
	}

	if err := sess.Update().
		SetBriefStatus(session.BriefStatusGenerating).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to claim brief job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit claim: %w", err)
	}
	return sess.ID, nil
}

// pollInterval returns the poll duration with jitter, spreading replicas out.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJob = jobID
}
