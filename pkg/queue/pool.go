package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/pkg/config"
)

// staleClaimCutoff is how long a GENERATING claim may sit untouched before a
// crashed worker is assumed and the job is requeued. Kept above the job
// timeout so a live worker can never be preempted.
const staleClaimCutoff = 5 * time.Minute

// WorkerPool manages the brief workers plus the stale-claim requeue loop.
type WorkerPool struct {
	client    *ent.Client
	cfg       *config.WorkerConfig
	generator BriefGenerator
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu            sync.Mutex
	started       bool
	staleRequeued int
}

// NewWorkerPool creates the pool.
func NewWorkerPool(client *ent.Client, cfg *config.WorkerConfig, generator BriefGenerator) *WorkerPool {
	return &WorkerPool{
		client:    client,
		cfg:       cfg,
		generator: generator,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns the workers and the requeue loop. Safe to call twice; the
// second call is a no-op.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	slog.Info("Starting brief worker pool", "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("brief-worker-%d", i), p.client, p.cfg, p.generator)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runStaleRequeue(ctx)
	}()
}

// Stop signals all workers to stop and waits; in-flight jobs finish first.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping brief worker pool")
	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Brief worker pool stopped")
}

// Health returns the pool snapshot for readiness reporting.
func (p *WorkerPool) Health(ctx context.Context) *PoolHealth {
	depth, err := p.client.Session.Query().
		Where(session.BriefStatusEQ(session.BriefStatusPending)).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to query brief queue depth", "error", err)
	}

	stats := make([]WorkerHealth, len(p.workers))
	active := 0
	for i, w := range p.workers {
		stats[i] = w.Health()
		if stats[i].Status == workerStatusWorking {
			active++
		}
	}

	p.mu.Lock()
	requeued := p.staleRequeued
	p.mu.Unlock()

	return &PoolHealth{
		QueueDepth:    depth,
		TotalWorkers:  len(p.workers),
		ActiveWorkers: active,
		StaleRequeued: requeued,
		Workers:       stats,
	}
}

// runStaleRequeue periodically returns GENERATING claims whose owner stopped
// touching them to the PENDING queue.
func (p *WorkerPool) runStaleRequeue(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.client.Session.Update().
				Where(
					session.BriefStatusEQ(session.BriefStatusGenerating),
					session.UpdatedAtLT(time.Now().Add(-staleClaimCutoff)),
				).
				SetBriefStatus(session.BriefStatusPending).
				Save(ctx)
			if err != nil {
				slog.Error("Stale brief claim requeue failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Warn("Requeued stale brief claims", "count", n)
				p.mu.Lock()
				p.staleRequeued += n
				p.mu.Unlock()
			}
		}
	}
}
