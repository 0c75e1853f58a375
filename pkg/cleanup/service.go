// Package cleanup runs the abandoned-session sweeper.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/verdictlabs/verdict/pkg/config"
	"github.com/verdictlabs/verdict/pkg/services"
)

// Service periodically marks over-budget LOBBY/ACTIVE/PAUSED sessions
// ABANDONED. The sweep is a per-row conditional update, so multiple replicas
// can run it.
type Service struct {
	config   *config.SweeperConfig
	sessions *services.SessionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the sweeper.
func NewService(cfg *config.SweeperConfig, sessions *services.SessionService) *Service {
	return &Service{config: cfg, sessions: sessions}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Abandoned-session sweeper started",
		"interval", s.config.Interval,
		"grace", s.config.Grace)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Abandoned-session sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Service) sweep() {
	// Background context: a shutdown mid-sweep should still finish the batch.
	count, err := s.sessions.SweepAbandoned(context.Background(), s.config.Grace)
	if err != nil {
		slog.Error("Abandoned-session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Swept abandoned sessions", "count", count)
	}
}
