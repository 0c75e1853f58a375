// Package api exposes the HTTP surface: attorney console endpoints, the
// witness device endpoints, and the unauthenticated share link.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/pkg/blob"
	"github.com/verdictlabs/verdict/pkg/config"
	"github.com/verdictlabs/verdict/pkg/database"
	"github.com/verdictlabs/verdict/pkg/ingest"
	"github.com/verdictlabs/verdict/pkg/queue"
	"github.com/verdictlabs/verdict/pkg/services"
	"github.com/verdictlabs/verdict/pkg/session"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	cfg *config.Config
	db  *database.Client

	users    *services.UserService
	cases    *services.CaseService
	sessions *services.SessionService
	events   *services.EventService
	alerts   *services.AlertService
	briefs   *services.BriefService

	orch  *session.Orchestrator
	docs  *ingest.DocumentService
	blobs *blob.Store
	pool  *queue.WorkerPool

	logger *slog.Logger
	http   *http.Server
}

// Deps bundles the constructed dependencies for NewServer.
type Deps struct {
	DB       *database.Client
	Users    *services.UserService
	Cases    *services.CaseService
	Sessions *services.SessionService
	Events   *services.EventService
	Alerts   *services.AlertService
	Briefs   *services.BriefService
	Orch     *session.Orchestrator
	Docs     *ingest.DocumentService
	Blobs    *blob.Store
	Pool     *queue.WorkerPool
	Logger   *slog.Logger
}

// NewServer creates the API server and wires its routes.
func NewServer(cfg *config.Config, deps Deps) *Server {
	s := &Server{
		cfg:      cfg,
		db:       deps.DB,
		users:    deps.Users,
		cases:    deps.Cases,
		sessions: deps.Sessions,
		events:   deps.Events,
		alerts:   deps.Alerts,
		briefs:   deps.Briefs,
		orch:     deps.Orch,
		docs:     deps.Docs,
		blobs:    deps.Blobs,
		pool:     deps.Pool,
		logger:   deps.Logger,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), securityHeaders())
	s.registerRoutes(router)

	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", s.handleHealthz)
	router.GET("/readyz", s.handleReadyz)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", s.handleLogin)
	v1.GET("/briefs/shared/:token", s.handleSharedBrief)

	authed := v1.Group("", s.requireAuth())
	{
		authed.POST("/cases", s.handleCreateCase)
		authed.GET("/cases", s.handleListCases)
		authed.GET("/cases/:id", s.handleGetCase)
		authed.POST("/cases/:id/witnesses", s.handleAddWitness)
		authed.GET("/witnesses/:id", s.handleGetWitness)
		authed.POST("/cases/:id/documents", s.handleUploadDocument)
		authed.GET("/cases/:id/documents", s.handleListDocuments)
		authed.GET("/documents/:id", s.handleGetDocument)

		authed.POST("/sessions", s.handleCreateSession)
		authed.GET("/sessions", s.handleListSessions)
		authed.GET("/sessions/:id", s.handleGetSession)
		authed.POST("/sessions/:id/start", s.handleStartSession)
		authed.POST("/sessions/:id/pause", s.handlePauseSession)
		authed.POST("/sessions/:id/resume", s.handleResumeSession)
		authed.POST("/sessions/:id/end", s.handleEndSession)
		authed.GET("/sessions/:id/live-state", s.handleLiveState)
		authed.GET("/sessions/:id/events", s.handleListEvents)
		authed.GET("/sessions/:id/alerts", s.handleListAlerts)

		authed.POST("/alerts/:id/confirm", s.handleConfirmAlert)
		authed.POST("/alerts/:id/reject", s.handleRejectAlert)

		authed.POST("/sessions/:id/agents/objection", s.handleRunObjection)
		authed.POST("/sessions/:id/agents/inconsistency", s.handleRunInconsistency)

		authed.GET("/sessions/:id/brief", s.handleGetBrief)
		authed.POST("/sessions/:id/brief", s.handleRequestBrief)
		authed.POST("/briefs/:id/share", s.handleShareBrief)
	}

	// The question and answer endpoints serve both the attorney console and
	// the witness device, which authenticates with the session join token
	// instead of a JWT.
	live := v1.Group("", s.requireAuthOrWitnessToken())
	{
		live.POST("/sessions/:id/agents/question", s.handleAskQuestion)
		live.POST("/sessions/:id/answers/audio", s.handleAudioAnswer)
		live.POST("/sessions/:id/answers/text", s.handleTextAnswer)
	}
}

// Start runs the HTTP server until the context is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
