package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/verdictlabs/verdict/pkg/agent"
	"github.com/verdictlabs/verdict/pkg/blob"
	"github.com/verdictlabs/verdict/pkg/brief"
	"github.com/verdictlabs/verdict/pkg/cleanup"
	"github.com/verdictlabs/verdict/pkg/config"
	"github.com/verdictlabs/verdict/pkg/database"
	"github.com/verdictlabs/verdict/pkg/ingest"
	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/queue"
	"github.com/verdictlabs/verdict/pkg/retrieval"
	"github.com/verdictlabs/verdict/pkg/services"
	"github.com/verdictlabs/verdict/pkg/session"
	"github.com/verdictlabs/verdict/pkg/voice"
)

// app holds the full dependency graph for serve and the data subcommands.
type app struct {
	cfg *config.Config
	db  *database.Client

	users    *services.UserService
	cases    *services.CaseService
	events   *services.EventService
	sessions *services.SessionService
	alerts   *services.AlertService
	briefs   *services.BriefService

	chat      llm.ChatClient
	retriever *retrieval.QdrantStore
	voice     *voice.Client
	blobs     *blob.Store

	orch      *session.Orchestrator
	docs      *ingest.DocumentService
	generator *brief.Generator
	pool      *queue.WorkerPool
	sweeper   *cleanup.Service

	logger *slog.Logger
}

// buildApp wires every component. Connection failures to Postgres are fatal;
// the retrieval, voice, and blob tiers are constructed lazily and degrade at
// call time.
func buildApp(ctx context.Context, configPath string, logger *slog.Logger) (*app, error) {
	cfg, err := config.Initialize(configPath)
	if err != nil {
		return nil, usageErr(err)
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, usageErr(err)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return nil, upstreamErr(fmt.Errorf("connect to database: %w", err))
	}

	chat := llm.NewAnthropicClient(cfg.LLM.AnthropicAPIKey, cfg.LLM.ChatModel)
	classifier := llm.NewOpenAIClient(
		cfg.LLM.ClassifierAPIKey,
		cfg.LLM.ClassifierBaseURL,
		cfg.LLM.ClassifierModel,
		cfg.LLM.EmbeddingModel,
		cfg.Retrieval.EmbeddingDims,
	)

	retriever, err := retrieval.NewQdrantStore(retrieval.QdrantConfig{
		URL:                  cfg.Retrieval.QdrantURL,
		APIKey:               cfg.Retrieval.QdrantAPIKey,
		StatementsCollection: cfg.Retrieval.StatementsCollection,
		RulesCollection:      cfg.Retrieval.RulesCollection,
		Dims:                 uint64(cfg.Retrieval.EmbeddingDims),
		Timeout:              cfg.Retrieval.Timeout,
	}, classifier, logger.With("component", "retrieval"))
	if err != nil {
		_ = db.Close()
		return nil, usageErr(err)
	}

	voiceAPIKey := cfg.Voice.APIKey
	if !cfg.Voice.Enabled {
		voiceAPIKey = ""
	}
	voiceClient := voice.NewClient(voice.Config{
		APIKey:       voiceAPIKey,
		VoiceID:      cfg.Voice.VoiceID,
		CoachVoiceID: cfg.Voice.CoachVoiceID,
		TTSModel:     cfg.Voice.TTSModel,
		STTModel:     cfg.Voice.STTModel,
	})

	blobs, err := blob.NewStore(ctx, blob.Config{
		Bucket:     cfg.Blob.Bucket,
		Region:     cfg.Blob.Region,
		PresignTTL: cfg.Blob.PresignTTL,
		Disabled:   cfg.Blob.Disabled,
	})
	if err != nil {
		_ = db.Close()
		return nil, usageErr(err)
	}

	events := services.NewEventService(db.Client)
	sessions := services.NewSessionService(db.Client, events)
	alerts := services.NewAlertService(db.Client)
	briefs := services.NewBriefService(db.Client, cfg.Auth.ShareLinkTTL)

	interrogator := agent.NewInterrogator(chat, retriever, cfg.Agents.QuestionMaxTokens)
	objection := agent.NewObjectionCopilot(chat, retriever, cfg.Retrieval.RulesTopK,
		logger.With("component", "objection"))
	sentinel := agent.NewSentinel(classifier, chat, retriever, agent.SentinelThresholds{
		Live:         cfg.Agents.LiveThreshold,
		Secondary:    cfg.Agents.SecondaryThreshold,
		FallbackLive: cfg.Agents.FallbackLiveThreshold,
	}, cfg.Retrieval.StatementsTopK, logger.With("component", "sentinel"))
	reviewer := agent.NewReviewer(chat)

	orch := session.NewOrchestrator(db.Client, sessions, events, alerts,
		interrogator, objection, sentinel, voiceClient, blobs,
		cfg.Agents.ObjectionThreshold, logger.With("component", "orchestrator"))
	sessions.SetServiceStatusFunc(orch.ServiceStatus)

	generator := brief.NewGenerator(db.Client, reviewer, events, alerts, briefs,
		voiceClient, blobs, logger.With("component", "brief"))

	return &app{
		cfg:       cfg,
		db:        db,
		users:     services.NewUserService(db.Client),
		cases:     services.NewCaseService(db.Client),
		events:    events,
		sessions:  sessions,
		alerts:    alerts,
		briefs:    briefs,
		chat:      chat,
		retriever: retriever,
		voice:     voiceClient,
		blobs:     blobs,
		orch:      orch,
		docs: ingest.NewDocumentService(db.Client, blobs, retriever, chat,
			logger.With("component", "ingest")),
		generator: generator,
		pool:      queue.NewWorkerPool(db.Client, &cfg.Worker, generator),
		sweeper:   cleanup.NewService(&cfg.Sweeper, sessions),
		logger:    logger,
	}, nil
}

// Close releases the database connection.
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Error closing database client", "error", err)
	}
}
