package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verdictlabs/verdict/pkg/api"
	"github.com/verdictlabs/verdict/pkg/database"
	"github.com/verdictlabs/verdict/pkg/ingest"
	"github.com/verdictlabs/verdict/pkg/seed"
	"github.com/verdictlabs/verdict/pkg/version"
)

type serveCmd struct{}

// Run starts the HTTP server, the brief worker pool, and the abandoned
// sweeper, then shuts them down in reverse order on SIGINT/SIGTERM.
func (serveCmd) Run(env *runEnv) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env.logger.Info("Starting", "version", version.Full())

	a, err := buildApp(ctx, env.configPath, env.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	// Missing collections degrade searches to empty results, so this is a
	// warning, not a startup failure.
	if err := a.retriever.EnsureCollections(ctx); err != nil {
		env.logger.Warn("Vector store unreachable at startup, retrieval will degrade", "error", err)
	}

	a.pool.Start(ctx)
	a.sweeper.Start(ctx)

	server := api.NewServer(a.cfg, api.Deps{
		DB:       a.db,
		Users:    a.users,
		Cases:    a.cases,
		Sessions: a.sessions,
		Events:   a.events,
		Alerts:   a.alerts,
		Briefs:   a.briefs,
		Orch:     a.orch,
		Docs:     a.docs,
		Blobs:    a.blobs,
		Pool:     a.pool,
		Logger:   env.logger.With("component", "api"),
	})

	err = server.Start(ctx)

	env.logger.Info("Shutting down")
	a.sweeper.Stop()
	a.pool.Stop()
	return err
}

type migrateCmd struct{}

// Run applies pending migrations and exits.
func (migrateCmd) Run(env *runEnv) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return usageErr(err)
	}
	db, err := database.Open(ctx, dbCfg)
	if err != nil {
		return upstreamErr(err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, dbCfg); err != nil {
		return internalErr(err)
	}
	env.logger.Info("Migrations applied")
	return nil
}

type seedCmd struct{}

// Run loads the demo scenarios. Idempotent: deterministic IDs, upsert-style
// writes.
func (seedCmd) Run(env *runEnv) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	a, err := buildApp(ctx, env.configPath, env.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := seed.Run(ctx, a.db.Client, env.logger); err != nil {
		return internalErr(err)
	}
	env.logger.Info("Seed data loaded")
	return nil
}

type ingestRulesCmd struct {
	File string `help:"Path to the rules JSONL export." required:""`
}

// Run indexes an evidentiary-rules export into the vector store.
func (c ingestRulesCmd) Run(env *runEnv) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	a, err := buildApp(ctx, env.configPath, env.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	f, err := os.Open(c.File)
	if err != nil {
		return usageErr(err)
	}
	defer f.Close()

	chunks, err := ingest.LoadRulesJSONL(f)
	if err != nil {
		return usageErr(err)
	}
	if len(chunks) == 0 {
		return usageErr(fmt.Errorf("no rules found in %s", c.File))
	}

	if err := a.retriever.EnsureCollections(ctx); err != nil {
		return upstreamErr(err)
	}
	if err := a.retriever.UpsertRules(ctx, chunks); err != nil {
		return upstreamErr(err)
	}
	env.logger.Info("Rules indexed", "count", len(chunks))
	return nil
}

type sweepAbandonedCmd struct {
	Grace time.Duration `help:"Grace past the session's duration budget before abandoning." default:"0"`
}

// Run performs one abandoned-session sweep and reports the count.
func (c sweepAbandonedCmd) Run(env *runEnv) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	a, err := buildApp(ctx, env.configPath, env.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	grace := c.Grace
	if grace <= 0 {
		grace = a.cfg.Sweeper.Grace
	}

	swept, err := a.sessions.SweepAbandoned(ctx, grace)
	if err != nil {
		return err
	}
	env.logger.Info("Sweep complete", "swept", swept, "grace", grace)
	return nil
}
