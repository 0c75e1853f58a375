// Verdict deposition-rehearsal server: HTTP API, brief generation workers,
// abandoned-session sweeper, and the operational subcommands around them.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// Exit codes: 0 ok, 2 usage/config error, 10 upstream dependency
// unavailable, 20 fatal internal error.
const (
	exitOK       = 0
	exitUsage    = 2
	exitUpstream = 10
	exitInternal = 20
)

// exitError carries a process exit code out of a subcommand.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error    { return &exitError{code: exitUsage, err: err} }
func upstreamErr(err error) error { return &exitError{code: exitUpstream, err: err} }
func internalErr(err error) error { return &exitError{code: exitInternal, err: err} }

type cli struct {
	Config string `help:"Path to the YAML config file." default:"verdict.yaml"`
	Env    string `help:"Path to the .env file." default:".env"`

	Serve          serveCmd          `cmd:"" help:"Run the HTTP service with workers and sweeper."`
	Migrate        migrateCmd        `cmd:"" help:"Apply pending database migrations."`
	Seed           seedCmd           `cmd:"" help:"Load demo data (scenarios S1-S6)."`
	IngestRules    ingestRulesCmd    `cmd:"" name:"ingest-rules" help:"Index an evidentiary-rules JSONL export."`
	SweepAbandoned sweepAbandonedCmd `cmd:"" name:"sweep-abandoned" help:"One-shot sweep of over-budget sessions."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("verdict"),
		kong.Description("Deposition rehearsal backend."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			if code != 0 {
				os.Exit(exitUsage)
			}
			os.Exit(exitOK)
		}),
	)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(c.Env); err != nil {
		logger.Debug("No .env file loaded, continuing with existing environment",
			"path", c.Env, "error", err)
	}

	if err := kctx.Run(&runEnv{configPath: c.Config, logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "verdict: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(exitInternal)
	}
}

// runEnv is passed to every subcommand's Run method.
type runEnv struct {
	configPath string
	logger     *slog.Logger
}
