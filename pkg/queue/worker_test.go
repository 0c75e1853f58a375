package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/pkg/config"
	"github.com/verdictlabs/verdict/test/util"
)

type fakeGenerator struct {
	err      error
	sessions []string
	failures []string
}

func (g *fakeGenerator) Generate(_ context.Context, sessionID string) (*ent.Brief, error) {
	g.sessions = append(g.sessions, sessionID)
	if g.err != nil {
		return nil, g.err
	}
	return &ent.Brief{ID: uuid.New().String(), SessionID: sessionID}, nil
}

func (g *fakeGenerator) RecordFailure(_ context.Context, sessionID string, _ error) error {
	g.failures = append(g.failures, sessionID)
	return nil
}

func workerConfig() *config.WorkerConfig {
	return &config.WorkerConfig{
		WorkerCount:             1,
		PollInterval:            10 * time.Millisecond,
		JobTimeout:              time.Minute,
		GracefulShutdownTimeout: time.Minute,
	}
}

// seedPendingSession creates a COMPLETE session whose brief job is queued.
func seedPendingSession(t *testing.T, client *ent.Client) string {
	t.Helper()
	ctx := context.Background()

	firm, err := client.Firm.Create().
		SetID(uuid.New().String()).
		SetName("Harland & Moss LLP").
		Save(ctx)
	require.NoError(t, err)
	lc, err := client.LegalCase.Create().
		SetID(uuid.New().String()).
		SetFirmID(firm.ID).
		SetCaseName("Meridian v. Calloway").
		Save(ctx)
	require.NoError(t, err)
	w, err := client.Witness.Create().
		SetID(uuid.New().String()).
		SetCaseID(lc.ID).
		SetName("Daniel Okafor").
		Save(ctx)
	require.NoError(t, err)

	sess, err := client.Session.Create().
		SetID(uuid.New().String()).
		SetCaseID(lc.ID).
		SetWitnessID(w.ID).
		SetWitnessToken(uuid.New().String()).
		SetStatus(session.StatusComplete).
		SetBriefStatus(session.BriefStatusPending).
		Save(ctx)
	require.NoError(t, err)
	return sess.ID
}

func TestClaimNextJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessionID := seedPendingSession(t, client)

	worker := NewWorker("w-0", client, workerConfig(), &fakeGenerator{})
	claimed, err := worker.claimNextJob(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sessionID, claimed)

	// The claim flipped the job to GENERATING, so a second claim finds nothing.
	got, err := client.Session.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, session.BriefStatusGenerating, got.BriefStatus)

	_, err = worker.claimNextJob(context.Background())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestPollAndProcess_Success(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessionID := seedPendingSession(t, client)

	gen := &fakeGenerator{}
	worker := NewWorker("w-0", client, workerConfig(), gen)
	require.NoError(t, worker.pollAndProcess(context.Background()))

	assert.Equal(t, []string{sessionID}, gen.sessions)
	got, err := client.Session.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, session.BriefStatusDone, got.BriefStatus)

	health := worker.Health()
	assert.Equal(t, 1, health.JobsProcessed)
	assert.Equal(t, workerStatusIdle, health.Status)
}

func TestPollAndProcess_GeneratorFailure(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessionID := seedPendingSession(t, client)

	gen := &fakeGenerator{err: errors.New("model down")}
	worker := NewWorker("w-0", client, workerConfig(), gen)
	require.NoError(t, worker.pollAndProcess(context.Background()))

	got, err := client.Session.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, session.BriefStatusFailed, got.BriefStatus)
	assert.Equal(t, []string{sessionID}, gen.failures, "failure placeholder should be recorded")
}

func TestPollAndProcess_EmptyQueue(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	worker := NewWorker("w-0", client, workerConfig(), &fakeGenerator{})
	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestPoolHealth(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedPendingSession(t, client)

	pool := NewWorkerPool(client, workerConfig(), &fakeGenerator{})
	health := pool.Health(context.Background())
	assert.Equal(t, 1, health.QueueDepth)
	assert.Zero(t, health.TotalWorkers, "pool not started yet")
}

func TestPollInterval_Jitter(t *testing.T) {
	cfg := workerConfig()
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 200 * time.Millisecond
	worker := NewWorker("w-0", nil, cfg, nil)

	for i := 0; i < 100; i++ {
		d := worker.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.Less(t, d, 1200*time.Millisecond)
	}
}
