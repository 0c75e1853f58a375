package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/pkg/models"
)

func TestSessionCreate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sess, err := f.sessions.Create(ctx, f.firmID, models.CreateSessionRequest{
		CaseID:          f.caseID,
		WitnessID:       f.witnessID,
		AggressionLevel: "ELEVATED",
		FocusAreas:      []string{"timeline"},
		DurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, session.StatusLobby, sess.Status)
	assert.Equal(t, session.AggressionLevelElevated, sess.AggressionLevel)
	assert.Equal(t, []string{"timeline"}, sess.FocusAreas)
	assert.Equal(t, 45, sess.DurationMinutes)
	assert.Len(t, sess.WitnessToken, 24, "witness token is a 24-character opaque string")
	assert.Nil(t, sess.StartedAt)
}

func TestSessionCreate_CaseDefaults(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.client.LegalCase.UpdateOneID(f.caseID).
		SetAggressionPreset(legalcase.AggressionPresetHighStakes).
		SetFocusAreas([]string{"route approval"}).Exec(ctx))

	// A bare request inherits the case's preset and focus areas.
	sess, err := f.sessions.Create(ctx, f.firmID, models.CreateSessionRequest{
		CaseID:    f.caseID,
		WitnessID: f.witnessID,
	})
	require.NoError(t, err)
	assert.Equal(t, session.AggressionLevelHighStakes, sess.AggressionLevel)
	assert.Equal(t, []string{"route approval"}, sess.FocusAreas)
	assert.Equal(t, 30, sess.DurationMinutes)

	// Explicit request values win over the case defaults.
	sess, err = f.sessions.Create(ctx, f.firmID, models.CreateSessionRequest{
		CaseID:          f.caseID,
		WitnessID:       f.witnessID,
		AggressionLevel: "STANDARD",
	})
	require.NoError(t, err)
	assert.Equal(t, session.AggressionLevelStandard, sess.AggressionLevel)
}

func TestSessionCreate_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.sessions.Create(ctx, f.firmID, models.CreateSessionRequest{WitnessID: f.witnessID})
	assert.True(t, IsValidationError(err))

	_, err = f.sessions.Create(ctx, f.firmID, models.CreateSessionRequest{CaseID: f.caseID})
	assert.True(t, IsValidationError(err))

	_, err = f.sessions.Create(ctx, f.firmID, models.CreateSessionRequest{
		CaseID: f.caseID, WitnessID: f.witnessID, AggressionLevel: "FURIOUS",
	})
	assert.True(t, IsValidationError(err))
}

func TestSessionCreate_CrossTenantWitness(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.sessions.Create(ctx, f.otherFirmID, models.CreateSessionRequest{
		CaseID:    f.caseID,
		WitnessID: f.witnessID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.newSession(t)

	started, err := f.sessions.Start(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, started.Status)
	require.NotNil(t, started.StartedAt)

	paused, err := f.sessions.Pause(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusPaused, paused.Status)
	require.NotNil(t, paused.PausedAt)

	resumed, err := f.sessions.Resume(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, resumed.Status)
	assert.Nil(t, resumed.PausedAt)

	ended, err := f.sessions.End(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusComplete, ended.Status)
	require.NotNil(t, ended.EndedAt)
	assert.Equal(t, session.BriefStatusPending, ended.BriefStatus)

	// The timeline recorded every transition in order.
	events, err := f.events.List(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, sessionevent.EventTypeSessionStarted, events[0].EventType)
	assert.Equal(t, sessionevent.EventTypeSessionPaused, events[1].EventType)
	assert.Equal(t, sessionevent.EventTypeSessionResumed, events[2].EventType)
	assert.Equal(t, sessionevent.EventTypeSessionEnded, events[3].EventType)
}

func TestSessionInvalidTransitions(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sess := f.newSession(t)
	_, err := f.sessions.Pause(ctx, f.firmID, sess.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "cannot pause a LOBBY session")
	_, err = f.sessions.Resume(ctx, f.firmID, sess.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "cannot resume a LOBBY session")
	_, err = f.sessions.End(ctx, f.firmID, sess.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "cannot end a LOBBY session")

	complete := f.completeSession(t)
	_, err = f.sessions.Start(ctx, f.firmID, complete.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "COMPLETE is terminal")
	_, err = f.sessions.End(ctx, f.firmID, complete.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "double end loses the race")
}

func TestSessionEndFromPaused(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sess := f.activeSession(t)
	_, err := f.sessions.Pause(ctx, f.firmID, sess.ID)
	require.NoError(t, err)

	ended, err := f.sessions.End(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusComplete, ended.Status)
	assert.Nil(t, ended.PausedAt)
}

func TestSessionGet_CrossTenant(t *testing.T) {
	f := setup(t)
	sess := f.newSession(t)

	_, err := f.sessions.Get(context.Background(), f.otherFirmID, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionGetByWitnessToken(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.newSession(t)

	got, err := f.sessions.GetByWitnessToken(ctx, sess.WitnessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	_, err = f.sessions.GetByWitnessToken(ctx, "bogus-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionList_Filters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.newSession(t)
	f.activeSession(t)
	f.completeSession(t)

	all, err := f.sessions.List(ctx, f.firmID, models.SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)
	assert.Equal(t, 50, all.Limit)

	active, err := f.sessions.List(ctx, f.firmID, models.SessionFilters{Status: "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, 1, active.TotalCount)

	paged, err := f.sessions.List(ctx, f.firmID, models.SessionFilters{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, paged.TotalCount)
	assert.Len(t, paged.Sessions, 1)

	foreign, err := f.sessions.List(ctx, f.otherFirmID, models.SessionFilters{})
	require.NoError(t, err)
	assert.Zero(t, foreign.TotalCount)
}

func TestRequestBrief(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sess := f.completeSession(t)

	// End already queued the brief; re-requesting while PENDING is a conflict.
	err := f.sessions.RequestBrief(ctx, f.firmID, sess.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// A failed job can be re-queued.
	require.NoError(t, f.client.Session.UpdateOneID(sess.ID).
		SetBriefStatus(session.BriefStatusFailed).Exec(ctx))
	require.NoError(t, f.sessions.RequestBrief(ctx, f.firmID, sess.ID))

	got, err := f.sessions.Get(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.BriefStatusPending, got.BriefStatus)

	// Non-complete sessions never queue a brief.
	lobby := f.newSession(t)
	assert.ErrorIs(t, f.sessions.RequestBrief(ctx, f.firmID, lobby.ID), ErrInvalidTransition)

	assert.ErrorIs(t, f.sessions.RequestBrief(ctx, f.otherFirmID, sess.ID), ErrNotFound)
}

func TestIncrementQuestionCount(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	n, err := f.sessions.IncrementQuestionCount(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = f.sessions.IncrementQuestionCount(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLiveState(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	_, err := f.events.Append(ctx, models.AppendEventRequest{
		SessionID: sess.ID,
		EventType: sessionevent.EventTypeQuestionAsked,
		Payload:   map[string]any{"question_number": 1, "text": "Where were you on March 3rd?"},
	})
	require.NoError(t, err)
	_, err = f.events.Append(ctx, models.AppendEventRequest{
		SessionID: sess.ID,
		EventType: sessionevent.EventTypeAnswerReceived,
		Payload:   map[string]any{"question_number": 1, "text": "At the Laredo depot, I think."},
	})
	require.NoError(t, err)
	require.NoError(t, f.sessions.SetCurrentTopic(ctx, sess.ID, "route approval"))

	state, err := f.sessions.LiveState(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", state.Status)
	assert.Equal(t, "route approval", state.CurrentTopic)
	assert.Equal(t, "Where were you on March 3rd?", state.LastQuestion)
	assert.Equal(t, int64(30*60), state.TotalSeconds)
	assert.True(t, state.WitnessConnected, "just-started session counts as connected")
	assert.Zero(t, state.PendingObjections)
	assert.Zero(t, state.PendingFlags)

	// The transcript carries the exchange in event order.
	require.Len(t, state.Transcript, 2)
	assert.Equal(t, "QUESTION", state.Transcript[0].Kind)
	assert.Equal(t, "Where were you on March 3rd?", state.Transcript[0].Text)
	assert.Equal(t, "ANSWER", state.Transcript[1].Kind)
	assert.Equal(t, 1, state.Transcript[1].QuestionNumber)
}

func TestElapsedMs(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	started := base
	paused := base.Add(5 * time.Minute)
	ended := base.Add(20 * time.Minute)

	// Never started.
	assert.Zero(t, elapsedMs(&ent.Session{}, base.Add(time.Hour)))

	// Running: now minus start minus accumulated pauses.
	running := &ent.Session{Status: session.StatusActive, StartedAt: &started, TotalPauseMs: 60_000}
	assert.Equal(t, int64(9*60_000), elapsedMs(running, base.Add(10*time.Minute)))

	// Paused: clock freezes at paused_at.
	frozen := &ent.Session{Status: session.StatusPaused, StartedAt: &started, PausedAt: &paused}
	assert.Equal(t, int64(5*60_000), elapsedMs(frozen, base.Add(time.Hour)))

	// Terminal: clock freezes at ended_at.
	done := &ent.Session{Status: session.StatusComplete, StartedAt: &started, EndedAt: &ended, TotalPauseMs: 120_000}
	assert.Equal(t, int64(18*60_000), elapsedMs(done, base.Add(24*time.Hour)))

	// Clock skew never goes negative.
	skewed := &ent.Session{Status: session.StatusActive, StartedAt: &started, TotalPauseMs: 10 * 60_000}
	assert.Zero(t, elapsedMs(skewed, base.Add(time.Minute)))
}

func TestSweepAbandoned(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	overrun := f.activeSession(t)
	fresh := f.activeSession(t)
	done := f.completeSession(t)

	// Backdate the overrun session far past its 30-minute budget plus grace.
	require.NoError(t, f.client.Session.UpdateOneID(overrun.ID).
		SetStartedAt(time.Now().Add(-2*time.Hour)).Exec(ctx))

	// Same backdated start, but 100 of those 120 minutes were spent paused.
	// Pause time never counts against the budget, so this one is safe.
	parked := f.activeSession(t)
	require.NoError(t, f.client.Session.UpdateOneID(parked.ID).
		SetStartedAt(time.Now().Add(-2*time.Hour)).
		SetTotalPauseMs(100*60*1000).Exec(ctx))

	swept, err := f.sessions.SweepAbandoned(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	got, err := f.sessions.Get(ctx, f.firmID, overrun.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusAbandoned, got.Status)
	require.NotNil(t, got.EndedAt)

	events, err := f.events.List(ctx, f.firmID, overrun.ID)
	require.NoError(t, err)
	last := events[len(events)-1]
	assert.Equal(t, sessionevent.EventTypeSessionAbandoned, last.EventType)
	assert.Equal(t, float64(30*60*1000), last.Payload["budget_ms"])

	// Within-budget, paused, and terminal sessions are untouched.
	got, err = f.sessions.Get(ctx, f.firmID, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, got.Status)
	got, err = f.sessions.Get(ctx, f.firmID, parked.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, got.Status)
	got, err = f.sessions.Get(ctx, f.firmID, done.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusComplete, got.Status)
}

func TestSessionCreate_SnapshotsPriorWeakAreas(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	complete := f.completeSession(t)
	_, err := f.briefs.Save(ctx, SaveBriefRequest{
		SessionID:       complete.ID,
		SessionScore:    62.0,
		ConsistencyRate: 0.7,
		Weakness: models.WeaknessMap{
			Composure:          55,
			TacticalDiscipline: 82,
			Professionalism:    90,
			Directness:         61,
			Consistency:        74,
		},
		NarrativeText:   "Needs work under pressure.",
		Recommendations: []string{"a", "b", "c"},
		GeneratedBy:     brief.GeneratedByHeuristic,
	})
	require.NoError(t, err)

	next := f.newSession(t)
	assert.Equal(t, []string{"composure", "directness"}, next.PriorWeakAreas,
		"dimensions under 70 from the latest brief, weakest first")
}
