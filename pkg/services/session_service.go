package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/ent/witness"
	"github.com/verdictlabs/verdict/pkg/models"
)

// SessionService manages rehearsal session lifecycle. All status transitions
// are conditional updates (WHERE status IN expected); a zero-row result means
// another replica won the race and the caller gets ErrInvalidTransition.
type SessionService struct {
	client   *ent.Client
	events   *EventService
	statusFn func(ctx context.Context) map[string]string
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client, events *EventService) *SessionService {
	return &SessionService{client: client, events: events}
}

// SetServiceStatusFunc installs the downstream-health callback surfaced in
// live state. Wired after construction because the orchestrator that reports
// it depends on this service.
func (s *SessionService) SetServiceStatusFunc(fn func(ctx context.Context) map[string]string) {
	s.statusFn = fn
}

// witnessTokenBytes yields a 24-character URL-safe token after base64.
const witnessTokenBytes = 18

// newWitnessToken returns a random opaque join token for the witness device.
func newWitnessToken() (string, error) {
	buf := make([]byte, witnessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate witness token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Create creates a session in LOBBY for a case/witness pair. Weak areas from
// the witness's previous brief are snapshotted onto the new session so the
// interrogator can target them.
func (s *SessionService) Create(httpCtx context.Context, firmID string, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.CaseID == "" {
		return nil, NewValidationError("case_id", "required")
	}
	if req.WitnessID == "" {
		return nil, NewValidationError("witness_id", "required")
	}
	if req.AggressionLevel != "" {
		switch session.AggressionLevel(req.AggressionLevel) {
		case session.AggressionLevelStandard, session.AggressionLevelElevated, session.AggressionLevelHighStakes:
		default:
			return nil, NewValidationError("aggression_level", "must be STANDARD, ELEVATED or HIGH_STAKES")
		}
	}
	if req.DurationMinutes < 0 {
		return nil, NewValidationError("duration_minutes", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tenant scoping: the witness must belong to the case, the case to the firm.
	ok, err := s.client.Witness.Query().
		Where(
			witness.IDEQ(req.WitnessID),
			witness.CaseIDEQ(req.CaseID),
			witness.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check witness: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	// Case-level defaults fill in whatever the request omitted.
	lc, err := s.client.LegalCase.Get(ctx, req.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	weakAreas, err := s.priorWeakAreas(ctx, req.WitnessID)
	if err != nil {
		return nil, err
	}

	token, err := newWitnessToken()
	if err != nil {
		return nil, err
	}

	builder := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetCaseID(req.CaseID).
		SetWitnessID(req.WitnessID).
		SetWitnessToken(token).
		SetStatus(session.StatusLobby).
		SetLastInteractionAt(time.Now())

	switch {
	case req.AggressionLevel != "":
		builder.SetAggressionLevel(session.AggressionLevel(req.AggressionLevel))
	default:
		builder.SetAggressionLevel(session.AggressionLevel(lc.AggressionPreset))
	}
	switch {
	case len(req.FocusAreas) > 0:
		builder.SetFocusAreas(req.FocusAreas)
	case len(lc.FocusAreas) > 0:
		builder.SetFocusAreas(lc.FocusAreas)
	}
	if req.DurationMinutes > 0 {
		builder.SetDurationMinutes(req.DurationMinutes)
	}
	if req.ObjectionCopilotEnabled != nil {
		builder.SetObjectionCopilotEnabled(*req.ObjectionCopilotEnabled)
	}
	if req.SentinelEnabled != nil {
		builder.SetSentinelEnabled(*req.SentinelEnabled)
	}
	if req.ExternalContextID != "" {
		// Opaque correlation metadata: stored and echoed back, never read.
		builder.SetExternalContextID(req.ExternalContextID)
	}
	if len(weakAreas) > 0 {
		builder.SetPriorWeakAreas(weakAreas)
	}

	sess, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// priorWeakAreas pulls dimensions scoring under 70 from the witness's most
// recent brief, weakest first.
func (s *SessionService) priorWeakAreas(ctx context.Context, witnessID string) ([]string, error) {
	b, err := s.client.Brief.Query().
		Where(brief.HasSessionWith(session.WitnessIDEQ(witnessID))).
		Order(ent.Desc(brief.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load prior brief: %w", err)
	}

	type dim struct {
		name  string
		score float64
	}
	var weak []dim
	for name, score := range b.WeaknessMap {
		if score < 70 {
			weak = append(weak, dim{name, score})
		}
	}
	sort.Slice(weak, func(i, j int) bool { return weak[i].score < weak[j].score })

	names := make([]string, len(weak))
	for i, d := range weak {
		names[i] = d.name
	}
	return names, nil
}

// Get returns a session scoped to the firm.
func (s *SessionService) Get(ctx context.Context, firmID, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(
			session.IDEQ(sessionID),
			session.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// GetByWitnessToken resolves the join token handed to the witness device.
func (s *SessionService) GetByWitnessToken(ctx context.Context, token string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.WitnessTokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return sess, nil
}

// List returns the firm's sessions with optional filters, newest first.
func (s *SessionService) List(ctx context.Context, firmID string, filters models.SessionFilters) (*models.SessionListResponse, error) {
	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := s.client.Session.Query().
		Where(session.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)))

	if filters.CaseID != "" {
		q = q.Where(session.CaseIDEQ(filters.CaseID))
	}
	if filters.WitnessID != "" {
		q = q.Where(session.WitnessIDEQ(filters.WitnessID))
	}
	if filters.Status != "" {
		q = q.Where(session.StatusEQ(session.Status(filters.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := q.
		Order(ent.Desc(session.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// Start moves LOBBY -> ACTIVE and appends SESSION_STARTED.
func (s *SessionService) Start(httpCtx context.Context, firmID, sessionID string) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.Get(ctx, firmID, sessionID); err != nil {
		return nil, err
	}

	now := time.Now()
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(session.StatusLobby)).
		SetStatus(session.StatusActive).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	if _, err := s.events.Append(ctx, models.AppendEventRequest{
		SessionID: sessionID,
		EventType: sessionevent.EventTypeSessionStarted,
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, firmID, sessionID)
}

// Pause moves ACTIVE -> PAUSED and stamps paused_at.
func (s *SessionService) Pause(httpCtx context.Context, firmID, sessionID string) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.Get(ctx, firmID, sessionID); err != nil {
		return nil, err
	}

	now := time.Now()
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(session.StatusActive)).
		SetStatus(session.StatusPaused).
		SetPausedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause session: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	if _, err := s.events.Append(ctx, models.AppendEventRequest{
		SessionID: sessionID,
		EventType: sessionevent.EventTypeSessionPaused,
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, firmID, sessionID)
}

// Resume moves PAUSED -> ACTIVE and accumulates the pause into
// total_pause_ms so elapsed time excludes it.
func (s *SessionService) Resume(httpCtx context.Context, firmID, sessionID string) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := s.Get(ctx, firmID, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var pausedMs int64
	if sess.PausedAt != nil {
		pausedMs = now.Sub(*sess.PausedAt).Milliseconds()
	}

	// The CAS guard makes the read-then-add safe: a racing resume already
	// flipped the status, so this update matches zero rows.
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(session.StatusPaused)).
		SetStatus(session.StatusActive).
		SetTotalPauseMs(sess.TotalPauseMs + pausedMs).
		ClearPausedAt().
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	if _, err := s.events.Append(ctx, models.AppendEventRequest{
		SessionID: sessionID,
		EventType: sessionevent.EventTypeSessionResumed,
		Payload:   map[string]any{"paused_ms": pausedMs},
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, firmID, sessionID)
}

// End moves ACTIVE or PAUSED -> COMPLETE, stamps ended_at and enqueues brief
// generation by flipping brief_status to PENDING.
func (s *SessionService) End(httpCtx context.Context, firmID, sessionID string) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := s.Get(ctx, firmID, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var pausedMs int64
	if sess.Status == session.StatusPaused && sess.PausedAt != nil {
		pausedMs = now.Sub(*sess.PausedAt).Milliseconds()
	}

	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusIn(session.StatusActive, session.StatusPaused),
		).
		SetStatus(session.StatusComplete).
		SetEndedAt(now).
		SetTotalPauseMs(sess.TotalPauseMs + pausedMs).
		ClearPausedAt().
		SetBriefStatus(session.BriefStatusPending).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	if _, err := s.events.Append(ctx, models.AppendEventRequest{
		SessionID: sessionID,
		EventType: sessionevent.EventTypeSessionEnded,
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, firmID, sessionID)
}

// RequestBrief re-enqueues brief generation for a COMPLETE session whose
// brief job is idle or failed. A job already pending, running, or done is a
// conflict; the existing brief should be fetched instead.
func (s *SessionService) RequestBrief(ctx context.Context, firmID, sessionID string) error {
	if _, err := s.Get(ctx, firmID, sessionID); err != nil {
		return err
	}

	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusEQ(session.StatusComplete),
			session.BriefStatusIn(session.BriefStatusNone, session.BriefStatusFailed),
		).
		SetBriefStatus(session.BriefStatusPending).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to enqueue brief: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// Touch bumps last_interaction_at. Called on every witness/attorney activity
// so the abandoned-session sweeper sees live sessions.
func (s *SessionService) Touch(ctx context.Context, sessionID string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// SetCurrentTopic records the topic of the question being asked so live
// state can show it.
func (s *SessionService) SetCurrentTopic(ctx context.Context, sessionID, topic string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetCurrentTopic(topic).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set current topic: %w", err)
	}
	return nil
}

// IncrementQuestionCount adds one to question_count and returns the new
// value. Called exactly once per completed question stream.
func (s *SessionService) IncrementQuestionCount(ctx context.Context, sessionID string) (int, error) {
	err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		AddQuestionCount(1).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to increment question count: %w", err)
	}
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to reload session: %w", err)
	}
	return sess.QuestionCount, nil
}

// LiveState assembles the attorney console polling snapshot.
func (s *SessionService) LiveState(ctx context.Context, firmID, sessionID string) (*models.LiveState, error) {
	sess, err := s.Get(ctx, firmID, sessionID)
	if err != nil {
		return nil, err
	}

	pendingObjections, err := s.client.Alert.Query().
		Where(
			alert.SessionIDEQ(sessionID),
			alert.StatusEQ(alert.StatusPending),
			alert.AlertTypeEQ(alert.AlertTypeObjection),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count objections: %w", err)
	}
	pendingFlags, err := s.client.Alert.Query().
		Where(
			alert.SessionIDEQ(sessionID),
			alert.StatusEQ(alert.StatusPending),
			alert.AlertTypeEQ(alert.AlertTypeContradiction),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count flags: %w", err)
	}

	lastQuestion, err := s.events.LastQuestionText(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	transcript, err := s.events.TranscriptEntries(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	alerts, err := s.client.Alert.Query().
		Where(alert.SessionIDEQ(sessionID)).
		Order(ent.Asc(alert.FieldCreatedAt), ent.Asc(alert.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	var serviceStatus map[string]string
	if s.statusFn != nil {
		serviceStatus = s.statusFn(ctx)
	}

	now := time.Now()
	return &models.LiveState{
		SessionID:         sess.ID,
		Status:            string(sess.Status),
		QuestionCount:     sess.QuestionCount,
		CurrentTopic:      sess.CurrentTopic,
		ElapsedSeconds:    elapsedMs(sess, now) / 1000,
		TotalSeconds:      int64(sess.DurationMinutes) * 60,
		PendingObjections: pendingObjections,
		PendingFlags:      pendingFlags,
		Transcript:        transcript,
		Alerts:            alerts,
		WitnessConnected:  witnessConnected(sess, now),
		ServiceStatus:     serviceStatus,
		LastQuestion:      lastQuestion,
		LastInteractionAt: sess.LastInteractionAt,
	}, nil
}

// witnessConnectedWindow is how recently the session must have seen activity
// for the witness to count as connected.
const witnessConnectedWindow = 2 * time.Minute

func witnessConnected(sess *ent.Session, now time.Time) bool {
	if sess.Status != session.StatusActive || sess.LastInteractionAt == nil {
		return false
	}
	return now.Sub(*sess.LastInteractionAt) <= witnessConnectedWindow
}

// elapsedMs computes active (non-paused) session time. The clock freezes at
// paused_at while PAUSED and at ended_at once terminal.
func elapsedMs(sess *ent.Session, now time.Time) int64 {
	if sess.StartedAt == nil {
		return 0
	}
	end := now
	switch {
	case sess.EndedAt != nil:
		end = *sess.EndedAt
	case sess.Status == session.StatusPaused && sess.PausedAt != nil:
		end = *sess.PausedAt
	}
	elapsed := end.Sub(*sess.StartedAt).Milliseconds() - sess.TotalPauseMs
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// SweepAbandoned marks non-terminal sessions that have outlived their
// duration budget plus grace as ABANDONED and appends SESSION_ABANDONED to
// each timeline. Pause time does not count against the budget. Returns how
// many sessions were swept.
func (s *SessionService) SweepAbandoned(ctx context.Context, grace time.Duration) (int, error) {
	candidates, err := s.client.Session.Query().
		Where(session.StatusIn(session.StatusLobby, session.StatusActive, session.StatusPaused)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find sweep candidates: %w", err)
	}

	now := time.Now()
	swept := 0
	for _, sess := range candidates {
		if !overBudget(sess, grace, now) {
			continue
		}
		n, err := s.client.Session.Update().
			Where(
				session.IDEQ(sess.ID),
				session.StatusEQ(sess.Status),
			).
			SetStatus(session.StatusAbandoned).
			SetEndedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return swept, fmt.Errorf("failed to abandon session %s: %w", sess.ID, err)
		}
		if n == 0 {
			// Changed state (or was swept by another replica) between query and update.
			continue
		}
		if _, err := s.events.Append(ctx, models.AppendEventRequest{
			SessionID: sess.ID,
			EventType: sessionevent.EventTypeSessionAbandoned,
			Payload: map[string]any{
				"budget_ms": int64(sess.DurationMinutes) * 60 * 1000,
				"grace_ms":  grace.Milliseconds(),
			},
		}); err != nil {
			return swept, err
		}
		swept++
	}
	return swept, nil
}

// overBudget reports whether a session has exhausted its planned duration
// plus grace. Started sessions are measured on active (non-paused) wall
// time; LOBBY sessions that never started are measured from creation.
func overBudget(sess *ent.Session, grace time.Duration, now time.Time) bool {
	budget := time.Duration(sess.DurationMinutes) * time.Minute
	if sess.StartedAt == nil {
		return now.Sub(sess.CreatedAt) > budget+grace
	}
	elapsed := time.Duration(elapsedMs(sess, now)) * time.Millisecond
	return elapsed > budget+grace
}
