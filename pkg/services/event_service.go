package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/pkg/models"
)

// EventService owns the append-only session timeline. Sequence numbers are
// assigned here; the unique (session_id, seq) index turns cross-replica races
// into constraint errors which are retried.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

const appendRetries = 3

// Append writes the next timeline event for a session.
func (s *EventService) Append(httpCtx context.Context, req models.AppendEventRequest) (*ent.SessionEvent, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	// Timeline writes must survive client disconnects mid-stream.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		ev, err := s.appendOnce(ctx, req)
		if err == nil {
			return ev, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to append event after %d attempts: %w", appendRetries, lastErr)
}

func (s *EventService) appendOnce(ctx context.Context, req models.AppendEventRequest) (*ent.SessionEvent, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var next []struct {
		Max int `json:"max"`
	}
	err = tx.SessionEvent.Query().
		Where(sessionevent.SessionIDEQ(req.SessionID)).
		Aggregate(ent.As(ent.Max(sessionevent.FieldSeq), "max")).
		Scan(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("failed to read max seq: %w", err)
	}
	seq := 1
	if len(next) > 0 {
		seq = next[0].Max + 1
	}

	ev, err := tx.SessionEvent.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetSeq(seq).
		SetEventType(req.EventType).
		SetPayload(req.Payload).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event: %w", err)
	}
	return ev, nil
}

// List returns a session's timeline in seq order, firm-scoped.
func (s *EventService) List(ctx context.Context, firmID, sessionID string) ([]*ent.SessionEvent, error) {
	ok, err := s.client.Session.Query().
		Where(
			session.IDEQ(sessionID),
			session.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	events, err := s.client.SessionEvent.Query().
		Where(sessionevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(sessionevent.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// LastQuestionText returns the text of the most recent completed question, or
// empty when none exists.
func (s *EventService) LastQuestionText(ctx context.Context, sessionID string) (string, error) {
	ev, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.EventTypeEQ(sessionevent.EventTypeQuestionAsked),
		).
		Order(ent.Desc(sessionevent.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last question: %w", err)
	}
	if text, ok := ev.Payload["text"].(string); ok {
		return text, nil
	}
	return "", nil
}

// LastAnswerText returns the most recent answer transcript, or empty when the
// witness has not answered yet.
func (s *EventService) LastAnswerText(ctx context.Context, sessionID string) (string, error) {
	ev, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.EventTypeEQ(sessionevent.EventTypeAnswerReceived),
		).
		Order(ent.Desc(sessionevent.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last answer: %w", err)
	}
	if text, ok := ev.Payload["text"].(string); ok {
		return text, nil
	}
	return "", nil
}

// AnswerTexts returns every answer transcript for a session in seq order.
// Used by the brief generator's heuristic scoring.
func (s *EventService) AnswerTexts(ctx context.Context, sessionID string) ([]string, error) {
	events, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.EventTypeEQ(sessionevent.EventTypeAnswerReceived),
		).
		Order(ent.Asc(sessionevent.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	texts := make([]string, 0, len(events))
	for _, ev := range events {
		if text, ok := ev.Payload["text"].(string); ok {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

// TranscriptEntries returns the session's question/answer timeline in seq
// order, shaped for the live-state snapshot.
func (s *EventService) TranscriptEntries(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	events, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.EventTypeIn(
				sessionevent.EventTypeQuestionAsked,
				sessionevent.EventTypeAnswerReceived,
			),
		).
		Order(ent.Asc(sessionevent.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript entries: %w", err)
	}

	entries := make([]models.TranscriptEntry, 0, len(events))
	for _, ev := range events {
		kind := "QUESTION"
		if ev.EventType == sessionevent.EventTypeAnswerReceived {
			kind = "ANSWER"
		}
		text, _ := ev.Payload["text"].(string)
		truncated, _ := ev.Payload["truncated"].(bool)
		qn := 0
		switch n := ev.Payload["question_number"].(type) {
		case float64:
			qn = int(n)
		case int:
			qn = n
		}
		entries = append(entries, models.TranscriptEntry{
			Seq:            ev.Seq,
			Kind:           kind,
			QuestionNumber: qn,
			Text:           text,
			Truncated:      truncated,
		})
	}
	return entries, nil
}

// Transcript renders the session Q/A timeline as plain text for the review
// model prompt.
func (s *EventService) Transcript(ctx context.Context, sessionID string) (string, error) {
	events, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.EventTypeIn(
				sessionevent.EventTypeQuestionAsked,
				sessionevent.EventTypeAnswerReceived,
			),
		).
		Order(ent.Asc(sessionevent.FieldSeq)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load transcript: %w", err)
	}

	var b strings.Builder
	for _, ev := range events {
		text, _ := ev.Payload["text"].(string)
		switch ev.EventType {
		case sessionevent.EventTypeQuestionAsked:
			b.WriteString("Q: " + text + "\n")
		case sessionevent.EventTypeAnswerReceived:
			b.WriteString("A: " + text + "\n")
		}
	}
	return b.String(), nil
}
