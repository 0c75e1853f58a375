// Package session orchestrates the live rehearsal loop: question streaming,
// answer ingestion, and the agent passes that hang off each exchange.
//
// The orchestrator is the only writer of question/answer events for a
// session. Within a process that is enforced by a sharded lock table; across
// replicas by the unique (session_id, seq) index and the conditional status
// updates in the services layer.
package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/verdictlabs/verdict/ent"
	entalert "github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/legalcase"
	entsession "github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/pkg/agent"
	"github.com/verdictlabs/verdict/pkg/blob"
	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/models"
	"github.com/verdictlabs/verdict/pkg/services"
	"github.com/verdictlabs/verdict/pkg/voice"
)

// SSE frame names emitted during question streaming.
const (
	FrameQuestionStart = "QUESTION_START"
	FrameQuestionChunk = "QUESTION_CHUNK"
	FrameQuestionAudio = "QUESTION_AUDIO"
	FrameQuestionEnd   = "QUESTION_END"
	FrameError         = "ERROR"
)

// EmitFunc delivers one SSE frame to the client. A non-nil return means the
// client is gone and streaming should stop.
type EmitFunc func(event string, data map[string]any) error

// Orchestrator drives the live question/answer loop.
type Orchestrator struct {
	client       *ent.Client
	sessions     *services.SessionService
	events       *services.EventService
	alerts       *services.AlertService
	interrogator *agent.Interrogator
	objection    *agent.ObjectionCopilot
	sentinel     *agent.Sentinel
	voice        *voice.Client
	blobs        *blob.Store

	// objectionThreshold is the minimum confidence for raising an alert off
	// an objectionable question.
	objectionThreshold float64

	locks  lockTable
	logger *slog.Logger
}

// NewOrchestrator wires the live loop.
func NewOrchestrator(
	client *ent.Client,
	sessions *services.SessionService,
	events *services.EventService,
	alerts *services.AlertService,
	interrogator *agent.Interrogator,
	objection *agent.ObjectionCopilot,
	sentinel *agent.Sentinel,
	voiceClient *voice.Client,
	blobs *blob.Store,
	objectionThreshold float64,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		client:             client,
		sessions:           sessions,
		events:             events,
		alerts:             alerts,
		interrogator:       interrogator,
		objection:          objection,
		sentinel:           sentinel,
		voice:              voiceClient,
		blobs:              blobs,
		objectionThreshold: objectionThreshold,
		logger:             logger,
	}
}

// loadActive loads a session with its case and witness, firm-scoped when
// firmID is non-empty (attorney path) and unscoped when empty (witness-token
// path, where the token itself is the capability).
func (o *Orchestrator) loadActive(ctx context.Context, firmID, sessionID string) (*ent.Session, error) {
	q := o.client.Session.Query().
		Where(entsession.IDEQ(sessionID)).
		WithLegalCase().
		WithWitness()
	if firmID != "" {
		q = q.Where(entsession.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)))
	}

	sess, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("orchestrator: load session: %w", err)
	}
	if sess.Status != entsession.StatusActive {
		return nil, services.ErrInvalidTransition
	}
	if sess.Edges.LegalCase == nil || sess.Edges.Witness == nil {
		return nil, fmt.Errorf("orchestrator: session %s missing case or witness edge", sessionID)
	}
	return sess, nil
}

func caseContext(sess *ent.Session) agent.CaseContext {
	lc := sess.Edges.LegalCase
	wit := sess.Edges.Witness
	return agent.CaseContext{
		CaseID:          lc.ID,
		CaseName:        lc.CaseName,
		CaseType:        string(lc.CaseType),
		OpposingParty:   lc.OpposingParty,
		WitnessName:     wit.Name,
		WitnessRole:     wit.Role,
		ExtractedFacts:  flattenFacts(lc.ExtractedFacts),
		PriorStatements: lc.PriorStatements,
		ExhibitList:     lc.ExhibitList,
		FocusAreas:      sess.FocusAreas,
		PriorWeakAreas:  sess.PriorWeakAreas,
		AggressionLevel: string(sess.AggressionLevel),
	}
}

// flattenFacts renders the extracted_facts JSON as stable "key: value" lines
// for the prompt. Keys are sorted so the same case always yields the same
// prompt text.
func flattenFacts(facts map[string]interface{}) string {
	if len(facts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, facts[k])
	}
	return strings.TrimRight(b.String(), "\n")
}

// AskInput carries the caller-supplied steering fields for the next
// question. The server-side question count stays authoritative for
// numbering; PriorAnswer falls back to the recorded last answer when empty.
type AskInput struct {
	Topic               string
	PriorAnswer         string
	HesitationDetected  bool
	RecentInconsistency bool
}

// AskQuestion streams the next interrogator question as SSE frames.
//
// The contract mirrors the frame sequence exactly: a provider failure before
// the first token returns llm.ErrUnavailable (no frames emitted, caller maps
// to 502). The QUESTION_ASKED event is appended and question_count
// incremented before QUESTION_END goes out, so a client that sees the
// terminal frame can rely on the question being on the timeline. A failure
// or disconnect after the first token persists the partial text as a
// truncated QUESTION_ASKED; that question still counts.
func (o *Orchestrator) AskQuestion(ctx context.Context, firmID, sessionID string, in AskInput, emit EmitFunc) error {
	return o.locks.withLock(sessionID, func() error {
		sess, err := o.loadActive(ctx, firmID, sessionID)
		if err != nil {
			return err
		}
		questionNumber := sess.QuestionCount + 1

		priorAnswer := in.PriorAnswer
		if priorAnswer == "" {
			priorAnswer, err = o.events.LastAnswerText(ctx, sessionID)
			if err != nil {
				return err
			}
		}

		stream, err := o.interrogator.StreamQuestion(ctx, agent.QuestionRequest{
			Case:                caseContext(sess),
			QuestionNumber:      questionNumber,
			CurrentTopic:        in.Topic,
			PriorAnswer:         priorAnswer,
			HesitationDetected:  in.HesitationDetected,
			RecentInconsistency: in.RecentInconsistency,
		})
		if err != nil {
			return err
		}

		if in.Topic != "" {
			if err := o.sessions.SetCurrentTopic(ctx, sessionID, in.Topic); err != nil {
				o.logger.Warn("failed to record current topic", "session_id", sessionID, "error", err)
			}
		}

		if err := emit(FrameQuestionStart, map[string]any{"questionNumber": questionNumber}); err != nil {
			return o.persistTruncated(sessionID, questionNumber, "")
		}

		var disconnected bool
		fullText, streamErr := llm.CollectStream(stream, func(delta string) {
			if disconnected {
				return
			}
			if err := emit(FrameQuestionChunk, map[string]any{"text": delta}); err != nil {
				disconnected = true
			}
		})

		if streamErr != nil || disconnected {
			if streamErr != nil && !disconnected {
				// Mid-stream provider failure: tell the client before closing.
				_ = emit(FrameError, map[string]any{"message": "question generation interrupted"})
			}
			return o.persistTruncated(sessionID, questionNumber, fullText)
		}

		if audio := o.synthesize(ctx, fullText); audio != "" {
			if err := emit(FrameQuestionAudio, map[string]any{"audioBase64": audio}); err != nil {
				return o.persistTruncated(sessionID, questionNumber, fullText)
			}
		}

		_, err = o.events.Append(ctx, models.AppendEventRequest{
			SessionID: sessionID,
			EventType: sessionevent.EventTypeQuestionAsked,
			Payload: map[string]any{
				"question_number": questionNumber,
				"text":            fullText,
			},
		})
		if err != nil {
			return err
		}
		if _, err := o.sessions.IncrementQuestionCount(ctx, sessionID); err != nil {
			return err
		}

		if err := emit(FrameQuestionEnd, map[string]any{"fullText": fullText}); err != nil {
			// The question is already persisted and counted; a disconnect on
			// the terminal frame changes nothing server-side.
			o.logger.Debug("client gone before QUESTION_END", "session_id", sessionID)
		}
		return o.sessions.Touch(ctx, sessionID)
	})
}

// persistTruncated records an aborted question stream. The partial
// transcript is kept for the brief and the question still counts, so the
// next stream picks up at the following number.
func (o *Orchestrator) persistTruncated(sessionID string, questionNumber int, partial string) error {
	// Background context: the request context is typically already cancelled
	// here.
	ctx := context.Background()
	_, err := o.events.Append(ctx, models.AppendEventRequest{
		SessionID: sessionID,
		EventType: sessionevent.EventTypeQuestionAsked,
		Payload: map[string]any{
			"question_number": questionNumber,
			"text":            partial,
			"truncated":       true,
		},
	})
	if err != nil {
		o.logger.Error("failed to persist truncated question", "session_id", sessionID, "error", err)
		return err
	}
	if _, err := o.sessions.IncrementQuestionCount(ctx, sessionID); err != nil {
		o.logger.Error("failed to count truncated question", "session_id", sessionID, "error", err)
		return err
	}
	return nil
}

// synthesize renders question audio, best effort.
func (o *Orchestrator) synthesize(ctx context.Context, text string) string {
	if !o.voice.Enabled() {
		return ""
	}
	audio, err := o.voice.Synthesize(ctx, text)
	if err != nil {
		o.logger.Warn("question tts failed, continuing text-only", "error", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(audio)
}

// AnswerOutcome is the result of ingesting one witness answer.
type AnswerOutcome struct {
	Transcript string                 `json:"transcript"`
	Objection  *agent.ObjectionResult `json:"objection,omitempty"`
	Sentinel   *agent.SentinelResult  `json:"sentinel,omitempty"`
}

// InaudibleTranscript is recorded when speech-to-text fails; the session
// keeps moving and the brief shows the gap.
const InaudibleTranscript = "(inaudible)"

// AnswerMeta carries the client-reported metadata for one answer upload.
type AnswerMeta struct {
	QuestionNumber int
	DurationMs     int64
}

// IngestAnswer transcribes witness audio, appends ANSWER_RECEIVED, and runs
// the per-answer agent passes the session has enabled. STT failure records
// an "(inaudible)" transcript rather than failing the answer; agent pass
// failures degrade to absent results.
func (o *Orchestrator) IngestAnswer(ctx context.Context, firmID, sessionID string, audio []byte, filename string, meta AnswerMeta) (*AnswerOutcome, error) {
	var outcome *AnswerOutcome
	err := o.locks.withLock(sessionID, func() error {
		sess, err := o.loadActive(ctx, firmID, sessionID)
		if err != nil {
			return err
		}

		transcript, err := o.voice.Transcribe(ctx, audio, filename)
		if err != nil {
			if errors.Is(err, voice.ErrDisabled) {
				return services.NewValidationError("audio", "voice transcription is disabled; submit text answers")
			}
			o.logger.Warn("transcription failed, recording inaudible answer",
				"session_id", sessionID, "error", err)
			transcript = InaudibleTranscript
		}

		o.archiveAudio(ctx, sess, audio, filename)

		out, err := o.recordAnswer(ctx, sess, transcript, meta)
		if err != nil {
			return err
		}
		outcome = out
		return nil
	})
	return outcome, err
}

// archiveAudio stores the raw answer recording, best effort. Losing the
// recording never fails the answer.
func (o *Orchestrator) archiveAudio(ctx context.Context, sess *ent.Session, audio []byte, filename string) {
	if !o.blobs.Enabled() {
		return
	}
	lc := sess.Edges.LegalCase
	key := blob.BuildKey(lc.FirmID, lc.ID, filename, time.Now())
	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := o.blobs.UploadBytes(ctx, key, audio, contentType); err != nil {
		o.logger.Warn("answer audio upload failed", "session_id", sess.ID, "error", err)
	}
}

// IngestTextAnswer records a typed answer, for voice-disabled rehearsals.
func (o *Orchestrator) IngestTextAnswer(ctx context.Context, firmID, sessionID, text string) (*AnswerOutcome, error) {
	var outcome *AnswerOutcome
	err := o.locks.withLock(sessionID, func() error {
		sess, err := o.loadActive(ctx, firmID, sessionID)
		if err != nil {
			return err
		}
		out, err := o.recordAnswer(ctx, sess, text, AnswerMeta{})
		if err != nil {
			return err
		}
		outcome = out
		return nil
	})
	return outcome, err
}

func (o *Orchestrator) recordAnswer(ctx context.Context, sess *ent.Session, transcript string, meta AnswerMeta) (*AnswerOutcome, error) {
	if transcript == "" {
		return nil, services.NewValidationError("answer", "empty transcript")
	}

	questionText, err := o.events.LastQuestionText(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	questionNumber := sess.QuestionCount
	if meta.QuestionNumber > 0 {
		questionNumber = meta.QuestionNumber
	}
	payload := map[string]any{
		"question_number": questionNumber,
		"text":            transcript,
	}
	if meta.DurationMs > 0 {
		payload["duration_ms"] = meta.DurationMs
	}

	_, err = o.events.Append(ctx, models.AppendEventRequest{
		SessionID: sess.ID,
		EventType: sessionevent.EventTypeAnswerReceived,
		Payload:   payload,
	})
	if err != nil {
		return nil, err
	}
	if err := o.sessions.Touch(ctx, sess.ID); err != nil {
		return nil, err
	}

	outcome := &AnswerOutcome{Transcript: transcript}

	if sess.ObjectionCopilotEnabled && questionText != "" {
		if res, err := o.RunObjection(ctx, sess, questionText); err != nil {
			o.logger.Warn("objection pass failed", "session_id", sess.ID, "error", err)
		} else {
			outcome.Objection = res
		}
	}

	if sess.SentinelEnabled {
		if res, err := o.RunSentinel(ctx, sess, questionText, transcript); err != nil {
			o.logger.Warn("sentinel pass failed", "session_id", sess.ID, "error", err)
		} else {
			outcome.Sentinel = res
		}
	}

	return outcome, nil
}

// RunObjection analyzes one question, raising an OBJECTION alert and an
// OBJECTION_RAISED event when confidence clears the threshold.
func (o *Orchestrator) RunObjection(ctx context.Context, sess *ent.Session, questionText string) (*agent.ObjectionResult, error) {
	result, err := o.objection.Analyze(ctx, questionText)
	if err != nil {
		return nil, err
	}

	if result.IsObjectionable && result.Confidence >= o.objectionThreshold {
		qn := sess.QuestionCount
		_, err := o.alerts.Create(ctx, models.CreateAlertRequest{
			SessionID:         sess.ID,
			AlertType:         entalert.AlertTypeObjection,
			Confidence:        result.Confidence,
			CurrentQuote:      questionText,
			FreRule:           result.FreRule,
			FreClassification: result.Category,
			QuestionNumber:    &qn,
		})
		if err != nil {
			return nil, err
		}
		_, err = o.events.Append(ctx, models.AppendEventRequest{
			SessionID: sess.ID,
			EventType: sessionevent.EventTypeObjectionRaised,
			Payload: map[string]any{
				"question_number": qn,
				"category":        result.Category,
				"fre_rule":        result.FreRule,
				"confidence":      result.Confidence,
				"explanation":     result.Explanation,
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// RunSentinel checks one answer against prior statements, raising a
// CONTRADICTION alert and a FLAG_RAISED event when a flag is found.
func (o *Orchestrator) RunSentinel(ctx context.Context, sess *ent.Session, questionText, answerText string) (*agent.SentinelResult, error) {
	lc := sess.Edges.LegalCase
	result, err := o.sentinel.Check(ctx, agent.SentinelRequest{
		CaseID:         lc.ID,
		CaseType:       string(lc.CaseType),
		QuestionText:   questionText,
		AnswerText:     answerText,
		QuestionNumber: sess.QuestionCount,
	})
	if err != nil {
		return nil, err
	}

	if result.FlagFound {
		qn := sess.QuestionCount
		_, err := o.alerts.Create(ctx, models.CreateAlertRequest{
			SessionID:       sess.ID,
			AlertType:       entalert.AlertTypeContradiction,
			Confidence:      result.ContradictionConfidence,
			ImpeachmentRisk: entalert.ImpeachmentRisk(result.ImpeachmentRisk),
			PriorQuote:      result.PriorQuote,
			PriorSourcePage: result.PriorDocumentPage,
			PriorSourceLine: result.PriorDocumentLine,
			CurrentQuote:    answerText,
			QuestionNumber:  &qn,
		})
		if err != nil {
			return nil, err
		}
		_, err = o.events.Append(ctx, models.AppendEventRequest{
			SessionID: sess.ID,
			EventType: sessionevent.EventTypeFlagRaised,
			Payload: map[string]any{
				"question_number": qn,
				"confidence":      result.ContradictionConfidence,
				"live":            result.IsLiveFired,
				"prior_quote":     result.PriorQuote,
				"risk":            result.ImpeachmentRisk,
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// Load resolves a session for the agent endpoints, firm-scoped.
func (o *Orchestrator) Load(ctx context.Context, firmID, sessionID string) (*ent.Session, error) {
	return o.loadActive(ctx, firmID, sessionID)
}

// ServiceStatus summarizes per-tier availability for the live-state
// snapshot. It reflects configuration, not live probes; degraded tiers also
// log at call time.
func (o *Orchestrator) ServiceStatus(_ context.Context) map[string]string {
	status := map[string]string{
		"interrogator": "ok",
		"voice":        "ok",
		"storage":      "ok",
	}
	if !o.voice.Enabled() {
		status["voice"] = "disabled"
	}
	if !o.blobs.Enabled() {
		status["storage"] = "disabled"
	}
	return status
}
