package brief

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	entbrief "github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/pkg/agent"
	"github.com/verdictlabs/verdict/pkg/blob"
	"github.com/verdictlabs/verdict/pkg/models"
	"github.com/verdictlabs/verdict/pkg/services"
	"github.com/verdictlabs/verdict/pkg/voice"
)

// Generator produces and persists the post-session brief. The model reviewer
// runs first; any failure there drops to the deterministic heuristic so a
// completed session always ends with a brief.
type Generator struct {
	client   *ent.Client
	reviewer *agent.Reviewer
	events   *services.EventService
	alerts   *services.AlertService
	briefs   *services.BriefService
	voice    *voice.Client
	blobs    *blob.Store
	logger   *slog.Logger
}

// NewGenerator wires the brief pipeline.
func NewGenerator(
	client *ent.Client,
	reviewer *agent.Reviewer,
	events *services.EventService,
	alerts *services.AlertService,
	briefs *services.BriefService,
	voiceClient *voice.Client,
	blobs *blob.Store,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		client:   client,
		reviewer: reviewer,
		events:   events,
		alerts:   alerts,
		briefs:   briefs,
		voice:    voiceClient,
		blobs:    blobs,
		logger:   logger,
	}
}

// FailedNarrativePrefix marks placeholder briefs written when generation
// itself errored. Generate replaces such rows on the next attempt.
const FailedNarrativePrefix = "Generation failed: "

// Generate builds the brief for a completed session. Idempotent: if a real
// brief already exists it is returned as-is; a placeholder left by an
// earlier failed run is replaced.
func (g *Generator) Generate(ctx context.Context, sessionID string) (*ent.Brief, error) {
	if existing, err := g.client.Brief.Query().
		Where(entbrief.SessionIDEQ(sessionID)).
		Only(ctx); err == nil {
		if !strings.HasPrefix(existing.NarrativeText, FailedNarrativePrefix) {
			return existing, nil
		}
		if err := g.client.Brief.DeleteOne(existing).Exec(ctx); err != nil {
			return nil, fmt.Errorf("brief: clear failed placeholder: %w", err)
		}
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("brief: check existing: %w", err)
	}

	sess, err := g.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		WithLegalCase().
		WithWitness().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("brief: load session: %w", err)
	}
	lc := sess.Edges.LegalCase
	wit := sess.Edges.Witness
	if lc == nil || wit == nil {
		return nil, fmt.Errorf("brief: session %s missing case or witness edge", sessionID)
	}

	transcript, err := g.events.Transcript(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("brief: build transcript: %w", err)
	}
	answers, err := g.events.AnswerTexts(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("brief: collect answers: %w", err)
	}
	confirmed, pendingFlags, objections, composure, err := g.alerts.CountsForBrief(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, generatedBy := g.assess(ctx, sess, lc, wit, transcript, answers, confirmed, pendingFlags, objections)

	pdfKey := g.renderAndStorePDF(ctx, sess, lc, wit, result)
	coachKey := g.narrate(ctx, lc, result.Narrative)

	saved, err := g.briefs.Save(ctx, services.SaveBriefRequest{
		SessionID:       sessionID,
		SessionScore:    result.SessionScore,
		ConsistencyRate: result.ConsistencyRate,
		Weakness:        result.Weakness,
		NarrativeText:   result.Narrative,
		Recommendations: result.Recommendations,
		ConfirmedFlags:  confirmed,
		ObjectionCount:  objections,
		ComposureAlerts: composure,
		PDFKey:          pdfKey,
		CoachAudioKey:   coachKey,
		GeneratedBy:     generatedBy,
	})
	if err != nil {
		return nil, err
	}

	_, err = g.events.Append(ctx, models.AppendEventRequest{
		SessionID: sessionID,
		EventType: sessionevent.EventTypeBriefGenerated,
		Payload: map[string]any{
			"brief_id":      saved.ID,
			"session_score": saved.SessionScore,
			"generated_by":  string(saved.GeneratedBy),
		},
	})
	if err != nil {
		// The brief row is the durable artifact; a missing timeline entry is
		// worth a warning, not a retry of the whole job.
		g.logger.Warn("brief generated but timeline append failed", "session_id", sessionID, "error", err)
	}

	return saved, nil
}

// RecordFailure writes the placeholder brief for a generation run that
// errored out, so brief reads return a row instead of nothing. A real brief
// already in place is left alone, and the next generation attempt replaces
// the placeholder. Witness rollups do not apply to failures.
func (g *Generator) RecordFailure(ctx context.Context, sessionID string, genErr error) error {
	exists, err := g.client.Brief.Query().
		Where(entbrief.SessionIDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("brief: check existing: %w", err)
	}
	if exists {
		return nil
	}

	_, err = g.client.Brief.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSessionScore(0).
		SetConsistencyRate(0).
		SetWeaknessMap(models.WeaknessMap{}.AsMap()).
		SetNarrativeText(FailedNarrativePrefix + genErr.Error()).
		SetRecommendations(PadRecommendations(nil)).
		SetGeneratedBy(entbrief.GeneratedByHeuristic).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another worker got there first.
			return nil
		}
		return fmt.Errorf("brief: record failure placeholder: %w", err)
	}
	return nil
}

// assess runs the model reviewer and falls back to the heuristic scorer.
func (g *Generator) assess(
	ctx context.Context,
	sess *ent.Session,
	lc *ent.LegalCase,
	wit *ent.Witness,
	transcript string,
	answers []string,
	confirmed, pendingFlags, objections int,
) (HeuristicResult, entbrief.GeneratedBy) {
	review, err := g.reviewer.Review(ctx, agent.ReviewRequest{
		Case: agent.CaseContext{
			CaseID:          lc.ID,
			CaseName:        lc.CaseName,
			CaseType:        string(lc.CaseType),
			WitnessName:     wit.Name,
			WitnessRole:     wit.Role,
			AggressionLevel: string(sess.AggressionLevel),
		},
		Transcript:              transcript,
		QuestionCount:           sess.QuestionCount,
		ConfirmedContradictions: confirmed,
		PendingFlags:            pendingFlags,
		ObjectionCount:          objections,
	})
	if err != nil {
		g.logger.Warn("review model unavailable, scoring heuristically", "session_id", sess.ID, "error", err)
		return ScoreHeuristically(HeuristicInput{
			Answers:                 answers,
			AggressionLevel:         string(sess.AggressionLevel),
			QuestionCount:           sess.QuestionCount,
			ConfirmedContradictions: confirmed,
			PendingFlags:            pendingFlags,
			ObjectionCount:          objections,
		}), entbrief.GeneratedByHeuristic
	}

	return HeuristicResult{
		SessionScore:    clampScore(review.SessionScore),
		ConsistencyRate: clamp01(review.ConsistencyRate),
		Weakness: models.WeaknessMap{
			Composure:          clampScore(review.WeaknessMapScores.Composure),
			TacticalDiscipline: clampScore(review.WeaknessMapScores.TacticalDiscipline),
			Professionalism:    clampScore(review.WeaknessMapScores.Professionalism),
			Directness:         clampScore(review.WeaknessMapScores.Directness),
			Consistency:        clampScore(review.WeaknessMapScores.Consistency),
		},
		Narrative:       review.NarrativeText,
		Recommendations: PadRecommendations(review.TopRecommendations),
	}, entbrief.GeneratedByModel
}

// renderAndStorePDF renders the PDF and uploads it. The PDF is supplementary;
// failures log and return an empty key.
func (g *Generator) renderAndStorePDF(ctx context.Context, sess *ent.Session, lc *ent.LegalCase, wit *ent.Witness, result HeuristicResult) string {
	sessionDate := sess.CreatedAt
	if sess.StartedAt != nil {
		sessionDate = *sess.StartedAt
	}

	data, err := RenderPDF(PDFInput{
		CaseName:        lc.CaseName,
		WitnessName:     wit.Name,
		SessionDate:     sessionDate,
		QuestionCount:   sess.QuestionCount,
		SessionScore:    result.SessionScore,
		ConsistencyRate: result.ConsistencyRate,
		Weakness:        result.Weakness,
		Narrative:       result.Narrative,
		Recommendations: result.Recommendations,
	})
	if err != nil {
		g.logger.Warn("brief pdf render failed", "session_id", sess.ID, "error", err)
		return ""
	}

	key := blob.BuildKey(lc.FirmID, lc.ID, "brief.pdf", time.Now())
	if err := g.blobs.UploadBytes(ctx, key, data, "application/pdf"); err != nil {
		if !errors.Is(err, blob.ErrDisabled) {
			g.logger.Warn("brief pdf upload failed", "session_id", sess.ID, "error", err)
		}
		return ""
	}
	return key
}

// narrate synthesizes the coach summary. Best effort end to end.
func (g *Generator) narrate(ctx context.Context, lc *ent.LegalCase, narrative string) string {
	if !g.voice.Enabled() || !g.blobs.Enabled() {
		return ""
	}
	audio, err := g.voice.SynthesizeCoach(ctx, narrative)
	if err != nil {
		g.logger.Warn("coach narration synthesis failed", "case_id", lc.ID, "error", err)
		return ""
	}
	key := blob.BuildKey(lc.FirmID, lc.ID, "coach.mp3", time.Now())
	if err := g.blobs.UploadBytes(ctx, key, audio, "audio/mpeg"); err != nil {
		g.logger.Warn("coach narration upload failed", "case_id", lc.ID, "error", err)
		return ""
	}
	return key
}
