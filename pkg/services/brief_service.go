package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/witness"
	"github.com/verdictlabs/verdict/pkg/models"
)

// BriefService persists generated briefs, mints share links and maintains the
// witness score rollups.
type BriefService struct {
	client       *ent.Client
	shareLinkTTL time.Duration
}

// NewBriefService creates a new BriefService
func NewBriefService(client *ent.Client, shareLinkTTL time.Duration) *BriefService {
	return &BriefService{client: client, shareLinkTTL: shareLinkTTL}
}

// SaveBriefRequest is the generator's output, ready to persist.
type SaveBriefRequest struct {
	SessionID       string
	SessionScore    float64
	ConsistencyRate float64
	Weakness        models.WeaknessMap
	NarrativeText   string
	Recommendations []string
	ConfirmedFlags  int
	ObjectionCount  int
	ComposureAlerts int
	PDFKey          string
	CoachAudioKey   string
	GeneratedBy     brief.GeneratedBy
}

// Save persists a brief and applies witness rollups. Briefs are idempotent
// per session: when a row already exists it is returned unchanged.
func (s *BriefService) Save(httpCtx context.Context, req SaveBriefRequest) (*ent.Brief, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if len(req.Recommendations) != 3 {
		return nil, NewValidationError("recommendations", "exactly three required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, req.SessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	deltaVsBaseline, err := s.applyWitnessRollup(ctx, sess.WitnessID, req.SessionScore)
	if err != nil {
		return nil, err
	}

	builder := s.client.Brief.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetSessionScore(req.SessionScore).
		SetConsistencyRate(req.ConsistencyRate).
		SetWeaknessMap(req.Weakness.AsMap()).
		SetNarrativeText(req.NarrativeText).
		SetRecommendations(req.Recommendations).
		SetConfirmedFlags(req.ConfirmedFlags).
		SetObjectionCount(req.ObjectionCount).
		SetComposureAlerts(req.ComposureAlerts).
		SetGeneratedBy(req.GeneratedBy)
	if deltaVsBaseline != nil {
		builder.SetDeltaVsBaseline(*deltaVsBaseline)
	}
	if req.PDFKey != "" {
		builder.SetPdfKey(req.PDFKey)
	}
	if req.CoachAudioKey != "" {
		builder.SetCoachAudioKey(req.CoachAudioKey)
	}

	b, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.getBySession(ctx, req.SessionID)
		}
		return nil, fmt.Errorf("failed to save brief: %w", err)
	}

	// Mirror the headline numbers onto the session row for list views.
	err = s.client.Session.Update().
		Where(session.IDEQ(req.SessionID)).
		SetSessionScore(req.SessionScore).
		SetConsistencyRate(req.ConsistencyRate).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mirror score onto session: %w", err)
	}

	return b, nil
}

// applyWitnessRollup bumps session_count, updates latest/baseline scores and
// recomputes plateau detection. Returns the delta vs baseline if a baseline
// already existed.
func (s *BriefService) applyWitnessRollup(ctx context.Context, witnessID string, score float64) (*float64, error) {
	w, err := s.client.Witness.Get(ctx, witnessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load witness: %w", err)
	}

	update := s.client.Witness.Update().
		Where(witness.IDEQ(witnessID)).
		AddSessionCount(1).
		SetLatestScore(score)

	var delta *float64
	if w.BaselineScore == nil {
		update.SetBaselineScore(score)
	} else {
		d := score - *w.BaselineScore
		delta = &d
	}

	plateau, err := s.plateauDetected(ctx, witnessID, score)
	if err != nil {
		return nil, err
	}
	update.SetPlateauDetected(plateau)

	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update witness rollup: %w", err)
	}
	return delta, nil
}

// plateauDetected reports whether the last three scores (including the new
// one) sit within a 3-point band.
func (s *BriefService) plateauDetected(ctx context.Context, witnessID string, newScore float64) (bool, error) {
	prior, err := s.client.Brief.Query().
		Where(brief.HasSessionWith(session.WitnessIDEQ(witnessID))).
		Order(ent.Desc(brief.FieldCreatedAt)).
		Limit(2).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load prior briefs: %w", err)
	}
	if len(prior) < 2 {
		return false, nil
	}

	scores := []float64{newScore, prior[0].SessionScore, prior[1].SessionScore}
	lo, hi := scores[0], scores[0]
	for _, v := range scores[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi-lo <= 3.0, nil
}

func (s *BriefService) getBySession(ctx context.Context, sessionID string) (*ent.Brief, error) {
	b, err := s.client.Brief.Query().
		Where(brief.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brief: %w", err)
	}
	return b, nil
}

// GetBySession returns the session's brief, firm-scoped.
func (s *BriefService) GetBySession(ctx context.Context, firmID, sessionID string) (*ent.Brief, error) {
	b, err := s.client.Brief.Query().
		Where(
			brief.SessionIDEQ(sessionID),
			brief.HasSessionWith(session.HasLegalCaseWith(legalcase.FirmIDEQ(firmID))),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brief: %w", err)
	}
	return b, nil
}

// Get returns a brief by ID, firm-scoped.
func (s *BriefService) Get(ctx context.Context, firmID, briefID string) (*ent.Brief, error) {
	b, err := s.client.Brief.Query().
		Where(
			brief.IDEQ(briefID),
			brief.HasSessionWith(session.HasLegalCaseWith(legalcase.FirmIDEQ(firmID))),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brief: %w", err)
	}
	return b, nil
}

// Share mints (or refreshes) the unauthenticated share token for a brief.
func (s *BriefService) Share(ctx context.Context, firmID, briefID string) (*ent.Brief, error) {
	b, err := s.Get(ctx, firmID, briefID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.shareLinkTTL)
	b, err = s.client.Brief.UpdateOne(b).
		SetShareToken(uuid.New().String()).
		SetShareExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mint share token: %w", err)
	}
	return b, nil
}

// GetByShareToken resolves a share link without authentication. Expired
// links return ErrShareExpired (HTTP 410), unknown tokens ErrNotFound.
func (s *BriefService) GetByShareToken(ctx context.Context, token string) (*ent.Brief, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	b, err := s.client.Brief.Query().
		Where(brief.ShareTokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}
	if b.ShareExpiresAt == nil || time.Now().After(*b.ShareExpiresAt) {
		return nil, ErrShareExpired
	}
	return b, nil
}
