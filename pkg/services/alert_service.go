package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/pkg/models"
)

// AlertService manages attorney-facing alerts raised by the agents.
type AlertService struct {
	client *ent.Client
}

// NewAlertService creates a new AlertService
func NewAlertService(client *ent.Client) *AlertService {
	return &AlertService{client: client}
}

// Create records a new PENDING alert. Called by the agent layer, so the
// session is trusted to exist; writes survive client disconnects.
func (s *AlertService) Create(httpCtx context.Context, req models.CreateAlertRequest) (*ent.Alert, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return nil, NewValidationError("confidence", "must be within [0,1]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Alert.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetAlertType(req.AlertType).
		SetConfidence(req.Confidence).
		SetPriorQuote(req.PriorQuote).
		SetCurrentQuote(req.CurrentQuote).
		SetFreRule(req.FreRule).
		SetFreClassification(req.FreClassification)

	if req.ImpeachmentRisk != "" {
		builder.SetImpeachmentRisk(req.ImpeachmentRisk)
	}
	if req.PriorSourcePage != nil {
		builder.SetPriorSourcePage(*req.PriorSourcePage)
	}
	if req.PriorSourceLine != nil {
		builder.SetPriorSourceLine(*req.PriorSourceLine)
	}
	if req.QuestionNumber != nil {
		builder.SetQuestionNumber(*req.QuestionNumber)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return a, nil
}

// List returns a session's alerts, newest first, firm-scoped.
func (s *AlertService) List(ctx context.Context, firmID, sessionID string) ([]*ent.Alert, error) {
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

	alerts, err := s.client.Alert.Query().
		Where(alert.SessionIDEQ(sessionID)).
		Order(ent.Desc(alert.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Confirm marks a PENDING alert CONFIRMED. Only pending alerts can move;
// repeated confirms are conflicts.
func (s *AlertService) Confirm(ctx context.Context, firmID, alertID string) (*ent.Alert, error) {
	return s.resolve(ctx, firmID, alertID, alert.StatusConfirmed)
}

// Reject marks a PENDING alert REJECTED.
func (s *AlertService) Reject(ctx context.Context, firmID, alertID string) (*ent.Alert, error) {
	return s.resolve(ctx, firmID, alertID, alert.StatusRejected)
}

func (s *AlertService) resolve(ctx context.Context, firmID, alertID string, to alert.Status) (*ent.Alert, error) {
	a, err := s.client.Alert.Query().
		Where(
			alert.IDEQ(alertID),
			alert.HasSessionWith(session.HasLegalCaseWith(legalcase.FirmIDEQ(firmID))),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	now := time.Now()
	update := s.client.Alert.Update().
		Where(alert.IDEQ(alertID), alert.StatusEQ(alert.StatusPending)).
		SetStatus(to)
	if to == alert.StatusConfirmed {
		update.SetConfirmedAt(now)
	} else {
		update.SetRejectedAt(now)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}
	return s.client.Alert.Get(ctx, a.ID)
}

// ConfirmedContradictions counts confirmed contradiction alerts for a session.
func (s *AlertService) ConfirmedContradictions(ctx context.Context, sessionID string) (int, error) {
	return s.client.Alert.Query().
		Where(
			alert.SessionIDEQ(sessionID),
			alert.AlertTypeEQ(alert.AlertTypeContradiction),
			alert.StatusEQ(alert.StatusConfirmed),
		).
		Count(ctx)
}

// CountsForBrief returns the alert tallies the brief generator needs.
func (s *AlertService) CountsForBrief(ctx context.Context, sessionID string) (confirmed, pendingFlags, objections, composure int, err error) {
	confirmed, err = s.ConfirmedContradictions(ctx, sessionID)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count confirmed contradictions: %w", err)
	}
	pendingFlags, err = s.client.Alert.Query().
		Where(
			alert.SessionIDEQ(sessionID),
			alert.AlertTypeEQ(alert.AlertTypeContradiction),
			alert.StatusEQ(alert.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count pending flags: %w", err)
	}
	objections, err = s.client.Alert.Query().
		Where(
			alert.SessionIDEQ(sessionID),
			alert.AlertTypeEQ(alert.AlertTypeObjection),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count objections: %w", err)
	}
	composure, err = s.client.Alert.Query().
		Where(
			alert.SessionIDEQ(sessionID),
			alert.AlertTypeEQ(alert.AlertTypeComposure),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count composure alerts: %w", err)
	}
	return confirmed, pendingFlags, objections, composure, nil
}
