package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/pkg/models"
)

func (f *fixtures) createAlert(t *testing.T, sessionID string, alertType alert.AlertType, confidence float64) string {
	t.Helper()
	a, err := f.alerts.Create(context.Background(), models.CreateAlertRequest{
		SessionID:  sessionID,
		AlertType:  alertType,
		Confidence: confidence,
	})
	require.NoError(t, err)
	return a.ID
}

func TestAlertCreate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	page, line, qn := 12, 4, 7
	a, err := f.alerts.Create(ctx, models.CreateAlertRequest{
		SessionID:       sess.ID,
		AlertType:       alert.AlertTypeContradiction,
		Confidence:      0.82,
		ImpeachmentRisk: alert.ImpeachmentRiskHigh,
		PriorQuote:      "I signed it on March 3rd.",
		CurrentQuote:    "I never signed anything.",
		PriorSourcePage: &page,
		PriorSourceLine: &line,
		QuestionNumber:  &qn,
	})
	require.NoError(t, err)
	assert.Equal(t, alert.StatusPending, a.Status)
	assert.Equal(t, 0.82, a.Confidence)
	require.NotNil(t, a.PriorSourcePage)
	assert.Equal(t, 12, *a.PriorSourcePage)
	assert.Nil(t, a.ConfirmedAt)
}

func TestAlertCreate_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	_, err := f.alerts.Create(ctx, models.CreateAlertRequest{AlertType: alert.AlertTypeObjection, Confidence: 0.5})
	assert.True(t, IsValidationError(err))

	_, err = f.alerts.Create(ctx, models.CreateAlertRequest{SessionID: sess.ID, AlertType: alert.AlertTypeObjection, Confidence: 1.3})
	assert.True(t, IsValidationError(err))
}

func TestAlertConfirmReject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	confirmID := f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.8)
	rejectID := f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.6)

	confirmed, err := f.alerts.Confirm(ctx, f.firmID, confirmID)
	require.NoError(t, err)
	assert.Equal(t, alert.StatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)

	rejected, err := f.alerts.Reject(ctx, f.firmID, rejectID)
	require.NoError(t, err)
	assert.Equal(t, alert.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedAt)

	// Only PENDING alerts can move.
	_, err = f.alerts.Confirm(ctx, f.firmID, confirmID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.alerts.Reject(ctx, f.firmID, confirmID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAlertResolve_CrossTenant(t *testing.T) {
	f := setup(t)
	sess := f.activeSession(t)
	alertID := f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.8)

	_, err := f.alerts.Confirm(context.Background(), f.otherFirmID, alertID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertList(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.8)
	f.createAlert(t, sess.ID, alert.AlertTypeObjection, 0.75)

	alerts, err := f.alerts.List(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)

	_, err = f.alerts.List(ctx, f.otherFirmID, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountsForBrief(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.activeSession(t)

	confirmedID := f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.9)
	f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.65) // stays pending
	rejectedID := f.createAlert(t, sess.ID, alert.AlertTypeContradiction, 0.62)
	f.createAlert(t, sess.ID, alert.AlertTypeObjection, 0.8)
	f.createAlert(t, sess.ID, alert.AlertTypeComposure, 0.7)

	_, err := f.alerts.Confirm(ctx, f.firmID, confirmedID)
	require.NoError(t, err)
	_, err = f.alerts.Reject(ctx, f.firmID, rejectedID)
	require.NoError(t, err)

	confirmed, pendingFlags, objections, composure, err := f.alerts.CountsForBrief(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, pendingFlags)
	assert.Equal(t, 1, objections)
	assert.Equal(t, 1, composure)
}
