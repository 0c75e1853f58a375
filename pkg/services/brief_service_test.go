package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/pkg/models"
)

func saveReq(sessionID string, score float64) SaveBriefRequest {
	return SaveBriefRequest{
		SessionID:       sessionID,
		SessionScore:    score,
		ConsistencyRate: 0.85,
		Weakness: models.WeaknessMap{
			Composure:          70,
			TacticalDiscipline: 75,
			Professionalism:    88,
			Directness:         72,
			Consistency:        80,
		},
		NarrativeText:   "Held up reasonably well.",
		Recommendations: []string{"Pause before answering.", "Keep answers short.", "Never guess at dates."},
		GeneratedBy:     brief.GeneratedByModel,
	}
}

func (f *fixtures) witnessRow(t *testing.T) *ent.Witness {
	t.Helper()
	w, err := f.client.Witness.Get(context.Background(), f.witnessID)
	require.NoError(t, err)
	return w
}

func TestBriefSave(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.completeSession(t)

	b, err := f.briefs.Save(ctx, saveReq(sess.ID, 68.4))
	require.NoError(t, err)
	assert.Equal(t, 68.4, b.SessionScore)
	assert.Equal(t, 0.85, b.ConsistencyRate)
	assert.Equal(t, 70.0, b.WeaknessMap["composure"])
	assert.Len(t, b.Recommendations, 3)
	assert.Nil(t, b.DeltaVsBaseline, "first brief has no baseline to compare against")

	// Headline numbers are mirrored onto the session row.
	got, err := f.sessions.Get(ctx, f.firmID, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SessionScore)
	assert.Equal(t, 68.4, *got.SessionScore)

	// First brief seeds the witness baseline.
	w := f.witnessRow(t)
	assert.Equal(t, 1, w.SessionCount)
	require.NotNil(t, w.BaselineScore)
	assert.Equal(t, 68.4, *w.BaselineScore)
	require.NotNil(t, w.LatestScore)
	assert.Equal(t, 68.4, *w.LatestScore)
	assert.False(t, w.PlateauDetected)
}

func TestBriefSave_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.completeSession(t)

	req := saveReq(sess.ID, 70)
	req.Recommendations = []string{"only one"}
	_, err := f.briefs.Save(ctx, req)
	assert.True(t, IsValidationError(err))

	req = saveReq("", 70)
	_, err = f.briefs.Save(ctx, req)
	assert.True(t, IsValidationError(err))

	req = saveReq("no-such-session", 70)
	_, err = f.briefs.Save(ctx, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBriefSave_IdempotentPerSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.completeSession(t)

	first, err := f.briefs.Save(ctx, saveReq(sess.ID, 68.4))
	require.NoError(t, err)

	again, err := f.briefs.Save(ctx, saveReq(sess.ID, 99.9))
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 68.4, again.SessionScore, "existing brief returned unchanged")
}

func TestBriefSave_DeltaAndPlateau(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// Three sessions for the same witness with scores inside a 3-point band.
	scores := []float64{70.0, 71.5, 72.0}
	for i, score := range scores {
		sess := f.completeSession(t)
		b, err := f.briefs.Save(ctx, saveReq(sess.ID, score))
		require.NoError(t, err)

		w := f.witnessRow(t)
		assert.Equal(t, i+1, w.SessionCount)
		require.NotNil(t, w.BaselineScore)
		assert.Equal(t, 70.0, *w.BaselineScore, "baseline never moves after the first brief")

		if i == 0 {
			assert.Nil(t, b.DeltaVsBaseline)
		} else {
			require.NotNil(t, b.DeltaVsBaseline)
			assert.InDelta(t, score-70.0, *b.DeltaVsBaseline, 1e-9)
		}

		// Plateau needs three scores within a 3-point band.
		assert.Equal(t, i == 2, w.PlateauDetected, "session %d", i+1)
	}
}

func TestBriefGetBySession_CrossTenant(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.completeSession(t)

	_, err := f.briefs.Save(ctx, saveReq(sess.ID, 68.4))
	require.NoError(t, err)

	_, err = f.briefs.GetBySession(ctx, f.otherFirmID, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	b, err := f.briefs.GetBySession(ctx, f.firmID, sess.ID)
	require.NoError(t, err)

	_, err = f.briefs.Get(ctx, f.otherFirmID, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBriefShare(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.completeSession(t)

	saved, err := f.briefs.Save(ctx, saveReq(sess.ID, 68.4))
	require.NoError(t, err)

	shared, err := f.briefs.Share(ctx, f.firmID, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, shared.ShareToken)
	token := *shared.ShareToken
	assert.NotEmpty(t, token)
	require.NotNil(t, shared.ShareExpiresAt)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *shared.ShareExpiresAt, time.Minute)

	// The share link resolves without any firm scope.
	got, err := f.briefs.GetByShareToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	// Re-sharing rotates the token; the old one stops resolving.
	rotated, err := f.briefs.Share(ctx, f.firmID, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, rotated.ShareToken)
	assert.NotEqual(t, token, *rotated.ShareToken)
	_, err = f.briefs.GetByShareToken(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBriefGetByShareToken_Expired(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.completeSession(t)

	saved, err := f.briefs.Save(ctx, saveReq(sess.ID, 68.4))
	require.NoError(t, err)

	expiring := NewBriefService(f.client, -time.Hour)
	shared, err := expiring.Share(ctx, f.firmID, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, shared.ShareToken)

	_, err = f.briefs.GetByShareToken(ctx, *shared.ShareToken)
	assert.ErrorIs(t, err, ErrShareExpired)
}

func TestBriefGetByShareToken_Unknown(t *testing.T) {
	f := setup(t)
	_, err := f.briefs.GetByShareToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.briefs.GetByShareToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
