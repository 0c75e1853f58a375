package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/pkg/models"
)

func TestEventAppend_SequenceIsMonotonic(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.newSession(t)

	for i := 0; i < 5; i++ {
		ev, err := f.events.Append(ctx, models.AppendEventRequest{
			SessionID: sess.ID,
			EventType: sessionevent.EventTypeQuestionAsked,
			Payload:   map[string]any{"text": "q"},
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, ev.Seq)
	}
}

func TestEventAppend_SequencesAreIndependentPerSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.newSession(t)
	b := f.newSession(t)

	evA, err := f.events.Append(ctx, models.AppendEventRequest{SessionID: a.ID, EventType: sessionevent.EventTypeQuestionAsked})
	require.NoError(t, err)
	evB, err := f.events.Append(ctx, models.AppendEventRequest{SessionID: b.ID, EventType: sessionevent.EventTypeQuestionAsked})
	require.NoError(t, err)

	assert.Equal(t, 1, evA.Seq)
	assert.Equal(t, 1, evB.Seq)
}

func TestEventAppend_RequiresSession(t *testing.T) {
	f := setup(t)
	_, err := f.events.Append(context.Background(), models.AppendEventRequest{
		EventType: sessionevent.EventTypeQuestionAsked,
	})
	assert.True(t, IsValidationError(err))
}

func TestEventList_CrossTenant(t *testing.T) {
	f := setup(t)
	sess := f.newSession(t)

	_, err := f.events.List(context.Background(), f.otherFirmID, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLastQuestionAndAnswerText(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sess := f.newSession(t)

	text, err := f.events.LastQuestionText(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, text)

	for _, ev := range []models.AppendEventRequest{
		{SessionID: sess.ID, EventType: sessionevent.EventTypeQuestionAsked, Payload: map[string]any{"text": "First question?"}},
		{SessionID: sess.ID, EventType: sessionevent.EventTypeAnswerReceived, Payload: map[string]any{"text": "First answer."}},
		{SessionID: sess.ID, EventType: sessionevent.EventTypeQuestionAsked, Payload: map[string]any{"text": "Second question?"}},
		{SessionID: sess.ID, EventType: sessionevent.EventTypeAnswerReceived, Payload: map[string]any{"text": "Second answer."}},
	} {
		_, err := f.events.Append(ctx, ev)
		require.NoError(t, err)
	}

	text, err = f.events.LastQuestionText(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second question?", text)

	text, err = f.events.LastAnswerText(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second answer.", text)

	answers, err := f.events.AnswerTexts(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"First answer.", "Second answer."}, answers)

	transcript, err := f.events.Transcript(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q: First question?\nA: First answer.\nQ: Second question?\nA: Second answer.\n", transcript)
}
