package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewJSON = `{
  "sessionScore": 71.5,
  "consistencyRate": 0.86,
  "topRecommendations": ["Pause before answering.", "Keep answers short.", "Never guess at dates."],
  "narrativeText": "The witness held up under standard questioning.",
  "weaknessMapScores": {
    "composure": 70,
    "tactical_discipline": 75,
    "professionalism": 88,
    "directness": 72,
    "consistency": 80
  },
  "confirmedFlags": 1,
  "objectionCount": 2,
  "composureAlerts": 0
}`

func TestReviewer_ParsesAssessment(t *testing.T) {
	chat := &fakeChat{response: reviewJSON}
	reviewer := NewReviewer(chat)

	result, err := reviewer.Review(context.Background(), ReviewRequest{
		Case:                    CaseContext{CaseName: "Meridian v. Calloway", CaseType: "COMMERCIAL_DISPUTE", WitnessName: "Daniel Okafor"},
		Transcript:              "Q: Where were you?\nA: At the depot.\n",
		QuestionCount:           14,
		ConfirmedContradictions: 1,
		ObjectionCount:          2,
	})
	require.NoError(t, err)
	assert.Equal(t, 71.5, result.SessionScore)
	assert.Equal(t, 0.86, result.ConsistencyRate)
	assert.Len(t, result.TopRecommendations, 3)
	assert.Equal(t, 75.0, result.WeaknessMapScores.TacticalDiscipline)

	require.Len(t, chat.requests, 1)
	prompt := chat.requests[0].User
	assert.Contains(t, prompt, "QUESTIONS ASKED: 14")
	assert.Contains(t, prompt, "CONFIRMED CONTRADICTIONS: 1")
	assert.Contains(t, prompt, "A: At the depot.")
}

func TestReviewer_UnparseableOutputIsAnError(t *testing.T) {
	chat := &fakeChat{response: "The witness did okay overall, I'd say 7/10."}
	reviewer := NewReviewer(chat)

	_, err := reviewer.Review(context.Background(), ReviewRequest{Transcript: "Q: ...\n"})
	assert.Error(t, err)
}

func TestReviewer_TransportErrorPropagates(t *testing.T) {
	chat := &fakeChat{err: errors.New("timeout")}
	reviewer := NewReviewer(chat)

	_, err := reviewer.Review(context.Background(), ReviewRequest{Transcript: "Q: ...\n"})
	assert.Error(t, err)
}
