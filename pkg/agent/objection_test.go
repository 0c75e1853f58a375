package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/pkg/retrieval"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestObjectionCopilot_ParsesResult(t *testing.T) {
	chat := &fakeChat{response: `{"isObjectionable": true, "category": "COMPOUND", "freRule": "FRE 611", "explanation": "Asks about two facts at once.", "confidence": 0.88}`}
	copilot := NewObjectionCopilot(chat, nil, 3, discardLogger())

	result, err := copilot.Analyze(context.Background(), "Did you authorize the falsified revenue figures AND also instruct your CFO to conceal the discrepancy from auditors?")
	require.NoError(t, err)
	assert.True(t, result.IsObjectionable)
	assert.Equal(t, "COMPOUND", result.Category)
	assert.Equal(t, "FRE 611", result.FreRule)
	assert.Equal(t, 0.88, result.Confidence)
}

func TestObjectionCopilot_CategorySetIncludesHearsay(t *testing.T) {
	chat := &fakeChat{response: `{"isObjectionable": true, "category": "HEARSAY", "freRule": "FRE 802", "confidence": 0.8}`}
	copilot := NewObjectionCopilot(chat, nil, 3, discardLogger())

	result, err := copilot.Analyze(context.Background(), "What did your assistant tell you the auditors said?")
	require.NoError(t, err)
	assert.Equal(t, "HEARSAY", result.Category)

	require.Len(t, chat.requests, 1)
	system := chat.requests[0].System
	assert.Contains(t, system, "HEARSAY = asks the witness to repeat out-of-court statements for their truth")
	for _, category := range []string{"LEADING", "HEARSAY", "COMPOUND", "ASSUMES_FACTS", "SPECULATION"} {
		assert.Contains(t, system, `"`+category+`"`)
	}
	assert.NotContains(t, system, "ARGUMENTATIVE")
}

func TestObjectionCopilot_StripsFencedOutput(t *testing.T) {
	chat := &fakeChat{response: "```json\n{\"isObjectionable\": true, \"category\": \"LEADING\", \"confidence\": 0.7}\n```"}
	copilot := NewObjectionCopilot(chat, nil, 3, discardLogger())

	result, err := copilot.Analyze(context.Background(), "You knew the brakes were faulty, didn't you?")
	require.NoError(t, err)
	assert.Equal(t, "LEADING", result.Category)
}

func TestObjectionCopilot_UnparseableDefaultsToClean(t *testing.T) {
	chat := &fakeChat{response: "As an attorney I would say this question seems fine."}
	copilot := NewObjectionCopilot(chat, nil, 3, discardLogger())

	result, err := copilot.Analyze(context.Background(), "Where were you on March 3rd?")
	require.NoError(t, err)
	assert.False(t, result.IsObjectionable)
	assert.Zero(t, result.Confidence)
}

func TestObjectionCopilot_TransportFailureDegradesToClean(t *testing.T) {
	chat := &fakeChat{err: errors.New("connection refused")}
	copilot := NewObjectionCopilot(chat, nil, 3, discardLogger())

	result, err := copilot.Analyze(context.Background(), "Where were you?")
	require.NoError(t, err)
	assert.False(t, result.IsObjectionable)
	assert.Zero(t, result.Confidence)
}

func TestObjectionCopilot_IncludesRetrievedRules(t *testing.T) {
	chat := &fakeChat{response: `{"isObjectionable": false, "confidence": 0.2}`}
	retriever := &fakeRetriever{rules: []retrieval.Rule{
		{Content: "Rule 611(a): the court should exercise reasonable control over questioning.", RuleNumber: "611"},
	}}
	copilot := NewObjectionCopilot(chat, retriever, 3, discardLogger())

	_, err := copilot.Analyze(context.Background(), "What time did the meeting start?")
	require.NoError(t, err)
	require.Len(t, chat.requests, 1)
	assert.Contains(t, chat.requests[0].User, "Rule 611(a)")
	assert.Contains(t, chat.requests[0].User, "Relevant evidentiary rules:")
}

func TestObjectionCopilot_RetrievalFailureStillAnalyzes(t *testing.T) {
	chat := &fakeChat{response: `{"isObjectionable": false, "confidence": 0.1}`}
	retriever := &fakeRetriever{searchErr: errors.New("index down")}
	copilot := NewObjectionCopilot(chat, retriever, 3, discardLogger())

	result, err := copilot.Analyze(context.Background(), "What time did the meeting start?")
	require.NoError(t, err)
	assert.False(t, result.IsObjectionable)
}
