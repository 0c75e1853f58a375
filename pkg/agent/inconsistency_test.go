package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
)

var testThresholds = SentinelThresholds{Live: 0.75, Secondary: 0.60, FallbackLive: 0.85}

func sentinelFixtures(confidence float64, matchIndex int) (*fakeClassifier, *fakeRetriever) {
	classifier := &fakeClassifier{
		response: fmt.Sprintf(`{"contradiction_confidence": %.2f, "best_match_index": %d, "reasoning": "dates differ"}`, confidence, matchIndex),
	}
	retriever := &fakeRetriever{statements: []retrieval.PriorStatement{
		{Content: "I signed the manifest on March 3rd.", DocumentID: "doc-1", Page: 12, Line: 4},
		{Content: "The truck left before noon.", DocumentID: "doc-1", Page: 14, Line: 9},
	}}
	return classifier, retriever
}

func checkRequest() SentinelRequest {
	return SentinelRequest{
		CaseID:         "case-1",
		CaseType:       "COMMERCIAL_DISPUTE",
		QuestionText:   "When did you sign the manifest?",
		AnswerText:     "I never signed anything in March.",
		QuestionNumber: 7,
	}
}

func TestSentinel_NoRetrievalHits(t *testing.T) {
	classifier, _ := sentinelFixtures(0.99, 0)
	sentinel := NewSentinel(classifier, &fakeChat{}, &fakeRetriever{}, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.False(t, result.FlagFound)
	assert.Equal(t, RiskLow, result.ImpeachmentRisk)
	assert.Empty(t, classifier.prompts, "classifier should not run without retrieval context")
}

func TestSentinel_RetrievalErrorDegradesToEmpty(t *testing.T) {
	classifier, _ := sentinelFixtures(0.99, 0)
	retriever := &fakeRetriever{searchErr: errors.New("index down")}
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.False(t, result.FlagFound)
}

func TestSentinel_BelowSecondaryThreshold(t *testing.T) {
	classifier, retriever := sentinelFixtures(0.40, 0)
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.False(t, result.FlagFound)
	assert.False(t, result.IsLiveFired)
}

func TestSentinel_SecondaryBandFlagsWithoutFiring(t *testing.T) {
	classifier, retriever := sentinelFixtures(0.68, 1)
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, result.FlagFound)
	assert.False(t, result.IsLiveFired)
	assert.Equal(t, RiskMedium, result.ImpeachmentRisk)
	assert.Equal(t, "The truck left before noon.", result.PriorQuote)
	require.NotNil(t, result.PriorDocumentPage)
	assert.Equal(t, 14, *result.PriorDocumentPage)
}

func TestSentinel_LiveInterruption(t *testing.T) {
	classifier, retriever := sentinelFixtures(0.91, 0)
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, result.FlagFound)
	assert.True(t, result.IsLiveFired)
	assert.Equal(t, RiskHigh, result.ImpeachmentRisk)
	assert.Equal(t, "I signed the manifest on March 3rd.", result.PriorQuote)
	assert.Equal(t, 0.91, result.ContradictionConfidence)
}

func TestSentinel_FlagsReversalAgainstIndexedStatement(t *testing.T) {
	prior := "I was fully involved in reviewing all quarterly financial reports and I approved them personally."
	classifier := &fakeClassifier{
		response: `{"contradiction_confidence": 0.94, "best_match_index": 0, "reasoning": "direct reversal on report review"}`,
	}
	retriever := &fakeRetriever{statements: []retrieval.PriorStatement{
		{Content: prior, DocumentID: "doc-1", Page: 12, Line: 4},
	}}
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), SentinelRequest{
		CaseID:         "case-1",
		CaseType:       "COMMERCIAL_DISPUTE",
		QuestionText:   "Who reviewed the quarterly financial reports?",
		AnswerText:     "I never reviewed the quarterly reports; that was the CFO's job.",
		QuestionNumber: 3,
	})
	require.NoError(t, err)
	assert.True(t, result.FlagFound)
	assert.Equal(t, RiskHigh, result.ImpeachmentRisk)
	assert.Equal(t, prior, result.PriorQuote, "prior quote is the indexed sentence verbatim")
}

func TestSentinel_OutOfRangeMatchIndexDropsQuote(t *testing.T) {
	classifier, retriever := sentinelFixtures(0.80, 7)
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, result.FlagFound)
	assert.Empty(t, result.PriorQuote)
	assert.Nil(t, result.PriorDocumentPage)
	assert.Nil(t, result.PriorDocumentLine)
}

func TestSentinel_UnparseableClassifierOutputSkipsFlag(t *testing.T) {
	classifier := &fakeClassifier{response: "the answer contradicts statement one"}
	_, retriever := sentinelFixtures(0, 0)
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.False(t, result.FlagFound)
}

func TestSentinel_FallbackUsesHigherLiveBar(t *testing.T) {
	_, retriever := sentinelFixtures(0, 0)
	classifier := &fakeClassifier{err: fmt.Errorf("classify: %w", llm.ErrUnavailable)}
	fallback := &fakeChat{response: `{"contradiction_confidence": 0.80, "best_match_index": 0}`}
	sentinel := NewSentinel(classifier, fallback, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, result.FlagFound)
	assert.False(t, result.IsLiveFired, "0.80 is below the 0.85 fallback live bar")
	assert.True(t, result.UsedFallback)
	require.Len(t, fallback.requests, 1)
}

func TestSentinel_FallbackFiresAboveItsBar(t *testing.T) {
	_, retriever := sentinelFixtures(0, 0)
	classifier := &fakeClassifier{err: fmt.Errorf("classify: %w", llm.ErrUnavailable)}
	fallback := &fakeChat{response: `{"contradiction_confidence": 0.92, "best_match_index": 0}`}
	sentinel := NewSentinel(classifier, fallback, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, result.IsLiveFired)
	assert.Equal(t, RiskHigh, result.ImpeachmentRisk)
}

func TestSentinel_NonTransportClassifierErrorPropagates(t *testing.T) {
	_, retriever := sentinelFixtures(0, 0)
	classifier := &fakeClassifier{err: errors.New("bad request")}
	sentinel := NewSentinel(classifier, &fakeChat{}, retriever, testThresholds, 5, discardLogger())

	result, err := sentinel.Check(context.Background(), checkRequest())
	assert.Error(t, err)
	assert.False(t, result.FlagFound)
}

func TestSentinel_FallbackTransportErrorPropagates(t *testing.T) {
	_, retriever := sentinelFixtures(0, 0)
	classifier := &fakeClassifier{err: fmt.Errorf("classify: %w", llm.ErrUnavailable)}
	fallback := &fakeChat{err: errors.New("connection reset")}
	sentinel := NewSentinel(classifier, fallback, retriever, testThresholds, 5, discardLogger())

	_, err := sentinel.Check(context.Background(), checkRequest())
	assert.Error(t, err)
}
