package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
)

func TestInterrogator_StreamsQuestion(t *testing.T) {
	chat := &fakeChat{chunks: []llm.Chunk{
		llm.TextChunk{Text: "When did you "},
		llm.TextChunk{Text: "last inspect the brakes?"},
	}}
	interrogator := NewInterrogator(chat, nil, 200)

	ch, err := interrogator.StreamQuestion(context.Background(), QuestionRequest{
		Case:           CaseContext{CaseID: "case-1", CaseName: "Meridian v. Calloway", CaseType: "COMMERCIAL_DISPUTE"},
		QuestionNumber: 1,
	})
	require.NoError(t, err)

	full, err := llm.CollectStream(ch, nil)
	require.NoError(t, err)
	assert.Equal(t, "When did you last inspect the brakes?", full)
}

func TestInterrogator_PromptAssembly(t *testing.T) {
	chat := &fakeChat{chunks: []llm.Chunk{llm.TextChunk{Text: "Q?"}}}
	retriever := &fakeRetriever{statements: []retrieval.PriorStatement{
		{Content: "The shipment left on the third."},
	}}
	interrogator := NewInterrogator(chat, retriever, 200)

	_, err := interrogator.StreamQuestion(context.Background(), QuestionRequest{
		Case: CaseContext{
			CaseID:          "case-1",
			CaseName:        "Meridian v. Calloway",
			CaseType:        "COMMERCIAL_DISPUTE",
			OpposingParty:   "Calloway Freight",
			WitnessName:     "Daniel Okafor",
			WitnessRole:     "operations manager",
			ExtractedFacts:  `{"incident_date": "2024-03-03"}`,
			FocusAreas:      []string{"timeline", "maintenance records"},
			AggressionLevel: AggressionElevated,
		},
		QuestionNumber:      4,
		CurrentTopic:        "maintenance records",
		PriorAnswer:         "I never saw the manifest.",
		HesitationDetected:  true,
		RecentInconsistency: true,
	})
	require.NoError(t, err)

	require.Len(t, chat.requests, 1)
	prompt := chat.requests[0].User
	assert.Contains(t, prompt, "CASE: Meridian v. Calloway (COMMERCIAL_DISPUTE)")
	assert.Contains(t, prompt, "WITNESS: Daniel Okafor")
	assert.Contains(t, prompt, "operations manager")
	assert.Contains(t, prompt, "timeline, maintenance records")
	assert.Contains(t, prompt, `Witness last answered: "I never saw the manifest."`)
	assert.Contains(t, prompt, `"The shipment left on the third."`)
	assert.Contains(t, prompt, "hesitated significantly")
	assert.Contains(t, prompt, "Probe harder.")
	assert.Contains(t, prompt, "Press on contradictions.")
	assert.Contains(t, prompt, "Question number: 4")

	// The prior answer doubles as the retrieval query.
	require.Len(t, retriever.queries, 1)
	assert.Equal(t, "I never saw the manifest.", retriever.queries[0])
}

func TestInterrogator_EmptyFieldsRenderNA(t *testing.T) {
	chat := &fakeChat{chunks: []llm.Chunk{llm.TextChunk{Text: "Q?"}}}
	interrogator := NewInterrogator(chat, nil, 200)

	_, err := interrogator.StreamQuestion(context.Background(), QuestionRequest{
		Case:           CaseContext{CaseID: "case-1", CaseName: "Ashford", CaseType: "CONTRACT_BREACH"},
		QuestionNumber: 1,
	})
	require.NoError(t, err)

	prompt := chat.requests[0].User
	assert.Contains(t, prompt, "OPPOSING PARTY: N/A")
	assert.Contains(t, prompt, "KEY FACTS: N/A")
	assert.Contains(t, prompt, "EXHIBITS: N/A")
	assert.Contains(t, prompt, "FOCUS AREAS: None")
	assert.Contains(t, prompt, "Prior weak areas: None (first session)")
	assert.Contains(t, prompt, "First question on this topic.")
	assert.Contains(t, prompt, "Ask methodically.")
}

func TestInterrogator_TruncatesOversizedFacts(t *testing.T) {
	chat := &fakeChat{chunks: []llm.Chunk{llm.TextChunk{Text: "Q?"}}}
	interrogator := NewInterrogator(chat, nil, 200)

	facts := strings.Repeat("x", 1000)
	_, err := interrogator.StreamQuestion(context.Background(), QuestionRequest{
		Case:           CaseContext{CaseID: "case-1", CaseName: "Ashford", CaseType: "CONTRACT_BREACH", ExtractedFacts: facts},
		QuestionNumber: 1,
	})
	require.NoError(t, err)

	prompt := chat.requests[0].User
	assert.Contains(t, prompt, "KEY FACTS: "+strings.Repeat("x", 600)+"\n")
	assert.NotContains(t, prompt, strings.Repeat("x", 601))
}

func TestAggressionInstruction(t *testing.T) {
	assert.Contains(t, aggressionInstruction(AggressionStandard), "methodically")
	assert.Contains(t, aggressionInstruction(AggressionElevated), "controlled silence")
	assert.Contains(t, aggressionInstruction(AggressionHighStakes), "Maximum pressure")
	assert.Contains(t, aggressionInstruction("elevated"), "controlled silence")
	assert.Contains(t, aggressionInstruction(""), "methodically")
}
