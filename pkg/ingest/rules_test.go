package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesJSONL_ParsesRecords(t *testing.T) {
	input := `{"rule_number": "611", "article": "VI", "content": "Mode and order of examining witnesses.", "is_deposition_relevant": true}
{"rule_number": "403", "article": "IV", "content": "Excluding relevant evidence for prejudice.", "is_deposition_relevant": false}`

	chunks, err := LoadRulesJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "611", chunks[0].RuleNumber)
	assert.Equal(t, "VI", chunks[0].Article)
	assert.True(t, chunks[0].DepositionRelevant)
	assert.False(t, chunks[1].DepositionRelevant)
}

func TestLoadRulesJSONL_RuleIDAlias(t *testing.T) {
	input := `{"rule_id": "611", "content": "Mode and order."}`

	chunks, err := LoadRulesJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "611", chunks[0].RuleNumber)
}

func TestLoadRulesJSONL_MatchingAliasAccepted(t *testing.T) {
	input := `{"rule_number": "611", "rule_id": "611", "content": "Mode and order."}`

	chunks, err := LoadRulesJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, chunks, 1)
}

func TestLoadRulesJSONL_ConflictingKeysRejected(t *testing.T) {
	input := `{"rule_number": "611", "rule_id": "403", "content": "Mode and order."}`

	_, err := LoadRulesJSONL(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts")
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadRulesJSONL_MissingNumberRejected(t *testing.T) {
	input := `{"content": "Orphaned rule text."}`

	_, err := LoadRulesJSONL(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing rule_number")
}

func TestLoadRulesJSONL_MissingContentRejected(t *testing.T) {
	input := `{"rule_number": "611", "content": "   "}`

	_, err := LoadRulesJSONL(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing content")
}

func TestLoadRulesJSONL_SkipsBlankLinesAndKeepsLineNumbers(t *testing.T) {
	input := "\n{\"rule_number\": \"611\", \"content\": \"ok\"}\n\nnot json\n"

	_, err := LoadRulesJSONL(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestLoadRulesJSONL_RelevanceDefaultsTrue(t *testing.T) {
	input := `{"rule_number": "611", "content": "Mode and order."}`

	chunks, err := LoadRulesJSONL(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, chunks[0].DepositionRelevant)
}

func TestLoadRulesJSONL_EmptyInput(t *testing.T) {
	chunks, err := LoadRulesJSONL(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
