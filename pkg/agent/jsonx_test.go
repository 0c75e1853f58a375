package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorePayload struct {
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

func TestDecodeModelJSON_PlainJSON(t *testing.T) {
	result := DecodeModelJSON[scorePayload](`{"confidence": 0.92, "category": "LEADING"}`)
	require.True(t, result.IsOk())
	assert.Equal(t, 0.92, result.Value().Confidence)
	assert.Equal(t, "LEADING", result.Value().Category)
}

func TestDecodeModelJSON_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"confidence\": 0.5, \"category\": \"COMPOUND\"}\n```"
	result := DecodeModelJSON[scorePayload](raw)
	require.True(t, result.IsOk())
	assert.Equal(t, "COMPOUND", result.Value().Category)
}

func TestDecodeModelJSON_FenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"confidence\": 0.5}\n```"
	result := DecodeModelJSON[scorePayload](raw)
	require.True(t, result.IsOk())
	assert.Equal(t, 0.5, result.Value().Confidence)
}

func TestDecodeModelJSON_ProseWrappedBraceBlock(t *testing.T) {
	raw := `Sure! Here is the analysis you asked for: {"confidence": 0.7, "category": "SPECULATION"} Let me know if you need more.`
	result := DecodeModelJSON[scorePayload](raw)
	require.True(t, result.IsOk())
	assert.Equal(t, "SPECULATION", result.Value().Category)
}

func TestDecodeModelJSON_LiteralNewlineInsideStringValue(t *testing.T) {
	raw := "{\"confidence\": 0.6, \"category\": \"LEADING\nquestion\"}"
	result := DecodeModelJSON[scorePayload](raw)
	require.True(t, result.IsOk())
	assert.Equal(t, "LEADING\nquestion", result.Value().Category)
}

func TestDecodeModelJSON_LiteralNewlineWithProsePreamble(t *testing.T) {
	raw := "Here you go: {\"confidence\": 0.4, \"category\": \"first line\n\tsecond line\"}"
	result := DecodeModelJSON[scorePayload](raw)
	require.True(t, result.IsOk())
	assert.Equal(t, "first line\n\tsecond line", result.Value().Category)
}

func TestDecodeModelJSON_Garbage(t *testing.T) {
	result := DecodeModelJSON[scorePayload]("I cannot answer that question.")
	require.False(t, result.IsOk())
	assert.Error(t, result.Error())
}

func TestDecodeModelJSON_NullFieldsLeaveZeroValues(t *testing.T) {
	result := DecodeModelJSON[scorePayload](`{"confidence": 0.3, "category": null}`)
	require.True(t, result.IsOk())
	assert.Empty(t, result.Value().Category)
}
