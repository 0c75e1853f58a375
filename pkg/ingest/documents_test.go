package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
)

func TestChunkStatements_SyntheticPagination(t *testing.T) {
	doc := &ent.Document{ID: "doc-1", CaseID: "case-1", DocType: "TRANSCRIPT"}

	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, fmt.Sprintf("Statement %d.", i))
	}
	chunks := chunkStatements(doc, strings.Join(lines, "\n"), "Daniel Okafor")

	require.Len(t, chunks, 30)
	assert.Equal(t, 1, chunks[0].Page)
	assert.Equal(t, 1, chunks[0].Line)
	assert.Equal(t, 1, chunks[24].Page)
	assert.Equal(t, 25, chunks[24].Line)
	assert.Equal(t, 2, chunks[25].Page)
	assert.Equal(t, 1, chunks[25].Line)
	assert.Equal(t, "doc-1", chunks[0].DocumentID)
	assert.Equal(t, "case-1", chunks[0].CaseID)
	assert.Equal(t, "TRANSCRIPT", chunks[0].DocType)
	assert.Equal(t, "Daniel Okafor", chunks[0].WitnessName)
}

func TestChunkStatements_SkipsBlankLines(t *testing.T) {
	doc := &ent.Document{ID: "doc-1", CaseID: "case-1"}
	text := "First line.\n\n   \nSecond line.\n"

	chunks := chunkStatements(doc, text, "")
	require.Len(t, chunks, 2)
	assert.Equal(t, "First line.", chunks[0].Content)
	assert.Equal(t, "Second line.", chunks[1].Content)
	assert.Equal(t, 2, chunks[1].Line)
}

func TestChunkStatements_EmptyDocument(t *testing.T) {
	doc := &ent.Document{ID: "doc-1", CaseID: "case-1"}
	assert.Empty(t, chunkStatements(doc, "\n\n\n", ""))
}

func TestPageCount(t *testing.T) {
	doc := &ent.Document{ID: "doc-1", CaseID: "case-1"}
	var lines []string
	for i := 0; i < 51; i++ {
		lines = append(lines, "line")
	}
	chunks := chunkStatements(doc, strings.Join(lines, "\n"), "")
	assert.Equal(t, 3, pageCount(chunks))
	assert.Equal(t, 0, pageCount(nil))
}

func TestIsTextual(t *testing.T) {
	assert.True(t, isTextual("text/plain"))
	assert.True(t, isTextual("text/csv"))
	assert.True(t, isTextual("application/json"))
	assert.False(t, isTextual("application/pdf"))
	assert.False(t, isTextual("audio/webm"))
	assert.False(t, isTextual(""))
}
