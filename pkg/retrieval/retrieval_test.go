package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementPointID_Deterministic(t *testing.T) {
	a := StatementPointID("doc-1", 12, 4)
	b := StatementPointID("doc-1", 12, 4)
	c := StatementPointID("doc-1", 12, 5)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSortStatements_ScoreDescending(t *testing.T) {
	stmts := []PriorStatement{
		{Content: "low", Score: 0.41},
		{Content: "high", Score: 0.93},
		{Content: "mid", Score: 0.72},
	}
	sortStatements(stmts)
	assert.Equal(t, "high", stmts[0].Content)
	assert.Equal(t, "mid", stmts[1].Content)
	assert.Equal(t, "low", stmts[2].Content)
}

func TestSortStatements_TiesBreakByPageThenLine(t *testing.T) {
	stmts := []PriorStatement{
		{Content: "p30 l2", Score: 0.8, Page: 30, Line: 2},
		{Content: "p12 l9", Score: 0.8, Page: 12, Line: 9},
		{Content: "p12 l3", Score: 0.8, Page: 12, Line: 3},
		{Content: "winner", Score: 0.9, Page: 99, Line: 99},
	}
	sortStatements(stmts)
	assert.Equal(t, "winner", stmts[0].Content)
	assert.Equal(t, "p12 l3", stmts[1].Content)
	assert.Equal(t, "p12 l9", stmts[2].Content)
	assert.Equal(t, "p30 l2", stmts[3].Content)
}
