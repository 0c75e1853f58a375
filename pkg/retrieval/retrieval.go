// Package retrieval provides the vector search tier: prior witness
// statements (case-scoped) and the global evidentiary rules reference.
//
// Searches degrade to empty results when the index is unreachable; a
// rehearsal session must keep running without retrieval context. Upserts
// surface their errors; ingestion needs to know.
package retrieval

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// PriorStatement is one retrieved chunk of prior testimony.
type PriorStatement struct {
	Content     string
	DocumentID  string
	Page        int
	Line        int
	DocType     string
	WitnessName string
	Score       float32
}

// Rule is one retrieved evidentiary rule.
type Rule struct {
	Content    string
	RuleNumber string
	Article    string
	Score      float32
}

// StatementChunk is the unit of ingestion for prior testimony.
type StatementChunk struct {
	CaseID      string
	DocumentID  string
	Content     string
	Page        int
	Line        int
	DocType     string
	WitnessName string
}

// RuleChunk is the unit of ingestion for evidentiary rules.
type RuleChunk struct {
	RuleNumber         string
	Article            string
	Content            string
	DepositionRelevant bool
}

// Retriever is the read/write interface over both collections.
type Retriever interface {
	// SearchStatements returns up to k prior statements for a case, best first.
	SearchStatements(ctx context.Context, caseID, query string, k int) ([]PriorStatement, error)

	// SearchRules returns up to k deposition-relevant rules, best first.
	SearchRules(ctx context.Context, query string, k int) ([]Rule, error)

	// UpsertStatements indexes testimony chunks. Chunk identity is derived
	// from (document_id, page, line), so re-ingesting a document is
	// idempotent.
	UpsertStatements(ctx context.Context, chunks []StatementChunk) error

	// UpsertRules indexes evidentiary rules keyed by rule_number.
	UpsertRules(ctx context.Context, chunks []RuleChunk) error

	// Healthy reports whether the index is reachable.
	Healthy(ctx context.Context) error
}

// sortStatements orders results by score descending, with ties broken by
// page then line ascending so equal-score chunks come back in a stable,
// document-order sequence.
func sortStatements(stmts []PriorStatement) {
	sort.SliceStable(stmts, func(i, j int) bool {
		if stmts[i].Score != stmts[j].Score {
			return stmts[i].Score > stmts[j].Score
		}
		if stmts[i].Page != stmts[j].Page {
			return stmts[i].Page < stmts[j].Page
		}
		return stmts[i].Line < stmts[j].Line
	})
}

// StatementPointID derives the deterministic point ID for a testimony chunk.
// UUIDv5 over document_id:page:line means the same chunk always maps to the
// same point.
func StatementPointID(documentID string, page, line int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%d:%d", documentID, page, line))).String()
}

// RulePointID derives the deterministic point ID for a rule. rule_number is
// the canonical key; rule_id aliases from older exports are normalized to it
// before ingestion.
func RulePointID(ruleNumber string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("rule:"+ruleNumber)).String()
}
