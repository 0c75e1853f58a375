// Package agent implements the four deposition agents: the streaming
// interrogator, the objection co-pilot, the inconsistency sentinel, and the
// post-session reviewer.
//
// Each agent is a small struct over the llm and retrieval interfaces with one
// entry point and a typed result. Degradation contracts differ per agent and
// are documented on each.
package agent

import (
	"fmt"
	"strings"
)

// Aggression levels, lowest to highest pressure.
const (
	AggressionStandard   = "STANDARD"
	AggressionElevated   = "ELEVATED"
	AggressionHighStakes = "HIGH_STAKES"
)

// aggressionInstruction maps a session's aggression level to the directive
// appended to the interrogator prompt.
func aggressionInstruction(level string) string {
	switch strings.ToUpper(level) {
	case AggressionElevated:
		return "Press on contradictions. Use controlled silence."
	case AggressionHighStakes:
		return "Maximum pressure. Expose inconsistencies directly. Demand specifics."
	default:
		return "Ask methodically. Allow witness to elaborate."
	}
}

// CaseContext carries the case material every agent prompt draws on. The
// orchestrator assembles it once per session from the case, witness, and
// session rows.
type CaseContext struct {
	CaseID          string
	CaseName        string
	CaseType        string
	OpposingParty   string
	WitnessName     string
	WitnessRole     string
	ExtractedFacts  string
	PriorStatements string
	ExhibitList     string
	FocusAreas      []string
	PriorWeakAreas  []string
	AggressionLevel string
}

// truncate caps s at n runes. Prompt sections are capped so one oversized
// document cannot crowd out the rest of the context window.
func truncate(s string, n int) string {
	if s == "" {
		return "N/A"
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// orNA substitutes "N/A" for empty prompt fields.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// joinOr joins a list for a prompt, with a fallback when empty.
func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// quoteList renders retrieved statements as an indexed prompt block.
func quoteList(contents []string) string {
	var b strings.Builder
	for i, c := range contents {
		fmt.Fprintf(&b, "[%d] %q\n", i, c)
	}
	return strings.TrimRight(b.String(), "\n")
}
