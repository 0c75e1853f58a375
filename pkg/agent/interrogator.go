package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
)

const interrogatorSystem = `You are an elite deposition attorney conducting a high-stakes mock deposition.
Your sole job is to generate ONE sharp, focused deposition question to ask the witness right now.

Rules:
- Output ONLY the question text, with no preamble, no JSON, no labels, no quotes around it.
- The question must be a single, non-compound question (one fact per question).
- Use the case facts, prior statements, and exhibits provided to trap the witness in contradictions.
- Calibrate aggression to the instruction given.
- Questions should reference specific exhibits, dates, or quotes when available.
- Never ask two things at once.`

// QuestionRequest carries everything the interrogator needs for one question.
type QuestionRequest struct {
	Case           CaseContext
	QuestionNumber int
	CurrentTopic   string

	// PriorAnswer is the witness's last answer, used both in the prompt and
	// as the retrieval query for prior sworn statements.
	PriorAnswer string

	HesitationDetected  bool
	RecentInconsistency bool
}

// Interrogator streams deposition questions.
type Interrogator struct {
	chat      llm.ChatClient
	retriever retrieval.Retriever
	maxTokens int
}

// NewInterrogator builds the streaming question agent.
func NewInterrogator(chat llm.ChatClient, retriever retrieval.Retriever, maxTokens int) *Interrogator {
	if maxTokens <= 0 {
		maxTokens = 200
	}
	return &Interrogator{chat: chat, retriever: retriever, maxTokens: maxTokens}
}

// StreamQuestion starts generating the next question. Errors before the first
// token are returned directly so the caller can respond with a plain upstream
// error instead of a broken stream.
func (a *Interrogator) StreamQuestion(ctx context.Context, req QuestionRequest) (<-chan llm.Chunk, error) {
	return a.chat.ChatStream(ctx, llm.ChatRequest{
		System:    interrogatorSystem,
		User:      a.buildPrompt(ctx, req),
		MaxTokens: a.maxTokens,
	})
}

func (a *Interrogator) buildPrompt(ctx context.Context, req QuestionRequest) string {
	c := req.Case

	// Prior statements retrieved against the last answer sharpen the trap.
	// Retrieval degrades to empty; the question still gets asked.
	priorLines := c.PriorStatements
	if req.PriorAnswer != "" && a.retriever != nil {
		statements, _ := a.retriever.SearchStatements(ctx, c.CaseID, req.PriorAnswer, 3)
		if len(statements) > 0 {
			var b strings.Builder
			b.WriteString("Relevant prior sworn statements:\n")
			for _, s := range statements {
				fmt.Fprintf(&b, "- %q\n", s.Content)
			}
			priorLines = strings.TrimRight(b.String(), "\n")
		}
	}

	lastAnswer := "First question on this topic."
	if req.PriorAnswer != "" {
		lastAnswer = fmt.Sprintf("Witness last answered: %q", req.PriorAnswer)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CASE: %s (%s)\n", c.CaseName, c.CaseType)
	fmt.Fprintf(&b, "WITNESS: %s — %s\n", c.WitnessName, orNA(c.WitnessRole))
	fmt.Fprintf(&b, "OPPOSING PARTY: %s\n", orNA(c.OpposingParty))
	fmt.Fprintf(&b, "KEY FACTS: %s\n", truncate(c.ExtractedFacts, 600))
	fmt.Fprintf(&b, "PRIOR STATEMENTS TO CHALLENGE: %s\n", truncate(priorLines, 400))
	fmt.Fprintf(&b, "EXHIBITS: %s\n", truncate(c.ExhibitList, 300))
	fmt.Fprintf(&b, "FOCUS AREAS: %s\n\n", joinOr(c.FocusAreas, "None"))
	fmt.Fprintf(&b, "Current focus topic: %s\n", orNA(req.CurrentTopic))
	fmt.Fprintf(&b, "Question number: %d\n", req.QuestionNumber)
	fmt.Fprintf(&b, "%s\n", lastAnswer)
	if req.HesitationDetected {
		b.WriteString("The witness hesitated significantly before answering.\n")
	}
	if req.RecentInconsistency {
		b.WriteString("Inconsistency detected in the last answer. Probe harder.\n")
	}
	fmt.Fprintf(&b, "Prior weak areas: %s\n", joinOr(c.PriorWeakAreas, "None (first session)"))
	fmt.Fprintf(&b, "Aggression instruction: %s\n\n", aggressionInstruction(c.AggressionLevel))
	b.WriteString("Generate the next deposition question:")
	return b.String()
}
