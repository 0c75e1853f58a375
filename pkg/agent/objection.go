package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
)

const objectionSystem = `You are an expert attorney specializing in evidence law and the Federal Rules of Evidence.
Analyze the given deposition question for objectionable content.
Respond ONLY with valid JSON. No preamble, no markdown.

COMPOUND question = any question containing "and", "or", "also", "as well as", "both" that asks about TWO or more distinct facts or actions simultaneously. Flag these as COMPOUND with high confidence.
LEADING question = a question that suggests the answer or assumes a fact not in evidence.
SPECULATION = asks witness to guess or speculate about unknown facts.
HEARSAY = asks the witness to repeat out-of-court statements for their truth.
ASSUMES_FACTS = assumes something not yet established in the record.

JSON format:
{
  "isObjectionable": boolean,
  "category": "LEADING" | "HEARSAY" | "COMPOUND" | "ASSUMES_FACTS" | "SPECULATION" | null,
  "freRule": string | null,
  "explanation": string | null,
  "confidence": number
}`

// ObjectionResult is the co-pilot's verdict on a single question.
type ObjectionResult struct {
	IsObjectionable bool    `json:"isObjectionable"`
	Category        string  `json:"category"`
	FreRule         string  `json:"freRule"`
	Explanation     string  `json:"explanation"`
	Confidence      float64 `json:"confidence"`
}

// ObjectionCopilot classifies interrogator questions against evidentiary
// rules. Unparseable model output and transport failures both degrade to a
// zero-confidence non-objectionable result; the co-pilot never fails a
// question.
type ObjectionCopilot struct {
	chat      llm.ChatClient
	retriever retrieval.Retriever
	rulesTopK int
	logger    *slog.Logger
}

// NewObjectionCopilot builds the objection agent.
func NewObjectionCopilot(chat llm.ChatClient, retriever retrieval.Retriever, rulesTopK int, logger *slog.Logger) *ObjectionCopilot {
	if rulesTopK <= 0 {
		rulesTopK = 3
	}
	return &ObjectionCopilot{chat: chat, retriever: retriever, rulesTopK: rulesTopK, logger: logger}
}

// Analyze classifies one question. It always resolves to a result; failures
// along the way are logged and collapse to the non-objectionable default.
func (a *ObjectionCopilot) Analyze(ctx context.Context, questionText string) (ObjectionResult, error) {
	prompt := fmt.Sprintf("Analyze this deposition question for objections:\n\n%q", questionText)

	if a.retriever != nil {
		rules, _ := a.retriever.SearchRules(ctx, questionText, a.rulesTopK)
		if len(rules) > 0 {
			var b strings.Builder
			for _, r := range rules {
				b.WriteString(r.Content)
				b.WriteByte('\n')
			}
			prompt += "\n\nRelevant evidentiary rules:\n" + strings.TrimRight(b.String(), "\n")
		}
	}

	raw, err := a.chat.Chat(ctx, llm.ChatRequest{
		System:    objectionSystem,
		User:      prompt,
		MaxTokens: 256,
	})
	if err != nil {
		a.logger.Warn("objection analysis transport failure, defaulting to non-objectionable", "error", err)
		return ObjectionResult{}, nil
	}

	parsed := DecodeModelJSON[ObjectionResult](raw)
	if !parsed.IsOk() {
		a.logger.Warn("objection output unparseable, defaulting to non-objectionable", "error", parsed.Error())
		return ObjectionResult{}, nil
	}
	return parsed.Value(), nil
}
