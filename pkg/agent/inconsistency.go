package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
)

// Impeachment risk bands reported on a contradiction flag.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// SentinelThresholds controls when a contradiction fires.
type SentinelThresholds struct {
	// Live is the confidence at which the primary classifier triggers an
	// immediate interruption.
	Live float64

	// Secondary is the floor below which no flag is recorded at all.
	Secondary float64

	// FallbackLive replaces Live when the primary classifier is unavailable
	// and the chat model verifies instead. The slower model is more prone to
	// overcalling contradictions, so its live bar is higher.
	FallbackLive float64
}

// SentinelRequest carries one question/answer exchange to check.
type SentinelRequest struct {
	CaseID         string
	CaseType       string
	QuestionText   string
	AnswerText     string
	QuestionNumber int
}

// SentinelResult is the outcome of an inconsistency pass.
type SentinelResult struct {
	FlagFound               bool    `json:"flagFound"`
	IsLiveFired             bool    `json:"isLiveFired"`
	ContradictionConfidence float64 `json:"contradictionConfidence"`
	PriorQuote              string  `json:"priorQuote,omitempty"`
	PriorDocumentPage       *int    `json:"priorDocumentPage,omitempty"`
	PriorDocumentLine       *int    `json:"priorDocumentLine,omitempty"`
	ImpeachmentRisk         string  `json:"impeachmentRisk"`
	UsedFallback            bool    `json:"-"`
}

// contradictionScore is the JSON both the classifier and the fallback
// verifier are asked to emit.
type contradictionScore struct {
	ContradictionConfidence float64 `json:"contradiction_confidence"`
	BestMatchIndex          int     `json:"best_match_index"`
	Reasoning               string  `json:"reasoning"`
}

// Sentinel detects contradictions between a live answer and prior sworn
// statements. No retrieval hits or an unusable score both resolve to an empty
// result; the sentinel interrupts sessions, it never blocks them.
type Sentinel struct {
	classifier llm.Classifier
	fallback   llm.ChatClient
	retriever  retrieval.Retriever
	thresholds SentinelThresholds
	topK       int
	logger     *slog.Logger
}

// NewSentinel builds the inconsistency agent.
func NewSentinel(classifier llm.Classifier, fallback llm.ChatClient, retriever retrieval.Retriever, thresholds SentinelThresholds, topK int, logger *slog.Logger) *Sentinel {
	if topK <= 0 {
		topK = 5
	}
	return &Sentinel{
		classifier: classifier,
		fallback:   fallback,
		retriever:  retriever,
		thresholds: thresholds,
		topK:       topK,
		logger:     logger,
	}
}

func emptyResult() SentinelResult {
	return SentinelResult{ImpeachmentRisk: RiskLow}
}

// Check runs one inconsistency pass over the latest answer.
func (a *Sentinel) Check(ctx context.Context, req SentinelRequest) (SentinelResult, error) {
	statements, err := a.retriever.SearchStatements(ctx, req.CaseID, req.AnswerText, a.topK)
	if err != nil || len(statements) == 0 {
		return emptyResult(), nil
	}

	score, usedFallback, err := a.score(ctx, req, statements)
	if err != nil {
		return emptyResult(), err
	}

	liveThreshold := a.thresholds.Live
	if usedFallback {
		liveThreshold = a.thresholds.FallbackLive
	}

	confidence := score.ContradictionConfidence
	if confidence < a.thresholds.Secondary {
		return emptyResult(), nil
	}

	result := SentinelResult{
		FlagFound:               true,
		IsLiveFired:             confidence >= liveThreshold,
		ContradictionConfidence: confidence,
		ImpeachmentRisk:         RiskMedium,
		UsedFallback:            usedFallback,
	}
	if result.IsLiveFired {
		result.ImpeachmentRisk = RiskHigh
	}

	if idx := score.BestMatchIndex; idx >= 0 && idx < len(statements) {
		best := statements[idx]
		result.PriorQuote = best.Content
		page, line := best.Page, best.Line
		result.PriorDocumentPage = &page
		result.PriorDocumentLine = &line
	}

	return result, nil
}

// score runs the primary classifier, falling back to a single-shot chat
// verification when the classifier transport is down.
func (a *Sentinel) score(ctx context.Context, req SentinelRequest, statements []retrieval.PriorStatement) (contradictionScore, bool, error) {
	contents := make([]string, len(statements))
	for i, s := range statements {
		contents[i] = s.Content
	}

	raw, err := a.classifier.Classify(ctx, classifierPrompt(req, contents))
	if err == nil {
		parsed := DecodeModelJSON[contradictionScore](raw)
		if parsed.IsOk() {
			return parsed.Value(), false, nil
		}
		a.logger.Warn("classifier output unparseable, skipping flag", "error", parsed.Error())
		return contradictionScore{BestMatchIndex: -1}, false, nil
	}
	if !errors.Is(err, llm.ErrUnavailable) {
		return contradictionScore{}, false, err
	}

	a.logger.Warn("classifier unavailable, verifying with chat model", "error", err)
	raw, err = a.fallback.Chat(ctx, llm.ChatRequest{
		System:    `Score contradiction confidence 0-1. Return only JSON: {"contradiction_confidence": number, "best_match_index": number}`,
		User:      fmt.Sprintf("Answer: %q\nPrior:\n%s", req.AnswerText, quoteList(contents)),
		MaxTokens: 200,
	})
	if err != nil {
		return contradictionScore{}, true, err
	}
	parsed := DecodeModelJSON[contradictionScore](raw)
	if !parsed.IsOk() {
		a.logger.Warn("fallback verifier output unparseable, skipping flag", "error", parsed.Error())
		return contradictionScore{BestMatchIndex: -1}, true, nil
	}
	return parsed.Value(), true, nil
}

func classifierPrompt(req SentinelRequest, contents []string) string {
	var b strings.Builder
	b.WriteString("You are analyzing a witness deposition for contradictions.\n\n")
	fmt.Fprintf(&b, "Case context: %s deposition\n\n", req.CaseType)
	fmt.Fprintf(&b, "Witness answer just given:\n%q\n\n", req.AnswerText)
	b.WriteString("Prior sworn statements on record:\n")
	b.WriteString(quoteList(contents))
	b.WriteString("\n\nRespond ONLY with JSON:\n")
	b.WriteString(`{
  "contradiction_confidence": <float 0.0-1.0>,
  "best_match_index": <integer index of most contradicted statement, or -1>,
  "reasoning": "<one sentence>"
}`)
	return b.String()
}
