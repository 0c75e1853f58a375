package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/models"
)

const reviewerSystem = `You are a senior litigation coach reviewing a completed mock deposition.
Assess the witness's performance from the transcript and alert record.
Respond ONLY with valid JSON. No preamble, no markdown.

Score each dimension 0-100 (higher is better). sessionScore is the overall
0-100 performance. consistencyRate is 0.0-1.0, where 1.0 means no confirmed
contradictions. topRecommendations must contain exactly three short,
actionable coaching directives. narrativeText is a 2-4 paragraph plain-prose
assessment addressed to the supervising attorney.

JSON format:
{
  "sessionScore": number,
  "consistencyRate": number,
  "topRecommendations": [string, string, string],
  "narrativeText": string,
  "weaknessMapScores": {
    "composure": number,
    "tactical_discipline": number,
    "professionalism": number,
    "directness": number,
    "consistency": number
  },
  "confirmedFlags": number,
  "objectionCount": number,
  "composureAlerts": number
}`

// ReviewRequest carries the completed session's record.
type ReviewRequest struct {
	Case       CaseContext
	Transcript string

	QuestionCount           int
	ConfirmedContradictions int
	PendingFlags            int
	ObjectionCount          int
}

// ReviewResult is the model's structured assessment.
type ReviewResult struct {
	SessionScore       float64            `json:"sessionScore"`
	ConsistencyRate    float64            `json:"consistencyRate"`
	TopRecommendations []string           `json:"topRecommendations"`
	NarrativeText      string             `json:"narrativeText"`
	WeaknessMapScores  models.WeaknessMap `json:"weaknessMapScores"`
	ConfirmedFlags     int                `json:"confirmedFlags"`
	ObjectionCount     int                `json:"objectionCount"`
	ComposureAlerts    int                `json:"composureAlerts"`
}

// Reviewer produces the post-session assessment. Transport failures and
// unparseable output are both returned as errors; the brief generator decides
// whether to fall back to the heuristic scorer.
type Reviewer struct {
	chat llm.ChatClient
}

// NewReviewer builds the review agent.
func NewReviewer(chat llm.ChatClient) *Reviewer {
	return &Reviewer{chat: chat}
}

// Review assesses one completed session.
func (a *Reviewer) Review(ctx context.Context, req ReviewRequest) (ReviewResult, error) {
	raw, err := a.chat.Chat(ctx, llm.ChatRequest{
		System:    reviewerSystem,
		User:      buildReviewPrompt(req),
		MaxTokens: 2048,
	})
	if err != nil {
		return ReviewResult{}, err
	}

	parsed := DecodeModelJSON[ReviewResult](raw)
	if !parsed.IsOk() {
		return ReviewResult{}, parsed.Error()
	}
	return parsed.Value(), nil
}

func buildReviewPrompt(req ReviewRequest) string {
	c := req.Case
	var b strings.Builder
	fmt.Fprintf(&b, "CASE: %s (%s)\n", c.CaseName, c.CaseType)
	fmt.Fprintf(&b, "WITNESS: %s — %s\n", c.WitnessName, orNA(c.WitnessRole))
	fmt.Fprintf(&b, "AGGRESSION LEVEL: %s\n", c.AggressionLevel)
	fmt.Fprintf(&b, "QUESTIONS ASKED: %d\n", req.QuestionCount)
	fmt.Fprintf(&b, "CONFIRMED CONTRADICTIONS: %d\n", req.ConfirmedContradictions)
	fmt.Fprintf(&b, "UNRESOLVED FLAGS: %d\n", req.PendingFlags)
	fmt.Fprintf(&b, "OBJECTIONABLE QUESTIONS: %d\n\n", req.ObjectionCount)
	b.WriteString("TRANSCRIPT:\n")
	b.WriteString(req.Transcript)
	b.WriteString("\n\nAssess the witness's performance:")
	return b.String()
}
