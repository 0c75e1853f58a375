// Package brief generates the post-session performance brief: model review
// first, deterministic heuristic fallback, PDF rendering, and best-effort
// coach narration.
package brief

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/verdictlabs/verdict/pkg/agent"
	"github.com/verdictlabs/verdict/pkg/models"
)

var (
	hedgingRe    = regexp.MustCompile(`(?i)I think|maybe|perhaps|possibly|I'm not sure|I believe`)
	recallRe     = regexp.MustCompile(`(?i)(?:don't|do not|cannot|can't)\s+recall`)
	sarcasmRe    = regexp.MustCompile(`(?i)obviously|clearly|as I already said|I told you`)
	nervousTagRe = regexp.MustCompile(`(?i)\[(?:pause|sigh|nervous laugh|nervous|throat_clear|hesitation|long pause)\]`)
	scoffTagRe   = regexp.MustCompile(`(?i)\[(?:scoff|laugh)\]`)
)

// threatSignals are phrases a witness should never use under oath. Each hit
// costs composure.
var threatSignals = []string{
	"threat", "regret", "pay for", "hostile", "shouting",
	"threw", "angry", "confrontation", "karma",
}

// HeuristicInput is everything the fallback scorer reads. It is deliberately
// plain data so the scorer stays unit-testable without a database.
type HeuristicInput struct {
	Answers                 []string
	AggressionLevel         string
	QuestionCount           int
	ConfirmedContradictions int
	PendingFlags            int
	ObjectionCount          int
}

// HeuristicResult mirrors the model reviewer's output shape.
type HeuristicResult struct {
	SessionScore    float64
	ConsistencyRate float64
	Weakness        models.WeaknessMap
	Narrative       string
	Recommendations []string
}

// ScoreHeuristically produces a deterministic brief from transcript signals
// and alert tallies. It runs when the review model is unavailable or answers
// with something unparseable, and must never fail.
func ScoreHeuristically(in HeuristicInput) HeuristicResult {
	corpus := strings.Join(in.Answers, "\n")

	nervous := len(nervousTagRe.FindAllString(corpus, -1))
	scoffs := len(scoffTagRe.FindAllString(corpus, -1))
	hedges := len(hedgingRe.FindAllString(corpus, -1))
	recalls := len(recallRe.FindAllString(corpus, -1))
	sarcasm := len(sarcasmRe.FindAllString(corpus, -1))
	threats := countSignals(corpus, threatSignals)

	var long, volunteered, short int
	for _, a := range in.Answers {
		words := len(strings.Fields(a))
		switch {
		case words > 80:
			volunteered++
			long++
		case words > 30:
			long++
		case words <= 5 && words > 0:
			short++
		}
	}

	composure := 85.0
	composure -= math.Min(float64(nervous)*6, 35)
	composure -= math.Min(float64(threats)*8, 20)
	if strings.EqualFold(in.AggressionLevel, agent.AggressionHighStakes) {
		composure -= 5
	}

	tactical := 85.0
	tactical -= math.Min(float64(long)*5, 25)
	tactical -= math.Min(float64(volunteered)*6, 20)

	professionalism := 90.0
	professionalism -= math.Min(float64(sarcasm)*7, 30)
	professionalism -= math.Min(float64(scoffs)*4, 15)

	directness := 85.0
	directness -= math.Min(float64(recalls)*8, 25)
	directness -= math.Min(float64(hedges)*5, 20)
	directness += math.Min(float64(short)*2, 10)

	consistency := 85.0
	consistency -= math.Min(float64(in.ConfirmedContradictions)*6, 30)
	if in.PendingFlags > 0 {
		consistency -= 10
	}

	weakness := models.WeaknessMap{
		Composure:          clampScore(composure),
		TacticalDiscipline: clampScore(tactical),
		Professionalism:    clampScore(professionalism),
		Directness:         clampScore(directness),
		Consistency:        clampScore(consistency),
	}

	sessionScore := weakness.Consistency*0.3 +
		weakness.Composure*0.2 +
		(weakness.TacticalDiscipline+weakness.Professionalism+weakness.Directness)*(0.5/3)

	questions := in.QuestionCount
	if questions == 0 {
		questions = 1
	}
	consistencyRate := clamp01(1 - float64(in.ConfirmedContradictions)/float64(questions))

	return HeuristicResult{
		SessionScore:    math.Round(sessionScore*10) / 10,
		ConsistencyRate: consistencyRate,
		Weakness:        weakness,
		Narrative:       heuristicNarrative(in, weakness, nervous, hedges, recalls, long),
		Recommendations: heuristicRecommendations(weakness),
	}
}

func countSignals(text string, signals []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, s := range signals {
		if strings.Contains(lower, s) {
			n++
		}
	}
	return n
}

func clampScore(v float64) float64 {
	return math.Max(1, math.Min(100, v))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func heuristicNarrative(in HeuristicInput, w models.WeaknessMap, nervous, hedges, recalls, long int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Across %d questions the witness recorded %d confirmed contradiction(s) and %d unresolved flag(s). ",
		in.QuestionCount, in.ConfirmedContradictions, in.PendingFlags)
	fmt.Fprintf(&b,
		"Transcript analysis found %d stress indicator(s), %d hedging phrase(s), %d recall hedge(s), and %d over-length answer(s). ",
		nervous, hedges, recalls, long)

	worst, score := weakestDimension(w)
	fmt.Fprintf(&b, "The weakest dimension was %s at %.0f. ", worst, score)

	switch worst {
	case "composure":
		b.WriteString("Expect opposing counsel to escalate pressure early; visible stress under routine questioning reads as unreliability to a jury.")
	case "tactical discipline":
		b.WriteString("Volunteered detail opens new attack vectors; every answer past the question asked is a gift to the other side.")
	case "professionalism":
		b.WriteString("Sarcasm and dismissiveness will be replayed to the jury; decorum is part of credibility.")
	case "directness":
		b.WriteString("A pattern of recall hedges will be framed as consciousness of guilt; bounded specific answers read far better.")
	default:
		b.WriteString("Contradictions against prior sworn statements are the primary trial risk; the witness should re-anchor on the core facts before the next session.")
	}
	return b.String()
}

func weakestDimension(w models.WeaknessMap) (string, float64) {
	name, score := "composure", w.Composure
	for _, d := range []struct {
		name  string
		score float64
	}{
		{"tactical discipline", w.TacticalDiscipline},
		{"professionalism", w.Professionalism},
		{"directness", w.Directness},
		{"consistency", w.Consistency},
	} {
		if d.score < score {
			name, score = d.name, d.score
		}
	}
	return name, score
}

// defaultRecommendations pads the coaching list when fewer than three
// dimensions scored poorly.
var defaultRecommendations = []string{
	"Keep answers short and factual; if silence follows your answer, stay silent.",
	"Anchor every answer to the core facts of the case; if a statement is not traceable to them, do not volunteer it.",
	"Maintain your current composure baseline and pacing between question and answer.",
}

// heuristicRecommendations returns exactly three directives, worst
// dimensions first.
func heuristicRecommendations(w models.WeaknessMap) []string {
	var recs []string
	if w.Composure < 65 {
		recs = append(recs, "Practice controlled breathing before answering: inhale for three counts after each question to eliminate reactive stress signals.")
	}
	if w.TacticalDiscipline < 65 {
		recs = append(recs, "Adopt the ten-word rule: no answer should exceed ten words unless the question demands a narrative.")
	}
	if w.Professionalism < 65 {
		recs = append(recs, "Treat every question as coming from a judge, not an adversary; eliminate all editorial commentary and sarcastic inflection.")
	}
	if w.Directness < 65 {
		recs = append(recs, "Replace broad recall hedges with specific bounded statements; never hedge twice on the same topic.")
	}
	if w.Consistency < 65 {
		recs = append(recs, "Write down the three core facts of your testimony; every answer must be traceable back to one of them.")
	}
	return PadRecommendations(recs)
}

// PadRecommendations normalizes any recommendation list to exactly three
// entries: truncate when over, pad from the default pool when under.
func PadRecommendations(recs []string) []string {
	if len(recs) > 3 {
		return recs[:3]
	}
	for _, d := range defaultRecommendations {
		if len(recs) == 3 {
			break
		}
		if !contains(recs, d) {
			recs = append(recs, d)
		}
	}
	return recs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
