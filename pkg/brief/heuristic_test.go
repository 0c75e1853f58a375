package brief

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/pkg/agent"
)

func TestScoreHeuristically_CleanSession(t *testing.T) {
	result := ScoreHeuristically(HeuristicInput{
		Answers:         []string{"Yes.", "No.", "The contract was signed in February."},
		AggressionLevel: agent.AggressionStandard,
		QuestionCount:   3,
	})

	// No negative signals: baselines plus the short-answer bonus on
	// directness (three answers of five words or fewer).
	assert.Equal(t, 85.0, result.Weakness.Composure)
	assert.Equal(t, 85.0, result.Weakness.TacticalDiscipline)
	assert.Equal(t, 90.0, result.Weakness.Professionalism)
	assert.Equal(t, 91.0, result.Weakness.Directness)
	assert.Equal(t, 85.0, result.Weakness.Consistency)
	assert.Equal(t, 1.0, result.ConsistencyRate)
	require.Len(t, result.Recommendations, 3)
}

func TestScoreHeuristically_HedgingAndRecall(t *testing.T) {
	result := ScoreHeuristically(HeuristicInput{
		Answers: []string{
			"I think it was maybe around March, but I don't recall the exact date at this point honestly.",
			"Perhaps. I'm not sure. I can't recall who else attended that meeting either.",
		},
		QuestionCount: 2,
	})

	// 5 hedges x5 capped at 20, 2 recalls x8 = 16: 85 - 16 - 20 = 49.
	assert.Equal(t, 49.0, result.Weakness.Directness)
}

func TestScoreHeuristically_NervousTagsAndHighStakes(t *testing.T) {
	answers := []string{
		"[pause] I was there. [sigh]",
		"[nervous laugh] It happened fast. [pause]",
		"[long pause] Yes.",
	}

	standard := ScoreHeuristically(HeuristicInput{Answers: answers, QuestionCount: 3})
	highStakes := ScoreHeuristically(HeuristicInput{
		Answers:         answers,
		AggressionLevel: agent.AggressionHighStakes,
		QuestionCount:   3,
	})

	// 5 nervous tags x6 = 30: 85 - 30 = 55, minus 5 under HIGH_STAKES.
	assert.Equal(t, 55.0, standard.Weakness.Composure)
	assert.Equal(t, 50.0, highStakes.Weakness.Composure)
}

func TestScoreHeuristically_VolunteeredAnswers(t *testing.T) {
	longAnswer := strings.Repeat("word ", 85) // > 80 words: long AND volunteered
	midAnswer := strings.Repeat("word ", 40)  // > 30 words: long only
	result := ScoreHeuristically(HeuristicInput{
		Answers:       []string{longAnswer, midAnswer},
		QuestionCount: 2,
	})

	// long=2 x5 = 10, volunteered=1 x6 = 6: 85 - 10 - 6 = 69.
	assert.Equal(t, 69.0, result.Weakness.TacticalDiscipline)
}

func TestScoreHeuristically_ContradictionsAndFlags(t *testing.T) {
	result := ScoreHeuristically(HeuristicInput{
		Answers:                 []string{"Yes."},
		QuestionCount:           10,
		ConfirmedContradictions: 2,
		PendingFlags:            1,
	})

	// 85 - 2x6 - 10 = 63.
	assert.Equal(t, 63.0, result.Weakness.Consistency)
	assert.InDelta(t, 0.8, result.ConsistencyRate, 1e-9)
}

func TestScoreHeuristically_CapsHoldUnderExtremeInput(t *testing.T) {
	result := ScoreHeuristically(HeuristicInput{
		Answers:                 []string{strings.Repeat("[pause] I think obviously maybe [scoff] I can't recall. ", 50)},
		QuestionCount:           1,
		ConfirmedContradictions: 50,
	})

	// Every deduction is capped, so no dimension collapses past its floor.
	assert.GreaterOrEqual(t, result.Weakness.Composure, 1.0)
	assert.GreaterOrEqual(t, result.Weakness.Directness, 1.0)
	assert.GreaterOrEqual(t, result.Weakness.Consistency, 45.0)
	assert.Equal(t, 0.0, result.ConsistencyRate)
}

func TestScoreHeuristically_SessionScoreWeights(t *testing.T) {
	result := ScoreHeuristically(HeuristicInput{
		Answers:       []string{"The shipment left on the third."},
		QuestionCount: 1,
	})

	w := result.Weakness
	expected := w.Consistency*0.3 + w.Composure*0.2 +
		(w.TacticalDiscipline+w.Professionalism+w.Directness)*(0.5/3)
	assert.InDelta(t, expected, result.SessionScore, 0.05)
}

func TestScoreHeuristically_ZeroQuestions(t *testing.T) {
	result := ScoreHeuristically(HeuristicInput{})
	assert.Equal(t, 1.0, result.ConsistencyRate)
	assert.NotEmpty(t, result.Narrative)
	require.Len(t, result.Recommendations, 3)
}

func TestPadRecommendations(t *testing.T) {
	t.Run("truncates over three", func(t *testing.T) {
		recs := PadRecommendations([]string{"a", "b", "c", "d"})
		assert.Equal(t, []string{"a", "b", "c"}, recs)
	})

	t.Run("pads under three from defaults", func(t *testing.T) {
		recs := PadRecommendations([]string{"custom"})
		require.Len(t, recs, 3)
		assert.Equal(t, "custom", recs[0])
	})

	t.Run("does not duplicate defaults already present", func(t *testing.T) {
		recs := PadRecommendations([]string{defaultRecommendations[0]})
		require.Len(t, recs, 3)
		seen := map[string]bool{}
		for _, r := range recs {
			assert.False(t, seen[r], "duplicate recommendation %q", r)
			seen[r] = true
		}
	})
}
