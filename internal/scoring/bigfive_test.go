package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func answerTraitRange(answers model.AnswerStore, from, to int, response string) {
	for n := from; n <= to; n++ {
		answers.SetScalar(fmt.Sprintf("S7BFQ%d", n), response)
	}
}

func TestBigFiveScoreCapsAtNinetyNine(t *testing.T) {
	answers := make(model.AnswerStore)
	answerTraitRange(answers, 1, 12, "Strongly Agree")

	scores := BigFiveScore(answers)
	assert.Equal(t, "99.0%", scores["Openness"])
}

func TestBigFiveScoreUnansweredDefaultsToMinimum(t *testing.T) {
	scores := BigFiveScore(make(model.AnswerStore))

	require.Len(t, scores, 5)
	for trait, pct := range scores {
		assert.Equal(t, "19.8%", pct, trait)
	}
}

func TestBigFiveScoreMixedResponses(t *testing.T) {
	answers := make(model.AnswerStore)
	// Conscientiousness: 6 x Agree + 6 x Disagree = 36, 36 x 1.65 = 59.4.
	answerTraitRange(answers, 13, 18, "Agree")
	answerTraitRange(answers, 19, 24, "Disagree")

	scores := BigFiveScore(answers)
	assert.Equal(t, "59.4%", scores["Conscientiousness"])
	assert.Equal(t, "19.8%", scores["Openness"])
}

func TestBigFiveScoreRoundsHalfUp(t *testing.T) {
	answers := make(model.AnswerStore)
	// One Disagree on an otherwise unanswered trait: 13 x 1.65 = 21.45,
	// which rounds to 21.5 rather than down.
	answers.SetScalar("S7BFQ25", "Disagree")

	scores := BigFiveScore(answers)
	assert.Equal(t, "21.5%", scores["Extraversion"])
}

func TestBigFiveScoreUnrecognizedResponseScoresMinimum(t *testing.T) {
	answers := make(model.AnswerStore)
	answerTraitRange(answers, 37, 48, "Strongly Agree")
	answers.SetScalar("S7BFQ37", "Maybe")

	// 11 x 5 + 1 = 56, 56 x 1.65 = 92.4.
	scores := BigFiveScore(answers)
	assert.Equal(t, "92.4%", scores["Agreeableness"])
}

func TestScoreAssemblesBothReducers(t *testing.T) {
	answers := make(model.AnswerStore)
	answerTypeRange(answers, 1, 80, "A")
	answerTraitRange(answers, 1, 60, "Neutral")

	result := Score(answers)
	assert.Equal(t, "ESTJ", result.CategoricalType)
	assert.Equal(t, "Extraversion (E)", result.AxisLabels["Energy"])
	// 12 x 3 = 36, 36 x 1.65 = 59.4 for every trait.
	for trait, pct := range result.TraitPercentages {
		assert.Equal(t, "59.4%", pct, trait)
	}
}
