package scoring

import (
	"fmt"
	"math"

	"careercompass/internal/model"
)

const (
	traitIDPrefix = "S7BFQ"

	// traitScale converts a summed trait score (12-60) into a percentage.
	// 60 x 1.65 = 99.0, so a full trait reads "99.0%", never 100%. The
	// constant is preserved for comparability with historical reports.
	traitScale = 1.65
)

var likertScores = map[string]int{
	"Strongly Disagree": 1,
	"Disagree":          2,
	"Neutral":           3,
	"Agree":             4,
	"Strongly Agree":    5,
}

type trait struct {
	name  string
	start int
	end   int
}

var traits = []trait{
	{name: "Openness", start: 1, end: 12},
	{name: "Conscientiousness", start: 13, end: 24},
	{name: "Extraversion", start: 25, end: 36},
	{name: "Agreeableness", start: 37, end: 48},
	{name: "Neuroticism", start: 49, end: 60},
}

// BigFiveScore reduces the answer store to the five trait percentages,
// formatted to one decimal with a trailing "%". Unanswered or unrecognized
// responses score the minimum 1, so partial completion depresses trait
// scores rather than blocking them.
func BigFiveScore(answers model.AnswerStore) map[string]string {
	out := make(map[string]string, len(traits))
	for _, t := range traits {
		sum := 0
		for n := t.start; n <= t.end; n++ {
			score, ok := likertScores[answers.Scalar(fmt.Sprintf("%s%d", traitIDPrefix, n))]
			if !ok {
				score = 1
			}
			sum += score
		}
		out[t.name] = formatPercent(float64(sum) * traitScale)
	}
	return out
}

// formatPercent rounds half-up to one decimal place.
func formatPercent(v float64) string {
	rounded := math.Floor(v*10+0.5) / 10
	return fmt.Sprintf("%.1f%%", rounded)
}

// Score runs both reducers over a completed answer store and assembles the
// persisted result.
func Score(answers model.AnswerStore) model.ScoreResult {
	mbti := MBTIScore(answers)
	return model.ScoreResult{
		CategoricalType:  mbti.Type,
		AxisLabels:       mbti.Traits,
		TraitPercentages: BigFiveScore(answers),
	}
}
