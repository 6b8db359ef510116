// Package scoring holds the two pure reducers over a completed answer
// store: the four-axis categorical type and the five-trait percentages.
package scoring

import (
	"fmt"

	"careercompass/internal/model"
)

const typeIDPrefix = "S6PTQ"

// axis is one bipolar dichotomy scored from a contiguous block of
// forced-choice questions. "A" answers count toward codeA, "B" toward codeB.
type axis struct {
	name   string
	start  int
	end    int
	codeA  string
	codeB  string
	labelA string
	labelB string
}

var axes = []axis{
	{name: "Energy", start: 1, end: 20, codeA: "E", codeB: "I", labelA: "Extraversion (E)", labelB: "Introversion (I)"},
	{name: "Information", start: 21, end: 40, codeA: "S", codeB: "N", labelA: "Sensing (S)", labelB: "Intuition (N)"},
	{name: "Decisions", start: 41, end: 60, codeA: "T", codeB: "F", labelA: "Thinking (T)", labelB: "Feeling (F)"},
	{name: "Structure", start: 61, end: 80, codeA: "J", codeB: "P", labelA: "Judging (J)", labelB: "Perceiving (P)"},
}

// MBTIResult is the categorical type with per-axis resolved labels.
type MBTIResult struct {
	Type   string            `json:"type"`
	Traits map[string]string `json:"traits"`
}

// MBTIScore reduces the answer store to the four-letter type. Each axis
// resolves to the label with the strictly higher count; an exact tie keeps
// the first-listed code letter and reports both labels, matching historical
// reports.
func MBTIScore(answers model.AnswerStore) MBTIResult {
	result := MBTIResult{Traits: make(map[string]string, len(axes))}

	for _, ax := range axes {
		countA, countB := 0, 0
		for n := ax.start; n <= ax.end; n++ {
			switch answers.Scalar(fmt.Sprintf("%s%d", typeIDPrefix, n)) {
			case "A":
				countA++
			case "B":
				countB++
			}
		}

		switch {
		case countA > countB:
			result.Type += ax.codeA
			result.Traits[ax.name] = ax.labelA
		case countB > countA:
			result.Type += ax.codeB
			result.Traits[ax.name] = ax.labelB
		default:
			result.Type += ax.codeA
			result.Traits[ax.name] = ax.labelA + " / " + ax.labelB
		}
	}

	return result
}
