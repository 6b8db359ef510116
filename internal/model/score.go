package model

import "time"

// ScoreResult is the finalized personality scoring output: the four-letter
// categorical type with resolved axis labels, and the five Big-Five trait
// percentages formatted as strings (e.g. "99.0%").
type ScoreResult struct {
	CategoricalType  string            `json:"categoricalType" bson:"categoricalType"`
	AxisLabels       map[string]string `json:"axisLabels" bson:"axisLabels"`
	TraitPercentages map[string]string `json:"traitPercentages" bson:"traitPercentages"`
}

// EnrichedAnswer pairs a stored answer with its prompt text for reporting.
type EnrichedAnswer struct {
	Question string      `json:"question" bson:"question"`
	Answer   AnswerValue `json:"answer" bson:"answer"`
}

// Assessment is the completed-session document persisted to Mongo, keyed by
// user id with last-write-wins upsert semantics.
type Assessment struct {
	UserID      string                    `json:"userId" bson:"userId"`
	SessionID   string                    `json:"sessionId" bson:"sessionId"`
	Answers     AnswerStore               `json:"answers" bson:"answers"`
	Enriched    map[string]EnrichedAnswer `json:"enriched,omitempty" bson:"enriched,omitempty"`
	Score       ScoreResult               `json:"score" bson:"score"`
	CompletedAt time.Time                 `json:"completedAt" bson:"completedAt"`
}
