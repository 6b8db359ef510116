// Package engine implements the conversational questionnaire: visibility
// resolution over the section schema, the conversation state machine, and
// the transcript projection the UI renders.
package engine

import "careercompass/internal/model"

// ActiveSections returns the sections whose visibility predicates all match
// the current answers exactly. Sections without predicates are always
// active. Matching is exact string equality; predicates on the same
// question id with conflicting values can never all hold, so such a section
// is never active.
func ActiveSections(schema model.Schema, answers model.AnswerStore) []model.Section {
	var active []model.Section
	for _, sec := range schema {
		if sectionActive(sec, answers) {
			active = append(active, sec)
		}
	}
	return active
}

// ActiveQuestions flattens the active sections' questions in schema order.
func ActiveQuestions(schema model.Schema, answers model.AnswerStore) []model.Question {
	var qs []model.Question
	for _, sec := range ActiveSections(schema, answers) {
		qs = append(qs, sec.Questions...)
	}
	return qs
}

func sectionActive(sec model.Section, answers model.AnswerStore) bool {
	for qid, required := range sec.Visibility {
		if answers.Scalar(qid) != required {
			return false
		}
	}
	return true
}

// questionIndex locates a question id in an active-question list, -1 if
// the id is not currently active.
func questionIndex(questions []model.Question, id string) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
