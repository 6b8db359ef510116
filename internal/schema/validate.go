package schema

import (
	"fmt"

	"careercompass/internal/model"
)

// Validate checks the schema invariants at load time. Any error here is a
// programmer error and should abort startup.
func Validate(s model.Schema) error {
	seenSections := make(map[string]bool)
	seenQuestions := make(map[string]bool)

	for _, sec := range s {
		if sec.ID == "" {
			return &model.SchemaError{SectionID: sec.ID, Reason: "empty section id"}
		}
		if seenSections[sec.ID] {
			return &model.SchemaError{SectionID: sec.ID, Reason: "duplicate section id"}
		}
		seenSections[sec.ID] = true

		if len(sec.Questions) == 0 {
			return &model.SchemaError{SectionID: sec.ID, Reason: "section has no questions"}
		}

		for _, q := range sec.Questions {
			if err := validateQuestion(sec.ID, q, seenQuestions, true); err != nil {
				return err
			}
		}
	}

	// Visibility predicates must reference questions that exist somewhere in
	// the schema; a dangling reference would gate a section forever.
	for _, sec := range s {
		for qid := range sec.Visibility {
			if !seenQuestions[qid] {
				return &model.SchemaError{
					SectionID: sec.ID,
					Reason:    fmt.Sprintf("visibility references unknown question %q", qid),
				}
			}
		}
	}

	return nil
}

func validateQuestion(sectionID string, q model.Question, seen map[string]bool, topLevel bool) error {
	if q.ID == "" {
		return &model.SchemaError{SectionID: sectionID, Reason: "empty question id"}
	}
	if seen[q.ID] {
		return &model.SchemaError{SectionID: sectionID, Reason: fmt.Sprintf("duplicate question id %q", q.ID)}
	}
	seen[q.ID] = true

	switch {
	case q.Kind == model.InputRepeatableGroup:
		if !topLevel {
			return &model.SchemaError{SectionID: sectionID, Reason: fmt.Sprintf("question %q: nested repeatable group", q.ID)}
		}
		if len(q.Fields) == 0 {
			return &model.SchemaError{SectionID: sectionID, Reason: fmt.Sprintf("question %q: repeatable group with no fields", q.ID)}
		}
		for _, f := range q.Fields {
			if err := validateQuestion(sectionID, f, seen, false); err != nil {
				return err
			}
		}
	case q.Kind.IsChoice():
		if len(q.Options) == 0 {
			return &model.SchemaError{SectionID: sectionID, Reason: fmt.Sprintf("question %q: choice question with no options", q.ID)}
		}
	default:
		if len(q.Options) > 0 {
			return &model.SchemaError{SectionID: sectionID, Reason: fmt.Sprintf("question %q: options on non-choice question", q.ID)}
		}
		if len(q.Fields) > 0 {
			return &model.SchemaError{SectionID: sectionID, Reason: fmt.Sprintf("question %q: fields on non-group question", q.ID)}
		}
	}

	return nil
}
