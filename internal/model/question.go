package model

// InputKind defines how a question collects its answer
type InputKind string

const (
	InputText            InputKind = "text"
	InputTextarea        InputKind = "textarea"
	InputDate            InputKind = "date"
	InputSingleChoice    InputKind = "singleChoice"
	InputMultiChoice     InputKind = "multiChoice"
	InputDropdown        InputKind = "dropdown"
	InputRepeatableGroup InputKind = "repeatableGroup"
)

// IsChoice reports whether the kind selects from a fixed option list.
func (k InputKind) IsChoice() bool {
	return k == InputSingleChoice || k == InputMultiChoice || k == InputDropdown
}

// Question is a single prompt in the questionnaire. For repeatableGroup
// questions, Fields holds the sub-prompts of one entry (one level deep only).
type Question struct {
	ID      string     `json:"id" bson:"id"`
	Prompt  string     `json:"prompt" bson:"prompt"`
	Kind    InputKind  `json:"kind" bson:"kind"`
	Options []string   `json:"options,omitempty" bson:"options,omitempty"`
	Fields  []Question `json:"fields,omitempty" bson:"fields,omitempty"`
}

// Section groups questions and may be gated by exact-match answers to
// earlier questions. A section with no Visibility entries is always active.
type Section struct {
	ID         string            `json:"id" bson:"id"`
	Title      string            `json:"title" bson:"title"`
	Questions  []Question        `json:"questions" bson:"questions"`
	Visibility map[string]string `json:"visibility,omitempty" bson:"visibility,omitempty"`
}

// Schema is the ordered questionnaire definition. Built once at startup and
// treated as read-only afterwards.
type Schema []Section

// QuestionByID looks up a top-level question anywhere in the schema.
func (s Schema) QuestionByID(id string) (Question, bool) {
	for _, sec := range s {
		for _, q := range sec.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// SectionOf returns the section containing the given top-level question id.
func (s Schema) SectionOf(questionID string) (Section, bool) {
	for _, sec := range s {
		for _, q := range sec.Questions {
			if q.ID == questionID {
				return sec, true
			}
		}
	}
	return Section{}, false
}
