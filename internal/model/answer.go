package model

import "strings"

// AnswerKind tags the shape of a stored answer value
type AnswerKind string

const (
	AnswerScalar AnswerKind = "scalar"
	AnswerList   AnswerKind = "list"
	AnswerGroup  AnswerKind = "group"
)

// GroupRecord is one committed entry of a repeatable group, field id -> value.
type GroupRecord map[string]string

// AnswerValue is the tagged variant stored per question: a scalar string, a
// multi-choice selection list, or the committed records of a repeatable group.
type AnswerValue struct {
	Kind    AnswerKind    `json:"kind" bson:"kind"`
	Scalar  string        `json:"scalar,omitempty" bson:"scalar,omitempty"`
	List    []string      `json:"list,omitempty" bson:"list,omitempty"`
	Records []GroupRecord `json:"records,omitempty" bson:"records,omitempty"`
}

// Display renders the value the way the transcript shows it: multi-choice
// lists joined by comma, scalars as-is.
func (v AnswerValue) Display() string {
	switch v.Kind {
	case AnswerList:
		return strings.Join(v.List, ", ")
	default:
		return v.Scalar
	}
}

// AnswerStore maps question id to its answer. Only the conversation
// controller mutates it; answers of deactivated sections are retained so
// re-activation restores prior input.
type AnswerStore map[string]AnswerValue

// Scalar returns the scalar value for id, or "" when absent or non-scalar.
func (s AnswerStore) Scalar(id string) string {
	v, ok := s[id]
	if !ok || v.Kind != AnswerScalar {
		return ""
	}
	return v.Scalar
}

// SetScalar stores a scalar answer.
func (s AnswerStore) SetScalar(id, value string) {
	s[id] = AnswerValue{Kind: AnswerScalar, Scalar: value}
}

// SetList stores a multi-choice answer.
func (s AnswerStore) SetList(id string, values []string) {
	s[id] = AnswerValue{Kind: AnswerList, List: values}
}

// AppendRecord commits one repeatable-group record, creating the list on
// first commit.
func (s AnswerStore) AppendRecord(id string, rec GroupRecord) {
	v := s[id]
	v.Kind = AnswerGroup
	v.Records = append(v.Records, rec)
	s[id] = v
}

// Clone deep-copies the store. Used for snapshot comparison and safe handoff.
func (s AnswerStore) Clone() AnswerStore {
	out := make(AnswerStore, len(s))
	for id, v := range s {
		cp := AnswerValue{Kind: v.Kind, Scalar: v.Scalar}
		if v.List != nil {
			cp.List = append([]string(nil), v.List...)
		}
		for _, rec := range v.Records {
			recCp := make(GroupRecord, len(rec))
			for k, val := range rec {
				recCp[k] = val
			}
			cp.Records = append(cp.Records, recCp)
		}
		out[id] = cp
	}
	return out
}

// AnswerInput is the single submit event the engine reacts to. Selections is
// set for multi-choice questions, Text for everything else.
type AnswerInput struct {
	Text       string   `json:"text,omitempty"`
	Selections []string `json:"selections,omitempty"`
}
