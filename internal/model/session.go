package model

import "time"

// Phase is the conversation controller state
type Phase string

const (
	PhaseAtQuestion     Phase = "at_question"
	PhaseInGroup        Phase = "in_group"
	PhaseAwaitingRepeat Phase = "awaiting_repeat"
	PhaseComplete       Phase = "complete"
)

// ConversationState is the serializable controller snapshot kept in Redis so
// a session survives navigation away and process restarts.
type ConversationState struct {
	Phase          Phase             `json:"phase"`
	QuestionIndex  int               `json:"questionIndex"`
	GroupSectionID string            `json:"groupSectionId,omitempty"`
	EntryOrdinal   int               `json:"entryOrdinal,omitempty"`
	FieldIndex     int               `json:"fieldIndex,omitempty"`
	Pending        GroupRecord       `json:"pending,omitempty"`
	Answers        AnswerStore       `json:"answers"`
	Transcript     []TranscriptEntry `json:"transcript"`
}

// Session is the per-user assessment session envelope stored alongside the
// conversation state.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StartedAt time.Time `json:"startedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Prompt is what the UI should ask next, derived from controller state.
type Prompt struct {
	QuestionID string    `json:"questionId,omitempty"`
	Text       string    `json:"text"`
	Kind       InputKind `json:"kind"`
	Options    []string  `json:"options,omitempty"`
	// Repeat is true when the prompt is the add-another-entry confirmation,
	// answered via the repeat control rather than a regular submit.
	Repeat bool `json:"repeat,omitempty"`
}
