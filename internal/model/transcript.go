package model

// EntryKind is the transcript message role
type EntryKind string

const (
	EntryQuestion EntryKind = "question"
	EntryAnswer   EntryKind = "answer"
	EntrySystem   EntryKind = "system"
)

// GroupContext tags transcript entries produced inside a repeatable-group
// entry with the owning section and the 1-based entry ordinal.
type GroupContext struct {
	SectionID    string `json:"sectionId" bson:"sectionId"`
	EntryOrdinal int    `json:"entryOrdinal" bson:"entryOrdinal"`
}

// TranscriptEntry is one chat bubble. The transcript is append-only and
// owned by the conversation controller; readers only project it.
type TranscriptEntry struct {
	Kind  EntryKind     `json:"kind" bson:"kind"`
	Text  string        `json:"text" bson:"text"`
	Group *GroupContext `json:"group,omitempty" bson:"group,omitempty"`
}
