package engine

import (
	"errors"
	"fmt"
	"strings"

	"careercompass/internal/model"
)

var (
	// ErrComplete is returned for input events after the conversation ended.
	ErrComplete = errors.New("conversation already complete")
	// ErrAwaitingRepeat is returned for Submit while the add-another-entry
	// confirmation is pending.
	ErrAwaitingRepeat = errors.New("awaiting repeat confirmation")
	// ErrNotAwaitingRepeat is returned for ConfirmRepeat outside the
	// confirmation state.
	ErrNotAwaitingRepeat = errors.New("no repeat confirmation pending")
)

const answerRequiredMsg = "Please answer the question."

// Controller walks the active question list as a chat conversation. All
// transitions happen in direct response to Submit or ConfirmRepeat; the
// active list is recomputed from the answer store before every transition so
// branching answers take effect immediately.
type Controller struct {
	schema model.Schema
	st     model.ConversationState
}

// New starts a conversation at the first active question with an empty
// answer store and transcript.
func New(schema model.Schema) *Controller {
	return &Controller{
		schema: schema,
		st: model.ConversationState{
			Phase:   model.PhaseAtQuestion,
			Answers: make(model.AnswerStore),
		},
	}
}

// Restore rebuilds a controller from a snapshot taken with Snapshot.
func Restore(schema model.Schema, st model.ConversationState) *Controller {
	if st.Answers == nil {
		st.Answers = make(model.AnswerStore)
	}
	return &Controller{schema: schema, st: st}
}

// Snapshot returns a deep copy of the conversation state for persistence.
func (c *Controller) Snapshot() model.ConversationState {
	out := c.st
	out.Answers = c.st.Answers.Clone()
	out.Transcript = append([]model.TranscriptEntry(nil), c.st.Transcript...)
	if c.st.Pending != nil {
		pending := make(model.GroupRecord, len(c.st.Pending))
		for k, v := range c.st.Pending {
			pending[k] = v
		}
		out.Pending = pending
	}
	return out
}

// Phase returns the current conversation phase.
func (c *Controller) Phase() model.Phase {
	return c.st.Phase
}

// Answers exposes the answer store. Callers must treat it as read-only;
// hand-offs to scoring or persistence should Clone it.
func (c *Controller) Answers() model.AnswerStore {
	return c.st.Answers
}

// Transcript returns the append-only conversation history.
func (c *Controller) Transcript() []model.TranscriptEntry {
	return c.st.Transcript
}

// Current returns the prompt the UI should show next, nil once complete.
func (c *Controller) Current() *model.Prompt {
	switch c.st.Phase {
	case model.PhaseComplete:
		return nil
	case model.PhaseAwaitingRepeat:
		sec, ok := c.sectionByID(c.st.GroupSectionID)
		if !ok {
			return nil
		}
		return &model.Prompt{
			Text:    repeatPrompt(sec),
			Kind:    model.InputSingleChoice,
			Options: []string{"Yes", "No"},
			Repeat:  true,
		}
	case model.PhaseInGroup:
		group, _, ok := c.currentGroup()
		if !ok || c.st.FieldIndex >= len(group.Fields) {
			return nil
		}
		f := group.Fields[c.st.FieldIndex]
		return &model.Prompt{QuestionID: f.ID, Text: f.Prompt, Kind: f.Kind, Options: f.Options}
	default:
		active := ActiveQuestions(c.schema, c.st.Answers)
		if c.st.QuestionIndex >= len(active) {
			return nil
		}
		q := active[c.st.QuestionIndex]
		return &model.Prompt{QuestionID: q.ID, Text: q.Prompt, Kind: q.Kind, Options: q.Options}
	}
}

// Submit handles the answer event for the current prompt. An empty answer
// returns a *model.ValidationError and leaves every piece of state
// untouched; the caller re-prompts.
func (c *Controller) Submit(in model.AnswerInput) error {
	switch c.st.Phase {
	case model.PhaseComplete:
		return ErrComplete
	case model.PhaseAwaitingRepeat:
		return ErrAwaitingRepeat
	case model.PhaseInGroup:
		return c.submitGroupField(in)
	default:
		return c.submitQuestion(in)
	}
}

func (c *Controller) submitQuestion(in model.AnswerInput) error {
	active := ActiveQuestions(c.schema, c.st.Answers)
	if c.st.QuestionIndex >= len(active) {
		c.st.Phase = model.PhaseComplete
		return ErrComplete
	}
	q := active[c.st.QuestionIndex]

	// A repeatable group has no direct answer: the submit event opens the
	// first entry's field-by-field sub-flow instead.
	if q.Kind == model.InputRepeatableGroup {
		sec, _ := c.schema.SectionOf(q.ID)
		c.append(model.TranscriptEntry{Kind: model.EntryQuestion, Text: q.Prompt})
		c.append(model.TranscriptEntry{
			Kind: model.EntrySystem,
			Text: fmt.Sprintf("Let's fill in details for %s Entry #1", sec.Title),
		})
		c.st.Phase = model.PhaseInGroup
		c.st.GroupSectionID = sec.ID
		c.st.EntryOrdinal = 1
		c.st.FieldIndex = 0
		c.st.Pending = make(model.GroupRecord)
		return nil
	}

	var display string
	if q.Kind == model.InputMultiChoice {
		if len(in.Selections) == 0 {
			return model.NewValidationError(answerRequiredMsg)
		}
		c.st.Answers.SetList(q.ID, in.Selections)
		display = strings.Join(in.Selections, ", ")
	} else {
		if in.Text == "" {
			return model.NewValidationError(answerRequiredMsg)
		}
		c.st.Answers.SetScalar(q.ID, in.Text)
		display = in.Text
	}

	c.append(model.TranscriptEntry{Kind: model.EntryQuestion, Text: q.Prompt})
	c.append(model.TranscriptEntry{Kind: model.EntryAnswer, Text: display})
	c.advancePast(q.ID)
	return nil
}

func (c *Controller) submitGroupField(in model.AnswerInput) error {
	group, sec, ok := c.currentGroup()
	if !ok {
		return fmt.Errorf("group section %q no longer in schema", c.st.GroupSectionID)
	}
	field := group.Fields[c.st.FieldIndex]
	if in.Text == "" {
		return model.NewValidationError(answerRequiredMsg)
	}

	if c.st.Pending == nil {
		c.st.Pending = make(model.GroupRecord)
	}
	c.st.Pending[field.ID] = in.Text

	gc := &model.GroupContext{SectionID: sec.ID, EntryOrdinal: c.st.EntryOrdinal}
	c.append(model.TranscriptEntry{Kind: model.EntryQuestion, Text: field.Prompt, Group: gc})
	c.append(model.TranscriptEntry{Kind: model.EntryAnswer, Text: in.Text, Group: gc})

	if c.st.FieldIndex < len(group.Fields)-1 {
		c.st.FieldIndex++
		return nil
	}

	// Last field: commit the whole record atomically, then ask whether to
	// add another entry.
	c.st.Answers.AppendRecord(group.ID, c.st.Pending)
	c.st.Pending = nil
	c.st.FieldIndex = 0
	c.st.Phase = model.PhaseAwaitingRepeat
	return nil
}

// ConfirmRepeat resolves the add-another-entry prompt after a committed
// group record.
func (c *Controller) ConfirmRepeat(again bool) error {
	if c.st.Phase != model.PhaseAwaitingRepeat {
		if c.st.Phase == model.PhaseComplete {
			return ErrComplete
		}
		return ErrNotAwaitingRepeat
	}
	sec, ok := c.sectionByID(c.st.GroupSectionID)
	if !ok {
		return fmt.Errorf("group section %q no longer in schema", c.st.GroupSectionID)
	}

	if again {
		c.append(model.TranscriptEntry{Kind: model.EntryQuestion, Text: repeatPrompt(sec)})
		c.append(model.TranscriptEntry{Kind: model.EntryAnswer, Text: "Yes"})
		c.append(model.TranscriptEntry{
			Kind: model.EntrySystem,
			Text: fmt.Sprintf("Let's fill in details for %s", sec.Title),
		})
		c.st.EntryOrdinal++
		c.st.FieldIndex = 0
		c.st.Pending = make(model.GroupRecord)
		c.st.Phase = model.PhaseInGroup
		return nil
	}

	c.append(model.TranscriptEntry{Kind: model.EntryQuestion, Text: repeatPrompt(sec)})
	c.append(model.TranscriptEntry{Kind: model.EntryAnswer, Text: "No"})

	group, _, _ := c.currentGroup()
	c.st.GroupSectionID = ""
	c.st.EntryOrdinal = 0
	c.st.Phase = model.PhaseAtQuestion
	c.advancePast(group.ID)
	return nil
}

// advancePast moves the question pointer one past the given question in the
// freshly recomputed active list, or completes the conversation. Committing
// an answer can activate or deactivate whole sections, so the stale index is
// never trusted: the question is re-located by id first.
func (c *Controller) advancePast(questionID string) {
	active := ActiveQuestions(c.schema, c.st.Answers)
	i := questionIndex(active, questionID)
	if i < 0 {
		// The answered question's own section dropped out of the active
		// list; the pointer now addresses whatever took its place.
		if c.st.QuestionIndex >= len(active) {
			c.st.Phase = model.PhaseComplete
		}
		return
	}
	if i+1 < len(active) {
		c.st.QuestionIndex = i + 1
		return
	}
	c.st.Phase = model.PhaseComplete
}

func (c *Controller) currentGroup() (model.Question, model.Section, bool) {
	sec, ok := c.sectionByID(c.st.GroupSectionID)
	if !ok {
		return model.Question{}, model.Section{}, false
	}
	for _, q := range sec.Questions {
		if q.Kind == model.InputRepeatableGroup {
			return q, sec, true
		}
	}
	return model.Question{}, sec, false
}

func (c *Controller) sectionByID(id string) (model.Section, bool) {
	for _, sec := range c.schema {
		if sec.ID == id {
			return sec, true
		}
	}
	return model.Section{}, false
}

func (c *Controller) append(e model.TranscriptEntry) {
	c.st.Transcript = append(c.st.Transcript, e)
}

func repeatPrompt(sec model.Section) string {
	return fmt.Sprintf("Would you like to add another %s entry?", strings.ToLower(sec.Title))
}
