package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func testSchema() model.Schema {
	return model.Schema{
		{
			ID:    "BASICS",
			Title: "Basics",
			Questions: []model.Question{
				{ID: "Q1", Prompt: "What is your name?", Kind: model.InputText},
				{ID: "QWORK", Prompt: "Are you currently working?", Kind: model.InputSingleChoice, Options: []string{"Yes", "No"}},
			},
		},
		{
			ID:         "WORK",
			Title:      "Work History",
			Visibility: map[string]string{"QWORK": "Yes"},
			Questions: []model.Question{
				{
					ID:     "G1",
					Prompt: "Tell us about your jobs.",
					Kind:   model.InputRepeatableGroup,
					Fields: []model.Question{
						{ID: "F1", Prompt: "Company name?", Kind: model.InputText},
						{ID: "F2", Prompt: "Your role?", Kind: model.InputText},
					},
				},
			},
		},
		{
			ID:    "WRAPUP",
			Title: "Wrap Up",
			Questions: []model.Question{
				{ID: "QSKILLS", Prompt: "Pick your skills.", Kind: model.InputMultiChoice, Options: []string{"Go", "SQL", "Docker"}},
				{ID: "QLAST", Prompt: "Anything else?", Kind: model.InputText},
			},
		},
	}
}

func TestControllerLinearFlowSkipsInactiveSection(t *testing.T) {
	c := New(testSchema())

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "No"}))

	// The work section never activated, so the next prompt is the wrap-up.
	prompt := c.Current()
	require.NotNil(t, prompt)
	assert.Equal(t, "QSKILLS", prompt.QuestionID)

	require.NoError(t, c.Submit(model.AnswerInput{Selections: []string{"Go", "SQL"}}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Nothing"}))

	assert.Equal(t, model.PhaseComplete, c.Phase())
	assert.Nil(t, c.Current())
	assert.Equal(t, "Alice", c.Answers().Scalar("Q1"))
	assert.Equal(t, []string{"Go", "SQL"}, c.Answers()["QSKILLS"].List)
}

func TestControllerGroupFlowEndToEnd(t *testing.T) {
	c := New(testSchema())

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Yes"}))

	// The group question opens the sub-flow instead of taking an answer.
	require.NoError(t, c.Submit(model.AnswerInput{Text: "ignored"}))
	assert.Equal(t, model.PhaseInGroup, c.Phase())

	sys := c.Transcript()[len(c.Transcript())-1]
	assert.Equal(t, model.EntrySystem, sys.Kind)
	assert.Equal(t, "Let's fill in details for Work History Entry #1", sys.Text)

	prompt := c.Current()
	require.NotNil(t, prompt)
	assert.Equal(t, "F1", prompt.QuestionID)

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Acme"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Developer"}))

	// The record commits as a whole once the last field is answered.
	assert.Equal(t, model.PhaseAwaitingRepeat, c.Phase())
	records := c.Answers()["G1"].Records
	require.Len(t, records, 1)
	assert.Equal(t, model.GroupRecord{"F1": "Acme", "F2": "Developer"}, records[0])

	require.NoError(t, c.ConfirmRepeat(false))
	assert.Equal(t, model.PhaseAtQuestion, c.Phase())
	assert.Equal(t, "QSKILLS", c.Current().QuestionID)
}

func TestControllerGroupRepeatAddsSecondEntry(t *testing.T) {
	c := New(testSchema())

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Yes"}))
	require.NoError(t, c.Submit(model.AnswerInput{}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Acme"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Developer"}))

	require.NoError(t, c.ConfirmRepeat(true))
	assert.Equal(t, model.PhaseInGroup, c.Phase())

	sys := c.Transcript()[len(c.Transcript())-1]
	assert.Equal(t, model.EntrySystem, sys.Kind)
	assert.Equal(t, "Let's fill in details for Work History", sys.Text)

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Globex"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Manager"}))
	require.NoError(t, c.ConfirmRepeat(false))

	records := c.Answers()["G1"].Records
	require.Len(t, records, 2)
	assert.Equal(t, "Globex", records[1]["F1"])
}

func TestControllerGroupCommitIsAtomic(t *testing.T) {
	c := New(testSchema())

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Yes"}))
	require.NoError(t, c.Submit(model.AnswerInput{}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Acme"}))

	// Mid-entry: nothing is visible in the store yet.
	_, ok := c.Answers()["G1"]
	assert.False(t, ok)

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Developer"}))
	assert.Len(t, c.Answers()["G1"].Records, 1)
}

func TestControllerValidationLeavesStateUntouched(t *testing.T) {
	c := New(testSchema())
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))

	before := c.Snapshot()

	err := c.Submit(model.AnswerInput{})
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please answer the question.", vErr.Message)

	assert.Equal(t, before, c.Snapshot())
}

func TestControllerMultiChoiceRequiresSelections(t *testing.T) {
	c := New(testSchema())
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "No"}))

	// Text input does not satisfy a multi-choice question.
	err := c.Submit(model.AnswerInput{Text: "Go"})
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)

	require.NoError(t, c.Submit(model.AnswerInput{Selections: []string{"Docker"}}))
	answer := c.Transcript()[len(c.Transcript())-1]
	assert.Equal(t, model.EntryAnswer, answer.Kind)
	assert.Equal(t, "Docker", answer.Text)
}

func TestControllerPhaseErrors(t *testing.T) {
	c := New(testSchema())

	assert.ErrorIs(t, c.ConfirmRepeat(true), ErrNotAwaitingRepeat)

	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Yes"}))
	require.NoError(t, c.Submit(model.AnswerInput{}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Acme"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Developer"}))

	assert.ErrorIs(t, c.Submit(model.AnswerInput{Text: "extra"}), ErrAwaitingRepeat)

	require.NoError(t, c.ConfirmRepeat(false))
	require.NoError(t, c.Submit(model.AnswerInput{Selections: []string{"Go"}}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Done"}))

	assert.Equal(t, model.PhaseComplete, c.Phase())
	assert.ErrorIs(t, c.Submit(model.AnswerInput{Text: "x"}), ErrComplete)
	assert.ErrorIs(t, c.ConfirmRepeat(false), ErrComplete)
}

func TestControllerSnapshotRestoreRoundTrip(t *testing.T) {
	c := New(testSchema())
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Yes"}))
	require.NoError(t, c.Submit(model.AnswerInput{}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Acme"}))

	snap := c.Snapshot()

	restored := Restore(testSchema(), snap)
	assert.Equal(t, model.PhaseInGroup, restored.Phase())
	require.NotNil(t, restored.Current())
	assert.Equal(t, "F2", restored.Current().QuestionID)

	// Mutating the restored controller must not leak into the snapshot.
	require.NoError(t, restored.Submit(model.AnswerInput{Text: "Developer"}))
	assert.Nil(t, snap.Answers["G1"].Records)
}

func TestControllerRepeatPromptText(t *testing.T) {
	c := New(testSchema())
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Yes"}))
	require.NoError(t, c.Submit(model.AnswerInput{}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Acme"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Developer"}))

	prompt := c.Current()
	require.NotNil(t, prompt)
	assert.True(t, prompt.Repeat)
	assert.Equal(t, "Would you like to add another work history entry?", prompt.Text)
	assert.Equal(t, []string{"Yes", "No"}, prompt.Options)
}
