package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func TestProjectSynthesizesPendingQuestion(t *testing.T) {
	c := New(testSchema())

	entries := Project(c)
	require.Len(t, entries, 1)
	assert.Equal(t, model.EntryQuestion, entries[0].Kind)
	assert.Equal(t, "What is your name?", entries[0].Text)

	// History is untouched by projection.
	assert.Empty(t, c.Transcript())
}

func TestProjectDoesNotDuplicateCurrentQuestion(t *testing.T) {
	c := New(testSchema())
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))

	first := Project(c)
	second := Project(c)
	assert.Equal(t, first, second)

	tail := second[len(second)-1]
	assert.Equal(t, model.EntryQuestion, tail.Kind)
	assert.Equal(t, "Are you currently working?", tail.Text)
	assert.NotEqual(t, tail.Text, second[len(second)-2].Text)
}

func TestProjectCompleteConversationAddsNothing(t *testing.T) {
	c := New(testSchema())
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Alice"}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "No"}))
	require.NoError(t, c.Submit(model.AnswerInput{Selections: []string{"Go"}}))
	require.NoError(t, c.Submit(model.AnswerInput{Text: "Nothing"}))

	require.Equal(t, model.PhaseComplete, c.Phase())
	assert.Equal(t, c.Transcript(), Project(c))
}
