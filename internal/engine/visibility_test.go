package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func branchSchema() model.Schema {
	return model.Schema{
		{
			ID:    "S1",
			Title: "Profile",
			Questions: []model.Question{
				{ID: "STATUS", Prompt: "Status?", Kind: model.InputSingleChoice, Options: []string{"Student", "Working Professional"}},
				{ID: "INTERN", Prompt: "Any internships?", Kind: model.InputSingleChoice, Options: []string{"Yes", "No"}},
			},
		},
		{
			ID:         "S2",
			Title:      "Internships",
			Visibility: map[string]string{"INTERN": "Yes"},
			Questions: []model.Question{
				{ID: "IDETAIL", Prompt: "Describe them.", Kind: model.InputTextarea},
			},
		},
		{
			ID:         "S3",
			Title:      "Work",
			Visibility: map[string]string{"STATUS": "Working Professional", "INTERN": "Yes"},
			Questions: []model.Question{
				{ID: "WDETAIL", Prompt: "Describe your work.", Kind: model.InputTextarea},
			},
		},
	}
}

func TestActiveSectionsExactMatch(t *testing.T) {
	schema := branchSchema()
	answers := make(model.AnswerStore)

	// Unanswered predicates gate their sections off.
	active := ActiveSections(schema, answers)
	require.Len(t, active, 1)
	assert.Equal(t, "S1", active[0].ID)

	// Matching is exact, including case.
	answers.SetScalar("INTERN", "yes")
	assert.Len(t, ActiveSections(schema, answers), 1)

	answers.SetScalar("INTERN", "Yes")
	active = ActiveSections(schema, answers)
	require.Len(t, active, 2)
	assert.Equal(t, "S2", active[1].ID)
}

func TestActiveSectionsAllPredicatesMustHold(t *testing.T) {
	schema := branchSchema()
	answers := make(model.AnswerStore)

	answers.SetScalar("STATUS", "Working Professional")
	for _, sec := range ActiveSections(schema, answers) {
		assert.NotEqual(t, "S3", sec.ID)
	}

	answers.SetScalar("INTERN", "Yes")
	active := ActiveSections(schema, answers)
	require.Len(t, active, 3)
	assert.Equal(t, "S3", active[2].ID)
}

func TestActiveQuestionsFlattensInSchemaOrder(t *testing.T) {
	schema := branchSchema()
	answers := make(model.AnswerStore)
	answers.SetScalar("INTERN", "Yes")

	qs := ActiveQuestions(schema, answers)
	require.Len(t, qs, 3)
	assert.Equal(t, "STATUS", qs[0].ID)
	assert.Equal(t, "INTERN", qs[1].ID)
	assert.Equal(t, "IDETAIL", qs[2].ID)
}

func TestDeactivationRetainsAnswers(t *testing.T) {
	schema := branchSchema()
	answers := make(model.AnswerStore)

	answers.SetScalar("INTERN", "Yes")
	answers.SetScalar("IDETAIL", "Summer at a lab")

	// Flipping the branch hides the section but keeps its answer, so
	// re-activation restores the prior input.
	answers.SetScalar("INTERN", "No")
	assert.Len(t, ActiveQuestions(schema, answers), 2)
	assert.Equal(t, "Summer at a lab", answers.Scalar("IDETAIL"))

	answers.SetScalar("INTERN", "Yes")
	assert.Len(t, ActiveQuestions(schema, answers), 3)
}
