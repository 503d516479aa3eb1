package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-builder/model"
)

func validForm() model.Form {
	return model.Form{
		ID:    "f1",
		Title: "Customer Survey",
		Questions: []model.Question{
			{
				ID:           "q1",
				Title:        "Are you satisfied?",
				Code:         "satisfied",
				Order:        1,
				Required:     true,
				QuestionType: model.YesNo,
			},
		},
	}
}

func TestFormValid(t *testing.T) {
	result := Form(validForm())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestFormShortTitleAndNoQuestions(t *testing.T) {
	result := Form(model.Form{Title: "ab"})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Title must be at least 3 characters", FieldError("title", result.Errors))
	assert.Equal(t, "Form must have at least one question", FieldError("questions", result.Errors))
}

func TestFormQuestionErrorsArePrefixed(t *testing.T) {
	form := validForm()
	form.Questions = append(form.Questions, model.Question{
		ID:           "q2",
		Title:        "x",
		Code:         "q2",
		Order:        1,
		QuestionType: model.FreeText,
	})

	result := Form(form)
	assert.False(t, result.IsValid)
	assert.Equal(t,
		"Question title must be at least 3 characters",
		FieldError("questions[1].title", result.Errors))
}

func TestFormDuplicateCodesFlagBothQuestions(t *testing.T) {
	form := validForm()
	q2 := form.Questions[0]
	q2.ID = "q2"
	form.Questions = append(form.Questions, q2)

	result := Form(form)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, FieldError("questions[0].code", result.Errors))
	assert.NotEmpty(t, FieldError("questions[1].code", result.Errors))
	require.Len(t, result.Errors, 2)
}

func TestFormValidationIsIdempotent(t *testing.T) {
	form := validForm()
	form.Title = "ab"
	form.Questions[0].Code = "bad code"

	first := Form(form)
	second := Form(form)
	assert.Equal(t, first, second)
}
