package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-builder/model"
)

func statsForm() *model.Form {
	return &model.Form{
		ID:    "f1",
		Title: "Stats",
		Questions: []model.Question{
			{ID: "color", Code: "color", QuestionType: model.SingleChoice, Options: []model.AnswerOption{
				{Answer: "Red"}, {Answer: "Blue"},
			}},
			{ID: "agree", Code: "agree", QuestionType: model.YesNo},
			{ID: "age", Code: "age", QuestionType: model.Integer},
			{ID: "notes", Code: "notes", QuestionType: model.FreeText},
			{ID: "tags", Code: "tags", QuestionType: model.MultipleChoice, Options: []model.AnswerOption{
				{Answer: "a"}, {Answer: "b"},
			}},
		},
	}
}

func responses() []model.FormResponse {
	return []model.FormResponse{
		{ID: "r1", FormID: "f1", Answers: []model.Answer{
			{QuestionID: "color", Value: model.Text("Red")},
			{QuestionID: "agree", Value: model.Bool(true)},
			{QuestionID: "age", Value: model.Number(30)},
			{QuestionID: "notes", Value: model.Text("fine")},
			{QuestionID: "tags", Value: model.List("a")},
		}},
		{ID: "r2", FormID: "f1", Answers: []model.Answer{
			{QuestionID: "color", Value: model.Text("Red")},
			{QuestionID: "agree", Value: model.Bool(false)},
			{QuestionID: "age", Value: model.Number(40)},
		}},
		{ID: "r3", FormID: "f1", Answers: []model.Answer{
			{QuestionID: "color", Value: model.Text("Blue")},
			{QuestionID: "age", Value: model.Number(35)},
		}},
	}
}

func TestForQuestionChoices(t *testing.T) {
	stats := ForQuestion(statsForm(), "color", responses())

	require.NotNil(t, stats)
	assert.Equal(t, TypeChoices, stats.Type)
	assert.Equal(t, map[string]int{"Red": 2, "Blue": 1}, stats.Data)
}

func TestForQuestionBoolean(t *testing.T) {
	stats := ForQuestion(statsForm(), "agree", responses())

	require.NotNil(t, stats)
	assert.Equal(t, TypeBoolean, stats.Type)
	assert.Equal(t, map[string]int{"Yes": 1, "No": 1}, stats.Data)
}

func TestForQuestionScale(t *testing.T) {
	stats := ForQuestion(statsForm(), "age", responses())

	require.NotNil(t, stats)
	assert.Equal(t, TypeScale, stats.Type)
	assert.Equal(t, map[string]any{"average": "35.0", "min": 30.0, "max": 40.0}, stats.Data)
}

func TestForQuestionText(t *testing.T) {
	notes := ForQuestion(statsForm(), "notes", responses())
	require.NotNil(t, notes)
	assert.Equal(t, TypeText, notes.Type)
	assert.Equal(t, 1, notes.Data)

	// multiple choice also falls back to an answered count
	tags := ForQuestion(statsForm(), "tags", responses())
	require.NotNil(t, tags)
	assert.Equal(t, TypeText, tags.Type)
	assert.Equal(t, 1, tags.Data)
}

func TestForQuestionUnknown(t *testing.T) {
	assert.Nil(t, ForQuestion(statsForm(), "missing", responses()))
}

func TestForQuestionNoAnswers(t *testing.T) {
	stats := ForQuestion(statsForm(), "age", nil)

	require.NotNil(t, stats)
	assert.Equal(t, TypeScale, stats.Type)
	assert.Equal(t, map[string]any{"average": "0.0", "min": 0.0, "max": 0.0}, stats.Data)
}

func TestFormatAnswer(t *testing.T) {
	form := statsForm()

	assert.Equal(t, "Yes", FormatAnswer(form, "agree", model.Bool(true)))
	assert.Equal(t, "No", FormatAnswer(form, "agree", model.Bool(false)))
	assert.Equal(t, "a, b", FormatAnswer(form, "tags", model.List("a", "b")))
	assert.Equal(t, "35", FormatAnswer(form, "age", model.Number(35)))
	assert.Equal(t, "Red", FormatAnswer(form, "color", model.Text("Red")))
	assert.Equal(t, "free", FormatAnswer(form, "missing", model.Text("free")))
}
