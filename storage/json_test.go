package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/form-builder/model"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func sampleForm(id string) model.Form {
	return model.Form{
		ID:        id,
		Title:     "Sample form",
		CreatedAt: time.Now().Truncate(time.Second),
		IsActive:  true,
		Questions: []model.Question{
			{ID: id + "-q1", Code: "q1", Title: "A question", Order: 1, QuestionType: model.FreeText},
		},
	}
}

func TestJSONStoreEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	forms, err := store.LoadForms(ctx)
	require.NoError(t, err)
	assert.Empty(t, forms)

	form, err := store.LoadForm(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, form)

	responses, err := store.LoadResponses(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestJSONStoreSaveAndLoadForm(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	form := sampleForm("f1")
	require.NoError(t, store.SaveForm(ctx, form))

	loaded, err := store.LoadForm(ctx, "f1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, form.Title, loaded.Title)
	require.Len(t, loaded.Questions, 1)
	assert.Equal(t, "q1", loaded.Questions[0].Code)
}

func TestJSONStoreUpsertReplacesWholeForm(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveForm(ctx, sampleForm("f1")))

	updated := sampleForm("f1")
	updated.Title = "Renamed"
	updated.Questions = nil
	require.NoError(t, store.SaveForm(ctx, updated))

	forms, err := store.LoadForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Renamed", forms[0].Title)
	assert.Empty(t, forms[0].Questions)
}

func TestJSONStoreResponsesAppendAndFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveResponse(ctx, model.FormResponse{
		ID: "r1", FormID: "f1", SubmittedAt: time.Now(),
		Answers: []model.Answer{{QuestionID: "q1", Value: model.Text("hi")}},
	}))
	require.NoError(t, store.SaveResponse(ctx, model.FormResponse{
		ID: "r2", FormID: "f2", SubmittedAt: time.Now(),
	}))

	all, err := store.LoadResponses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := store.LoadResponses(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "r1", filtered[0].ID)
	require.Len(t, filtered[0].Answers, 1)
	assert.Equal(t, model.Text("hi"), filtered[0].Answers[0].Value)
}

func TestJSONStoreDeleteFormCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveForm(ctx, sampleForm("f1")))
	require.NoError(t, store.SaveForm(ctx, sampleForm("f2")))
	require.NoError(t, store.SaveResponse(ctx, model.FormResponse{ID: "r1", FormID: "f1"}))
	require.NoError(t, store.SaveResponse(ctx, model.FormResponse{ID: "r2", FormID: "f2"}))

	require.NoError(t, store.DeleteForm(ctx, "f1"))

	form, err := store.LoadForm(ctx, "f1")
	require.NoError(t, err)
	assert.Nil(t, form)

	responses, err := store.LoadResponses(ctx, "")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "r2", responses[0].ID)
}

func TestJSONStoreDeleteMissingFormIsNoop(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.DeleteForm(context.Background(), "nope"))
}

func TestJSONStoreValueShapesSurviveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveResponse(ctx, model.FormResponse{
		ID: "r1", FormID: "f1",
		Answers: []model.Answer{
			{QuestionID: "text", Value: model.Text("hello")},
			{QuestionID: "num", Value: model.Number(3.5)},
			{QuestionID: "bool", Value: model.Bool(true)},
			{QuestionID: "list", Value: model.List("a", "b")},
		},
	}))

	responses, err := store.LoadResponses(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, responses, 1)

	answers := responses[0].Answers
	require.Len(t, answers, 4)
	assert.Equal(t, model.Text("hello"), answers[0].Value)
	assert.Equal(t, model.Number(3.5), answers[1].Value)
	assert.Equal(t, model.Bool(true), answers[2].Value)
	assert.Equal(t, model.List("a", "b"), answers[3].Value)
}

func TestJSONStoreCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "forms.json"), []byte("{nope"), 0644))

	_, err = store.LoadForms(context.Background())
	assert.Error(t, err)
}
