package workflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/form"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/schema"
	. "github.com/thenoetrevino/tasknest/internal/workflow"
)

type notification struct {
	kind        Kind
	title       string
	description string
}

type recorder struct {
	notifications []notification
	refreshes     int
	closes        int
}

func (r *recorder) Notify(kind Kind, title, description string) {
	r.notifications = append(r.notifications, notification{kind, title, description})
}

func (r *recorder) Refresh() {
	r.refreshes++
}

type taskAction struct {
	calls []schema.TaskInput
	err   error
}

func (a *taskAction) create(_ context.Context, in schema.TaskInput) (*models.Task, error) {
	a.calls = append(a.calls, in)
	if a.err != nil {
		return nil, a.err
	}
	return &models.Task{ID: "t1", Content: in.Content, ExpiresAt: in.ExpiresAt, CollectionID: in.CollectionID}, nil
}

func newTaskWorkflow(action *taskAction, rec *recorder) (*Workflow[schema.TaskInput, *models.Task], *form.State[schema.TaskInput]) {
	state := form.NewState(schema.TaskSchema, schema.TaskInput{CollectionID: "c1"})
	wf := New(Options[schema.TaskInput, *models.Task]{
		Action:    action.create,
		Notifier:  rec,
		Refresher: rec,
		Success:   Message{Title: "Succès", Description: "La tâche a été créée avec succès"},
		Failure:   Message{Title: "Erreur", Description: "Impossible de créer un tâche"},
		Normalize: schema.TaskInput.Normalized,
		OnClose:   func() { rec.closes++ },
	})
	return wf, state
}

func TestCreateTaskSuccess(t *testing.T) {
	action := &taskAction{}
	rec := &recorder{}
	wf, state := newTaskWorkflow(action, rec)

	require.NoError(t, state.SetField(schema.FieldContent, "Acheter du lait"))

	sub, err := wf.Begin(state)
	require.NoError(t, err)
	assert.True(t, state.Submitting())

	res := wf.Dispatch(context.Background(), sub)
	require.NoError(t, res.Err)
	assert.True(t, wf.Complete(state, res))

	require.Len(t, action.calls, 1)
	assert.Equal(t, schema.TaskInput{Content: "Acheter du lait", ExpiresAt: nil, CollectionID: "c1"}, action.calls[0])

	assert.Equal(t, 1, rec.closes)
	assert.Equal(t, 1, rec.refreshes)
	require.Len(t, rec.notifications, 1)
	assert.Equal(t, KindSuccess, rec.notifications[0].kind)
	assert.Equal(t, "Succès", rec.notifications[0].title)

	assert.Equal(t, schema.TaskInput{CollectionID: "c1"}, state.Values(), "form resets to defaults")
	assert.False(t, state.Submitting())
}

func TestCreateTaskInvalidNeverDispatches(t *testing.T) {
	action := &taskAction{}
	rec := &recorder{}
	wf, state := newTaskWorkflow(action, rec)

	for _, content := range []string{"", "   ", "\n\t"} {
		require.NoError(t, state.SetField(schema.FieldContent, content))

		_, err := wf.Begin(state)
		require.ErrorIs(t, err, ErrInvalid)

		var errs form.Errors
		require.ErrorAs(t, err, &errs)
		assert.ErrorIs(t, errs.Field(schema.FieldContent), schema.ErrContentRequired)
		assert.False(t, state.Submitting())
	}

	assert.Empty(t, action.calls)
	assert.Empty(t, rec.notifications, "validation errors are shown inline, not notified")
}

func TestCreateTaskFailureKeepsValues(t *testing.T) {
	action := &taskAction{err: errors.New("disk full")}
	rec := &recorder{}
	wf, state := newTaskWorkflow(action, rec)

	expires := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, state.SetField(schema.FieldContent, "Acheter du lait"))
	require.NoError(t, state.SetField(schema.FieldExpiresAt, &expires))

	_, err := wf.Run(context.Background(), state)
	require.Error(t, err)
	assert.True(t, IsSubmissionFailed(err))

	assert.Equal(t, "Acheter du lait", state.Values().Content)
	assert.Equal(t, &expires, state.Values().ExpiresAt)
	assert.False(t, state.Submitting(), "user can retry")
	assert.Equal(t, 0, rec.closes)
	assert.Equal(t, 0, rec.refreshes)
	require.Len(t, rec.notifications, 1)
	assert.Equal(t, KindError, rec.notifications[0].kind)
	assert.Equal(t, "Impossible de créer un tâche", rec.notifications[0].description)

	// Manual retry succeeds with the preserved values
	action.err = nil
	_, err = wf.Run(context.Background(), state)
	require.NoError(t, err)
	require.Len(t, action.calls, 2)
	assert.Equal(t, action.calls[0], action.calls[1])
}

func TestBeginRejectsDuplicateSubmission(t *testing.T) {
	action := &taskAction{}
	rec := &recorder{}
	wf, state := newTaskWorkflow(action, rec)
	require.NoError(t, state.SetField(schema.FieldContent, "x"))

	_, err := wf.Begin(state)
	require.NoError(t, err)

	_, err = wf.Begin(state)
	assert.ErrorIs(t, err, ErrSubmitting)
}

func TestCloseAlwaysResets(t *testing.T) {
	for _, actionErr := range []error{nil, errors.New("boom")} {
		action := &taskAction{err: actionErr}
		rec := &recorder{}
		wf, state := newTaskWorkflow(action, rec)

		require.NoError(t, state.SetField(schema.FieldContent, "typed"))
		_, _ = wf.Run(context.Background(), state)
		require.NoError(t, state.SetField(schema.FieldContent, "typed again"))

		wf.Close(state)
		assert.Equal(t, schema.TaskInput{CollectionID: "c1"}, state.Values())
		assert.False(t, state.Errors().Any())
	}
}

func TestLateResultAfterClose(t *testing.T) {
	action := &taskAction{}
	rec := &recorder{}
	wf, state := newTaskWorkflow(action, rec)
	require.NoError(t, state.SetField(schema.FieldContent, "Acheter du lait"))

	sub, err := wf.Begin(state)
	require.NoError(t, err)

	// The shell is dismissed while the action runs, then reopened and typed into
	wf.Close(state)
	require.NoError(t, state.SetField(schema.FieldContent, "nouvelle saisie"))

	res := wf.Dispatch(context.Background(), sub)
	assert.NotPanics(t, func() { wf.Complete(state, res) })

	assert.Equal(t, "nouvelle saisie", state.Values().Content, "stale result leaves the new session alone")
	assert.Equal(t, 0, rec.closes)
	assert.Equal(t, 1, rec.refreshes)
	require.Len(t, rec.notifications, 1)
	assert.Equal(t, KindSuccess, rec.notifications[0].kind)
}

func TestDispatchWithoutAction(t *testing.T) {
	wf := New(Options[schema.TaskInput, *models.Task]{})
	res := wf.Dispatch(context.Background(), Submission[schema.TaskInput]{Session: wf.Session()})
	assert.True(t, IsSubmissionFailed(res.Err))
}

type updateCall struct {
	id    string
	input schema.CollectionInput
}

func TestEditCollection(t *testing.T) {
	collection := &models.Collection{ID: "k1", Name: "Perso", Color: models.ColorPoppy}
	var calls []updateCall
	rec := &recorder{}

	state := form.NewState(schema.CollectionSchema, schema.CollectionInput{
		Name:  collection.Name,
		Color: collection.Color,
	})
	wf := New(Options[schema.CollectionInput, *models.Collection]{
		Action: func(_ context.Context, in schema.CollectionInput) (*models.Collection, error) {
			calls = append(calls, updateCall{id: collection.ID, input: in})
			return &models.Collection{ID: collection.ID, Name: in.Name, Color: in.Color}, nil
		},
		Notifier:  rec,
		Refresher: rec,
		Normalize: schema.CollectionInput.Normalized,
	})

	t.Run("empty name never dispatches", func(t *testing.T) {
		require.NoError(t, state.SetField(schema.FieldName, ""))
		_, err := wf.Run(context.Background(), state)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Empty(t, calls)
		wf.Close(state)
	})

	t.Run("color change", func(t *testing.T) {
		require.NoError(t, state.SetField(schema.FieldColor, models.ColorSnowflake))
		_, err := wf.Run(context.Background(), state)
		require.NoError(t, err)

		require.Len(t, calls, 1)
		assert.Equal(t, updateCall{
			id:    "k1",
			input: schema.CollectionInput{Name: "Perso", Color: models.ColorSnowflake},
		}, calls[0])
		assert.Equal(t, 1, rec.refreshes)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
