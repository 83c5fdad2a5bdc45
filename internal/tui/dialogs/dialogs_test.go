package dialogs

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/schema"
	"github.com/thenoetrevino/tasknest/internal/testutil"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

type toast struct {
	kind  workflow.Kind
	title string
	desc  string
}

type harness struct {
	app        *app.App
	collection *models.Collection
	toasts     []toast
	refreshes  int
	opens      []bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(db)
	id := testutil.CreateTestCollection(t, db, "Courses", models.ColorPoppy)
	c, err := a.CollectionService.GetCollectionByID(context.Background(), id)
	require.NoError(t, err)
	return &harness{app: a, collection: c}
}

func (h *harness) deps() Deps {
	return Deps{
		Ctx: context.Background(),
		Notifier: workflow.NotifierFunc(func(kind workflow.Kind, title, desc string) {
			h.toasts = append(h.toasts, toast{kind, title, desc})
		}),
		Refresher: workflow.RefresherFunc(func() { h.refreshes++ }),
		SaveKey:   "ctrl+s",
	}
}

func (h *harness) onOpenChange(open bool) {
	h.opens = append(h.opens, open)
}

func saveKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
}

func escKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

// pump feeds the messages produced by cmd back into update, the way the
// program loop would. Commands slower than a frame, like cursor blinks, are dropped.
func pump(update func(tea.Msg) tea.Cmd, cmd tea.Cmd, depth int) {
	if cmd == nil || depth == 0 {
		return
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-out:
	case <-time.After(50 * time.Millisecond):
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			pump(update, c, depth)
		}
		return
	}
	if msg != nil {
		pump(update, update(msg), depth-1)
	}
}

func keyDown() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

// dispatch runs the command returned by a valid submission
func dispatch(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestCreateTaskSuccess(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.SetWidth(120)

	d.Open(h.collection)
	require.True(t, d.IsOpen())
	assert.Contains(t, ansi.Strip(d.View()), "Courses")

	d.State().Ptr().Content = "  Acheter du pain  "
	d.expires = "2030-01-15"

	msg := dispatch(t, d.Update(saveKey()))
	res, ok := msg.(CreateTaskResultMsg)
	require.True(t, ok)
	require.NoError(t, res.Result.Err)
	assert.Equal(t, "Acheter du pain", res.Result.Value.Content)
	require.NotNil(t, res.Result.Value.ExpiresAt)

	d.Update(msg)
	assert.False(t, d.IsOpen())
	assert.Equal(t, []bool{true, false}, h.opens)
	assert.Equal(t, []toast{{workflow.KindSuccess, schema.TaskCreated.Title, schema.TaskCreated.Description}}, h.toasts)
	assert.Equal(t, 1, h.refreshes)

	tasks, err := h.app.TaskService.GetTasksByCollection(context.Background(), h.collection.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestCreateTaskEmptyContentIsNotDispatched(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.Open(h.collection)

	d.State().Ptr().Content = "   "
	d.Update(saveKey())

	assert.True(t, d.IsOpen())
	assert.False(t, d.State().Submitting())
	assert.ErrorIs(t, d.State().Errors().Field(schema.FieldContent), schema.ErrContentRequired)
	assert.Empty(t, h.toasts)
}

func TestCreateTaskInvalidDateIsNotDispatched(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.Open(h.collection)

	d.State().Ptr().Content = "Appeler le garage"
	d.expires = "demain"
	d.Update(saveKey())

	assert.True(t, d.IsOpen())
	assert.False(t, d.State().Submitting())
	assert.Error(t, d.State().Errors().Field(schema.FieldExpiresAt))
}

func TestCreateTaskFailureKeepsValues(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.Open(h.collection)
	d.State().Ptr().Content = "Orpheline"
	d.expires = "2030-01-15"

	require.NoError(t, h.app.CollectionService.DeleteCollection(context.Background(), h.collection.ID))

	msg := dispatch(t, d.Update(saveKey()))
	d.Update(msg)

	assert.True(t, d.IsOpen())
	assert.False(t, d.State().Submitting())
	assert.Equal(t, "Orpheline", d.State().Values().Content)
	assert.Equal(t, "2030-01-15", d.expires)
	expires := d.State().Values().ExpiresAt
	require.NotNil(t, expires)
	assert.Equal(t, "2030-01-15", expires.Format("2006-01-02"))
	assert.Equal(t, []toast{{workflow.KindError, schema.TaskCreateFailed.Title, schema.TaskCreateFailed.Description}}, h.toasts)
	assert.Zero(t, h.refreshes)
}

func TestCreateTaskSubmitWhileSubmittingIsIgnored(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.Open(h.collection)
	d.State().Ptr().Content = "Une fois"

	first := d.Update(saveKey())
	require.NotNil(t, first)
	assert.True(t, d.State().Submitting())
	assert.Nil(t, d.Update(saveKey()))
}

func TestCreateTaskLateResultAfterClose(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.Open(h.collection)
	d.State().Ptr().Content = "En retard"

	cmd := d.Update(saveKey())
	d.Update(escKey())
	require.False(t, d.IsOpen())
	assert.Empty(t, d.State().Values().Content)

	d.Update(dispatch(t, cmd))

	assert.False(t, d.IsOpen())
	assert.Equal(t, []toast{{workflow.KindSuccess, schema.TaskCreated.Title, schema.TaskCreated.Description}}, h.toasts)
	assert.Equal(t, 1, h.refreshes)
	assert.Equal(t, []bool{true, false}, h.opens)
}

func TestCreateTaskReopenStartsEmpty(t *testing.T) {
	h := newHarness(t)
	d := NewCreateTaskDialog(h.app.TaskService, h.deps(), h.onOpenChange)
	d.Open(h.collection)
	d.State().Ptr().Content = "Brouillon"
	d.Close()

	d.Open(h.collection)
	assert.Empty(t, d.State().Values().Content)
	assert.Equal(t, h.collection.ID, d.State().Values().CollectionID)
	assert.False(t, d.State().Dirty())
}

func TestEditCollectionSuccess(t *testing.T) {
	h := newHarness(t)
	s := NewEditCollectionSheet(h.app.CollectionService, h.deps(), h.onOpenChange)
	s.SetSize(120, 40)

	s.Open(h.collection)
	assert.Equal(t, "Courses", s.State().Values().Name)
	assert.Equal(t, models.ColorPoppy, s.State().Values().Color)

	require.NoError(t, s.State().SetField(schema.FieldName, " Marché "))
	require.NoError(t, s.State().SetField(schema.FieldColor, models.ColorSnowflake))

	msg := dispatch(t, s.Update(saveKey()))
	s.Update(msg)

	assert.False(t, s.IsOpen())
	assert.Equal(t, []toast{{workflow.KindSuccess, schema.CollectionUpdated.Title, schema.CollectionUpdated.Description}}, h.toasts)
	assert.Equal(t, 1, h.refreshes)

	got, err := h.app.CollectionService.GetCollectionByID(context.Background(), h.collection.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marché", got.Name)
	assert.Equal(t, models.ColorSnowflake, got.Color)
}

func TestEditCollectionEmptyName(t *testing.T) {
	h := newHarness(t)
	s := NewEditCollectionSheet(h.app.CollectionService, h.deps(), h.onOpenChange)
	s.Open(h.collection)

	s.State().Ptr().Name = ""
	s.Update(saveKey())

	assert.True(t, s.IsOpen())
	assert.ErrorIs(t, s.State().Errors().Field(schema.FieldName), schema.ErrNameRequired)
	assert.Empty(t, h.toasts)
}

func TestEditCollectionFailure(t *testing.T) {
	h := newHarness(t)
	s := NewEditCollectionSheet(h.app.CollectionService, h.deps(), h.onOpenChange)
	s.Open(h.collection)
	s.State().Ptr().Name = "Nouveau"

	require.NoError(t, h.app.CollectionService.DeleteCollection(context.Background(), h.collection.ID))

	s.Update(dispatch(t, s.Update(saveKey())))

	assert.True(t, s.IsOpen())
	assert.Equal(t, "Nouveau", s.State().Values().Name)
	assert.Equal(t, []toast{{workflow.KindError, schema.CollectionUpdateFailed.Title, schema.CollectionUpdateFailed.Description}}, h.toasts)
}

func TestEditCollectionCancelRestoresSeed(t *testing.T) {
	h := newHarness(t)
	s := NewEditCollectionSheet(h.app.CollectionService, h.deps(), h.onOpenChange)
	s.Open(h.collection)
	s.State().Ptr().Name = "Autre"

	s.Update(escKey())

	assert.False(t, s.IsOpen())
	assert.Equal(t, "Courses", s.State().Values().Name)
	assert.Equal(t, []bool{true, false}, h.opens)
	assert.Empty(t, s.View())
}

func TestEditCollectionUnknownColorSeedsFirstPaletteColor(t *testing.T) {
	h := newHarness(t)
	s := NewEditCollectionSheet(h.app.CollectionService, h.deps(), h.onOpenChange)
	stale := *h.collection
	stale.Color = models.ColorTag("ocean")

	s.Open(&stale)

	assert.Equal(t, models.AllColorTags()[0], s.State().Values().Color)
}

func TestEditCollectionButtonPreviewsSelectedColor(t *testing.T) {
	h := newHarness(t)
	s := NewEditCollectionSheet(h.app.CollectionService, h.deps(), h.onOpenChange)
	s.SetSize(120, 40)
	pump(s.Update, s.Open(h.collection), 3)

	inner := s.innerWidth()
	assert.Contains(t, s.View(), palette.Lookup(models.ColorPoppy).Fill(confirmLabel, inner))

	// name field to color select, then poppy -> rosebud -> snowflake
	pump(s.Update, s.Update(tea.KeyPressMsg{Code: tea.KeyTab}), 3)
	pump(s.Update, s.Update(keyDown()), 3)
	pump(s.Update, s.Update(keyDown()), 3)

	require.Equal(t, models.ColorSnowflake, s.State().Values().Color)
	view := s.View()
	assert.Contains(t, view, palette.Lookup(models.ColorSnowflake).Fill(confirmLabel, inner))
	assert.NotContains(t, view, palette.Lookup(models.ColorPoppy).Fill(confirmLabel, inner))

	assert.True(t, s.IsOpen())
	assert.Empty(t, h.toasts)

	msg := dispatch(t, s.Update(saveKey()))
	s.Update(msg)

	got, err := h.app.CollectionService.GetCollectionByID(context.Background(), h.collection.ID)
	require.NoError(t, err)
	assert.Equal(t, "Courses", got.Name)
	assert.Equal(t, models.ColorSnowflake, got.Color)
}
