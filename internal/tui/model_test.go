package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/config"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/schema"
	collectionservice "github.com/thenoetrevino/tasknest/internal/services/collection"
	"github.com/thenoetrevino/tasknest/internal/testutil"
	"github.com/thenoetrevino/tasknest/internal/tui/dialogs"
	"github.com/thenoetrevino/tasknest/internal/tui/state"
)

func setupModel(t *testing.T) (Model, *app.App, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(db)

	collectionID := testutil.CreateTestCollection(t, db, "Maison", models.ColorFirtree)
	testutil.CreateTestTask(t, db, collectionID, "Arroser les plantes")
	testutil.CreateTestCollection(t, db, "Travail", models.ColorMetal)

	m := InitialModel(context.Background(), a, config.Default())
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, load(context.Background(), a))
	return m, a, collectionID
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// run executes cmd, unwrapping batches, and returns the first non-nil message
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if out := run(t, c); out != nil {
				return out
			}
		}
		return nil
	}
	return msg
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestInitialLoad(t *testing.T) {
	m, _, collectionID := setupModel(t)

	require.Len(t, m.AppState.Collections(), 2)
	assert.Equal(t, "Maison", m.currentCollection().Name)
	assert.Len(t, m.AppState.Tasks(collectionID), 1)

	content := ansi.Strip(m.View().Content)
	assert.Contains(t, content, "Maison")
	assert.Contains(t, content, "Arroser les plantes")
}

func TestViewBeforeResize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := InitialModel(context.Background(), app.New(db), nil)
	assert.Equal(t, "Chargement...", m.View().Content)
}

func TestNavigation(t *testing.T) {
	m, _, _ := setupModel(t)

	m = update(t, m, press('l'))
	assert.Equal(t, "Travail", m.currentCollection().Name)

	m = update(t, m, press('l'))
	assert.Equal(t, 1, m.UiState.SelectedCollection(), "selection stays on the last collection")

	m = update(t, m, press('h'))
	assert.Equal(t, "Maison", m.currentCollection().Name)

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, state.FocusTasks, m.UiState.Focus())
}

func TestOpenAndCancelCreateTask(t *testing.T) {
	m, _, _ := setupModel(t)

	m = update(t, m, press('n'))
	require.Equal(t, state.CreateTaskMode, m.UiState.Mode())
	assert.True(t, m.CreateTask.IsOpen())
	assert.Contains(t, m.View().Content, "Ajoutez la tâche à la collection")

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.CreateTask.IsOpen())
}

func TestCreateTaskRefreshesBoard(t *testing.T) {
	m, a, collectionID := setupModel(t)

	m = update(t, m, press('n'))
	m.CreateTask.State().Ptr().Content = "Sortir les poubelles"

	m, cmd := updateCmd(t, m, tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	msg := run(t, cmd)
	require.IsType(t, dialogs.CreateTaskResultMsg{}, msg)

	m = update(t, m, msg)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	require.Len(t, m.Notifications.Toasts(), 1)
	assert.Equal(t, schema.TaskCreated.Description, m.Notifications.Toasts()[0].Description)

	m = update(t, m, load(context.Background(), a))
	assert.Len(t, m.AppState.Tasks(collectionID), 2)
}

func TestEditCollectionOpensSheet(t *testing.T) {
	m, _, _ := setupModel(t)

	m = update(t, m, press('e'))
	require.Equal(t, state.EditCollectionMode, m.UiState.Mode())
	assert.Equal(t, "Maison", m.EditCollection.State().Values().Name)
	assert.Contains(t, m.View().Content, "Modifier la collection")
}

func TestToggleDone(t *testing.T) {
	m, a, collectionID := setupModel(t)

	m, cmd := updateCmd(t, m, press('x'))
	m = update(t, m, run(t, cmd))
	m = update(t, m, load(context.Background(), a))

	tasks := m.AppState.Tasks(collectionID)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Done)
}

func TestDeleteTask(t *testing.T) {
	m, a, collectionID := setupModel(t)

	m, cmd := updateCmd(t, m, press('d'))
	m = update(t, m, run(t, cmd))
	m = update(t, m, load(context.Background(), a))

	assert.Empty(t, m.AppState.Tasks(collectionID))
}

func TestAddTaskWithoutCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	a := app.New(db)
	m := InitialModel(context.Background(), a, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, load(context.Background(), a))

	m = update(t, m, press('n'))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	require.Len(t, m.Notifications.Toasts(), 1)
	assert.Equal(t, "Erreur", m.Notifications.Toasts()[0].Title)
}

func TestHelpMode(t *testing.T) {
	m, _, _ := setupModel(t)

	m = update(t, m, press('?'))
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.True(t, strings.Contains(m.View().Content, "Raccourcis"))

	m = update(t, m, press('?'))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestReloadKeepsSelectedCollection(t *testing.T) {
	m, a, _ := setupModel(t)
	m = update(t, m, press('l'))
	require.Equal(t, "Travail", m.currentCollection().Name)

	// a collection sorting before both shifts the indices
	_, err := a.CollectionService.CreateCollection(context.Background(), collectionservice.CreateCollectionRequest{
		Name:  "Achats",
		Color: models.ColorCandy,
	})
	require.NoError(t, err)

	m = update(t, m, load(context.Background(), a))
	assert.Equal(t, "Travail", m.currentCollection().Name)
}
