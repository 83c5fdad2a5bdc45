package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/config"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/tui/components"
	"github.com/thenoetrevino/tasknest/internal/tui/dialogs"
	"github.com/thenoetrevino/tasknest/internal/tui/huhforms"
	"github.com/thenoetrevino/tasknest/internal/tui/notifications"
	"github.com/thenoetrevino/tasknest/internal/tui/state"
	"github.com/thenoetrevino/tasknest/internal/tui/theme"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	AppState      *state.AppState
	UiState       *state.UIState
	Notifications *notifications.Center

	CreateTask     *dialogs.CreateTaskDialog
	EditCollection *dialogs.EditCollectionSheet

	help     help.Model
	keys     keyMap
	markdown *components.MarkdownRenderer
}

// InitialModel creates the TUI model. Data is loaded by Init.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	uiState := state.NewUIState()
	center := notifications.NewCenter(cfg.Notifications.Duration)

	deps := dialogs.Deps{
		Ctx:       ctx,
		Notifier:  center,
		Refresher: workflow.RefresherFunc(uiState.RequestReload),
		Logger:    a.Logger,
		Theme:     huhforms.CreateTheme(cfg.ColorScheme),
		SaveKey:   cfg.KeyMappings.SaveForm,
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		ctx:           ctx,
		App:           a,
		Config:        cfg,
		AppState:      state.NewAppState(nil, nil),
		UiState:       uiState,
		Notifications: center,
		CreateTask: dialogs.NewCreateTaskDialog(a.TaskService, deps,
			modeSwitch(uiState, state.CreateTaskMode)),
		EditCollection: dialogs.NewEditCollectionSheet(a.CollectionService, deps,
			modeSwitch(uiState, state.EditCollectionMode)),
		help:     h,
		keys:     newKeyMap(cfg.KeyMappings),
		markdown: &components.MarkdownRenderer{},
	}
}

// modeSwitch enters mode when a dialog opens and returns to normal mode when it closes
func modeSwitch(ui *state.UIState, mode state.Mode) func(bool) {
	return func(open bool) {
		if open {
			ui.SetMode(mode)
		} else if ui.Mode() == mode {
			ui.SetMode(state.NormalMode)
		}
	}
}

// Init loads the collections and their tasks.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadData()
}

// currentCollection returns the selected collection, or nil when there is none
func (m Model) currentCollection() *models.CollectionSummary {
	return m.AppState.Collection(m.UiState.SelectedCollection())
}

// currentTasks returns the tasks of the selected collection
func (m Model) currentTasks() []*models.Task {
	c := m.currentCollection()
	if c == nil {
		return nil
	}
	return m.AppState.Tasks(c.ID)
}

// currentTask returns the selected task, or nil
func (m Model) currentTask() *models.Task {
	tasks := m.currentTasks()
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return nil
	}
	return tasks[i]
}
