package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasknest/internal/tui/dialogs"
	"github.com/thenoetrevino/tasknest/internal/tui/notifications"
	"github.com/thenoetrevino/tasknest/internal/tui/state"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// Update handles all incoming messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.help.SetWidth(msg.Width)
		m.CreateTask.SetWidth(msg.Width)
		m.EditCollection.SetSize(msg.Width, msg.Height)

	case dataLoadedMsg:
		if msg.err != nil {
			slog.Error("Error loading data", "error", msg.err)
			m.Notifications.Notify(workflow.KindError, "Erreur", "Impossible de charger les données")
			break
		}
		m.applyData(msg)

	case taskChangedMsg:
		if msg.err != nil {
			slog.Error("Error updating task", "error", msg.err)
			m.Notifications.Notify(workflow.KindError, "Erreur", "Impossible de modifier la tâche")
			break
		}
		m.UiState.RequestReload()

	case notifications.ExpiredMsg:
		m.Notifications.Update(msg)

	case dialogs.CreateTaskResultMsg:
		cmds = append(cmds, m.CreateTask.Update(msg))

	case dialogs.EditCollectionResultMsg:
		cmds = append(cmds, m.EditCollection.Update(msg))

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		// cursor blinks and other widget messages
		switch m.UiState.Mode() {
		case state.CreateTaskMode:
			cmds = append(cmds, m.CreateTask.Update(msg))
		case state.EditCollectionMode:
			cmds = append(cmds, m.EditCollection.Update(msg))
		}
	}

	cmds = append(cmds, m.Notifications.Drain())
	if m.UiState.ConsumeReload() {
		cmds = append(cmds, m.loadData())
	}
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press to the open dialog or the board
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.CreateTaskMode:
		return m.CreateTask.Update(msg)
	case state.EditCollectionMode:
		return m.EditCollection.Update(msg)
	case state.HelpMode:
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.help.ShowAll = false
			m.UiState.SetMode(state.NormalMode)
			return nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return tea.Quit
		}
		return nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, m.keys.AddTask):
		c := m.currentCollection()
		if c == nil {
			m.Notifications.Notify(workflow.KindError, "Erreur", "Aucune collection sélectionnée")
			return nil
		}
		return m.CreateTask.Open(c.Collection)

	case key.Matches(msg, m.keys.EditCollection):
		c := m.currentCollection()
		if c == nil {
			m.Notifications.Notify(workflow.KindError, "Erreur", "Aucune collection sélectionnée")
			return nil
		}
		return m.EditCollection.Open(c.Collection)

	case key.Matches(msg, m.keys.SwitchFocus):
		m.UiState.ToggleFocus()

	case key.Matches(msg, m.keys.PrevCollection):
		m.moveCollection(-1)

	case key.Matches(msg, m.keys.NextCollection):
		m.moveCollection(1)

	case key.Matches(msg, m.keys.PrevTask):
		m.moveVertical(-1)

	case key.Matches(msg, m.keys.NextTask):
		m.moveVertical(1)

	case key.Matches(msg, m.keys.ToggleDone):
		if t := m.currentTask(); t != nil {
			return m.setTaskDone(t)
		}

	case key.Matches(msg, m.keys.DeleteTask):
		if t := m.currentTask(); t != nil {
			return m.deleteTask(t)
		}
	}
	return nil
}

// moveVertical moves within the focused panel
func (m *Model) moveVertical(delta int) {
	if m.UiState.Focus() == state.FocusCollections {
		m.moveCollection(delta)
		return
	}
	m.UiState.SetSelectedTask(m.UiState.SelectedTask() + delta)
	m.UiState.ClampSelection(len(m.AppState.Collections()), len(m.currentTasks()))
}

func (m *Model) moveCollection(delta int) {
	m.UiState.SetSelectedCollection(m.UiState.SelectedCollection() + delta)
	m.UiState.ClampSelection(len(m.AppState.Collections()), len(m.currentTasks()))
}
