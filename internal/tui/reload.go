package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/models"
)

// dataLoadedMsg carries a fresh snapshot of the database
type dataLoadedMsg struct {
	collections []*models.CollectionSummary
	tasks       map[string][]*models.Task
	err         error
}

// taskChangedMsg reports the outcome of a toggle or delete
type taskChangedMsg struct {
	err error
}

// loadData reads every collection summary and the tasks of each collection
func (m Model) loadData() tea.Cmd {
	ctx, a := m.ctx, m.App
	return func() tea.Msg {
		return load(ctx, a)
	}
}

func load(ctx context.Context, a *app.App) dataLoadedMsg {
	collections, err := a.CollectionService.GetCollectionSummaries(ctx)
	if err != nil {
		return dataLoadedMsg{err: fmt.Errorf("loading collections: %w", err)}
	}

	tasks := make(map[string][]*models.Task, len(collections))
	for _, c := range collections {
		list, err := a.TaskService.GetTasksByCollection(ctx, c.ID)
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("loading tasks for collection %s: %w", c.ID, err)}
		}
		tasks[c.ID] = list
	}

	return dataLoadedMsg{collections: collections, tasks: tasks}
}

// applyData swaps in a loaded snapshot, keeping the selected collection when it still exists
func (m *Model) applyData(msg dataLoadedMsg) {
	var selectedID string
	if c := m.currentCollection(); c != nil {
		selectedID = c.ID
	}

	m.AppState.Set(msg.collections, msg.tasks)

	if i := m.AppState.IndexOf(selectedID); i >= 0 {
		m.UiState.SetSelectedCollection(i)
	}
	m.UiState.ClampSelection(len(m.AppState.Collections()), len(m.currentTasks()))
}

// setTaskDone flips the done flag of t
func (m Model) setTaskDone(t *models.Task) tea.Cmd {
	ctx, svc := m.ctx, m.App.TaskService
	id, done := t.ID, !t.Done
	return func() tea.Msg {
		return taskChangedMsg{err: svc.SetTaskDone(ctx, id, done)}
	}
}

// deleteTask removes t
func (m Model) deleteTask(t *models.Task) tea.Cmd {
	ctx, svc := m.ctx, m.App.TaskService
	id := t.ID
	return func() tea.Msg {
		return taskChangedMsg{err: svc.DeleteTask(ctx, id)}
	}
}
