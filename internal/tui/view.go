package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/tui/components"
	"github.com/thenoetrevino/tasknest/internal/tui/layers"
	"github.com/thenoetrevino/tasknest/internal/tui/state"
)

const (
	sidebarWidth     = 28
	detailMinScreenW = 90
)

// View renders the board with the open dialog and the toasts layered on top.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Chargement..."
		return view
	}

	width, height := m.UiState.Width(), m.UiState.Height()
	stack := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBoard())}

	switch m.UiState.Mode() {
	case state.HelpMode:
		stack = appendLayer(stack, m.renderHelpLayer())
	case state.CreateTaskMode:
		stack = appendLayer(stack, m.CreateTask.Layer(width, height))
	case state.EditCollectionMode:
		stack = appendLayer(stack, m.EditCollection.Layer(width))
	}

	stack = append(stack, m.Notifications.Layers(width, height)...)

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

func appendLayer(stack []*lipgloss.Layer, l *lipgloss.Layer) []*lipgloss.Layer {
	if l == nil {
		return stack
	}
	return append(stack, l)
}

// renderBoard lays out the sidebar, the task list, the detail pane and the status bar
func (m Model) renderBoard() string {
	width := m.UiState.Width()
	height := m.UiState.ContentHeight()
	focus := m.UiState.Focus()

	sidebar := components.RenderCollectionList(
		m.AppState.Collections(),
		m.UiState.SelectedCollection(),
		sidebarWidth,
		height,
		focus == state.FocusCollections,
	)

	rest := max(width-sidebarWidth, 20)
	listWidth, detailWidth := rest, 0
	if width >= detailMinScreenW {
		listWidth = rest * 55 / 100
		detailWidth = rest - listWidth
	}

	collection := m.currentCollection()
	props := components.TaskListProps{
		Tasks:    m.currentTasks(),
		Selected: m.UiState.SelectedTask(),
		Width:    listWidth,
		Height:   height,
		Focused:  focus == state.FocusTasks,
		Now:      m.App.Now(),
	}
	if collection != nil {
		props.Collection = collection.Collection
	}

	panels := []string{sidebar, components.RenderTaskList(props)}
	if detailWidth > 0 {
		panels = append(panels, components.RenderTaskDetail(m.markdown, m.currentTask(), detailWidth, height))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	status := components.RenderStatusBar(m.help.ShortHelpView(m.keys.ShortHelp()), width)
	return lipgloss.JoinVertical(lipgloss.Left, board, status)
}

// renderHelpLayer renders the keyboard shortcuts as a centered layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	content := components.TitleStyle().Render("Raccourcis") + "\n\n" + m.help.View(m.keys)
	box := components.PanelStyle("").Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
