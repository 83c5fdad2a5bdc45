package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	CreateTaskMode                 // Create-task dialog open
	EditCollectionMode             // Edit-collection sheet open
	HelpMode                       // Full help overlay
)

// Focus identifies the panel receiving navigation keys
type Focus int

const (
	FocusCollections Focus = iota
	FocusTasks
)

// UIState manages the user interface state: selection, terminal
// dimensions, the current interaction mode and pending reloads.
type UIState struct {
	selectedCollection int
	selectedTask       int
	focus              Focus

	width  int
	height int

	mode Mode

	// reloadRequested is set by workflows and consumed by the root model
	reloadRequested bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedCollection returns the index of the selected collection.
func (s *UIState) SelectedCollection() int {
	return s.selectedCollection
}

// SetSelectedCollection updates the selected collection and resets the task selection.
func (s *UIState) SetSelectedCollection(index int) {
	if index != s.selectedCollection {
		s.selectedTask = 0
	}
	s.selectedCollection = index
}

// SelectedTask returns the index of the selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Focus returns the focused panel.
func (s *UIState) Focus() Focus {
	return s.focus
}

// ToggleFocus switches between the collections and tasks panels.
func (s *UIState) ToggleFocus() {
	if s.focus == FocusCollections {
		s.focus = FocusTasks
	} else {
		s.focus = FocusCollections
	}
}

// SetFocus focuses a panel.
func (s *UIState) SetFocus(f Focus) {
	s.focus = f
}

// ClampSelection keeps both selections within the given list lengths.
func (s *UIState) ClampSelection(collections, tasks int) {
	s.selectedCollection = clampIndex(s.selectedCollection, collections)
	s.selectedTask = clampIndex(s.selectedTask, tasks)
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for panels above the status bar,
// with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 1
	return max(s.height-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// RequestReload marks the displayed data stale.
func (s *UIState) RequestReload() {
	s.reloadRequested = true
}

// ConsumeReload reports and clears a pending reload request.
func (s *UIState) ConsumeReload() bool {
	requested := s.reloadRequested
	s.reloadRequested = false
	return requested
}
