// Package notifications renders toasts and owns their lifetime. A Center is
// created by the application root and injected into every form workflow.
package notifications

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// DefaultDuration is how long a toast stays on screen when none is configured
const DefaultDuration = 4 * time.Second

// Toast is a single notification
type Toast struct {
	ID          int
	Severity    Severity
	Title       string
	Description string
}

// ExpiredMsg removes the toast with the given ID
type ExpiredMsg struct {
	ID int
}

// Center stacks toasts in the top-right corner. It implements
// workflow.Notifier; the ticks that expire toasts are collected with Drain
// and returned from the host's Update.
type Center struct {
	toasts   []Toast
	pending  []tea.Cmd
	nextID   int
	duration time.Duration
	max      int
}

var _ workflow.Notifier = (*Center)(nil)

// NewCenter creates a notification center. A non-positive duration uses DefaultDuration.
func NewCenter(duration time.Duration) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{duration: duration, max: 5}
}

// Notify adds a toast and schedules its expiry
func (c *Center) Notify(kind workflow.Kind, title, description string) {
	c.nextID++
	id := c.nextID
	c.toasts = append(c.toasts, Toast{
		ID:          id,
		Severity:    severityOf(kind),
		Title:       title,
		Description: description,
	})
	if len(c.toasts) > c.max {
		c.toasts = c.toasts[len(c.toasts)-c.max:]
	}
	c.pending = append(c.pending, tea.Tick(c.duration, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	}))
}

// Drain returns the expiry ticks scheduled since the last call
func (c *Center) Drain() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	return tea.Batch(cmds...)
}

// Update handles ExpiredMsg and reports whether msg was consumed
func (c *Center) Update(msg tea.Msg) bool {
	expired, ok := msg.(ExpiredMsg)
	if !ok {
		return false
	}
	for i, t := range c.toasts {
		if t.ID == expired.ID {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			break
		}
	}
	return true
}

// Toasts returns the visible toasts, oldest first
func (c *Center) Toasts() []Toast {
	return c.toasts
}

// Layers creates floating layers for all active toasts, stacked vertically
// from the top-right corner of a screen of the given size.
func (c *Center) Layers(screenWidth, screenHeight int) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	if screenWidth == 0 {
		return layers
	}

	row := 0
	for _, t := range c.toasts {
		view := Render(t)
		height := lipgloss.Height(view)
		if row+height > screenHeight {
			break
		}

		col := max(screenWidth-lipgloss.Width(view)-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row).Z(10))
		row += height
	}

	return layers
}
