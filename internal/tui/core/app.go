// Package core is the Bubble Tea entry point of the TUI
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasknest/internal/app"
	"github.com/thenoetrevino/tasknest/internal/config"
	"github.com/thenoetrevino/tasknest/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// It keeps the latest Model so callers and tests can inspect it.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, a *app.App, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, a, cfg)
	return &App{model: &model}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update delegates to Model.Update and stores the result back
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.model.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View implements tea.Model
func (a *App) View() tea.View {
	return a.model.View()
}

// Model returns the underlying Model.
func (a *App) Model() *tui.Model {
	return a.model
}
