// Package dialogs holds the two form shells of the TUI: the create-task
// dialog and the edit-collection sheet. Each owns its form state and
// workflow and reports open changes to the root model.
package dialogs

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/form"
	"github.com/thenoetrevino/tasknest/internal/tui/theme"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

// Deps are the collaborators shared by every dialog
type Deps struct {
	Ctx       context.Context
	Notifier  workflow.Notifier
	Refresher workflow.Refresher
	Logger    *slog.Logger
	Theme     huh.Theme
	SaveKey   string
}

func (d Deps) context() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

// applyTheme sets the theme when one is configured
func applyTheme(f *huh.Form, t huh.Theme) *huh.Form {
	if t == nil {
		return f
	}
	return f.WithTheme(t)
}

// renderFieldErrors lists the recorded errors of the given fields, in order
func renderFieldErrors(errs form.Errors, fields ...string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
	var lines []string
	for _, name := range fields {
		if err := errs.Field(name); err != nil {
			lines = append(lines, style.Render("* "+err.Error()))
		}
	}
	return strings.Join(lines, "\n")
}

func isCancel(key string) bool {
	return key == "esc" || key == "ctrl+c"
}
