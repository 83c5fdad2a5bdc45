// Package components provides reusable UI components and styles.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/tui/theme"
)

// TitleStyle defines the appearance of panel titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Title)).Bold(true)
}

// SubtleStyle defines muted text
func SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

// PanelStyle is a rounded panel; an empty border color uses the theme border
func PanelStyle(border string) lipgloss.Style {
	if border == "" {
		border = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// RenderStatusBar renders the help line on the left and the app name on the right
func RenderStatusBar(help string, width int) string {
	right := SubtleStyle().Render("tasknest")
	gap := max(width-lipgloss.Width(help)-lipgloss.Width(right), 1)
	return help + lipgloss.NewStyle().Width(gap).Render("") + right
}
