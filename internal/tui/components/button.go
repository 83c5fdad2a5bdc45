package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/tui/theme"
)

// RenderButton renders a full width button filled with the gradient.
// A disabled button is drawn flat and muted.
func RenderButton(label string, gradient palette.Gradient, width int, disabled bool) string {
	if disabled {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(theme.Disabled)).
			Render(label + "…")
	}
	return gradient.Fill(label, width)
}
