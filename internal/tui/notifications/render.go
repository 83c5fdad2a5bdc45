package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// MaxWidth bounds the width of a toast, border included
const MaxWidth = 44

// Render renders a toast with its title on the first line and the
// description wrapped below it
func Render(t Toast) string {
	style := t.Severity.style()
	inner := MaxWidth - 4 // border + padding

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Render(style.icon + " " + t.Title)

	content := header
	if t.Description != "" {
		body := lipgloss.NewStyle().
			Foreground(lipgloss.Color(style.foreground)).
			Render(wordwrap.String(t.Description, inner))
		content = lipgloss.JoinVertical(lipgloss.Left, header, body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		MaxWidth(MaxWidth).
		Render(content)
}
