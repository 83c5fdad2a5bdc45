package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/tui/theme"
)

// RenderCollectionList renders the sidebar: one line per collection with its
// name painted in its gradient and its done/total counter.
func RenderCollectionList(collections []*models.CollectionSummary, selected int, width, height int, focused bool) string {
	lines := []string{TitleStyle().Render("Collections"), ""}

	if len(collections) == 0 {
		lines = append(lines, SubtleStyle().Render("Aucune collection"))
	}

	for i, c := range collections {
		marker := "  "
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Render("▌ ")
		}
		count := SubtleStyle().Render(fmt.Sprintf("%d/%d", c.DoneCount, c.TaskCount))
		name := palette.Lookup(c.Color).Render(truncate(c.Name, width-10))

		gap := max(width-lipgloss.Width(marker)-lipgloss.Width(name)-lipgloss.Width(count)-2, 1)
		lines = append(lines, marker+name+strings.Repeat(" ", gap)+count)
	}

	border := theme.Border
	if focused {
		border = theme.Highlight
	}
	return PanelStyle(border).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 1 || len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
