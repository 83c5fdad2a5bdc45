package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasknest/internal/models"
	"github.com/thenoetrevino/tasknest/internal/palette"
	"github.com/thenoetrevino/tasknest/internal/tui/theme"
)

// TaskListProps holds everything RenderTaskList needs
type TaskListProps struct {
	Collection *models.Collection
	Tasks      []*models.Task
	Selected   int
	Width      int
	Height     int
	Focused    bool
	Now        time.Time
}

// RenderTaskList renders the tasks of the selected collection
func RenderTaskList(p TaskListProps) string {
	var lines []string
	if p.Collection == nil {
		lines = append(lines, SubtleStyle().Render("Créez une collection pour commencer"))
	} else {
		lines = append(lines, palette.Lookup(p.Collection.Color).Render(p.Collection.Name), "")
		if len(p.Tasks) == 0 {
			lines = append(lines, SubtleStyle().Render("Aucune tâche dans cette collection"))
		}
		for i, t := range p.Tasks {
			lines = append(lines, renderTaskRow(t, i == p.Selected, p.Width-4, p.Now))
		}
	}

	border := theme.Border
	if p.Focused {
		border = theme.Highlight
	}
	return PanelStyle(border).
		Width(p.Width).
		Height(p.Height).
		Render(strings.Join(lines, "\n"))
}

func renderTaskRow(t *models.Task, selected bool, width int, now time.Time) string {
	check := "[ ]"
	if t.Done {
		check = "[x]"
	}

	expiry := ""
	expiryStyle := SubtleStyle()
	if t.ExpiresAt != nil {
		expiry = RelativeDay(*t.ExpiresAt, now)
		if t.Expired(now) && !t.Done {
			expiry = "expirée " + expiry
			expiryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Expired))
		}
	}

	firstLine, _, _ := strings.Cut(t.Content, "\n")
	content := truncate(firstLine, width-len([]rune(expiry))-6)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if t.Done {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Done)).Strikethrough(true)
	}
	left := check + " " + style.Render(content)
	right := expiryStyle.Render(expiry)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	row := left + strings.Repeat(" ", gap) + right
	if selected {
		return lipgloss.NewStyle().Background(lipgloss.Color(theme.SelectedBg)).Width(width).Render(row)
	}
	return row
}
