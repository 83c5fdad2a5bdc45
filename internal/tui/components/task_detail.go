package components

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tasknest/internal/models"
)

// MarkdownRenderer renders task content as markdown, rebuilding the
// glamour renderer only when the width changes
type MarkdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// Render renders md wrapped to width. On renderer failure the raw text is returned.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if r.renderer == nil || r.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(max(width, 10)),
		)
		if err != nil {
			slog.Error("failed to create markdown renderer", "error", err)
			return md
		}
		r.renderer = renderer
		r.width = width
	}

	out, err := r.renderer.Render(md)
	if err != nil {
		slog.Error("failed to render markdown", "error", err)
		return md
	}
	return strings.Trim(out, "\n")
}

// RenderTaskDetail renders the selected task's content and dates
func RenderTaskDetail(r *MarkdownRenderer, t *models.Task, width, height int) string {
	if t == nil {
		return PanelStyle("").Width(width).Height(height).Render("")
	}

	meta := "Créée le " + FormatLongDate(t.CreatedAt)
	if t.ExpiresAt != nil {
		meta += " · expire le " + FormatLongDate(*t.ExpiresAt)
	}

	body := r.Render(t.Content, width-4)
	return PanelStyle("").
		Width(width).
		Height(height).
		Render(SubtleStyle().Render(meta) + "\n" + body)
}
