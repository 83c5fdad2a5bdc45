package palette

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render paints the runes of text with the gradient as foreground
func (g Gradient) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	colors := g.Colors(len(runes))
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Bold(true).Render(string(r)))
	}
	return b.String()
}

// Fill renders a bar of the given width with the gradient as background
// and text centered on it in white
func (g Gradient) Fill(text string, width int) string {
	runes := []rune(text)
	width = max(width, len(runes))

	pad := width - len(runes)
	left := pad / 2
	cells := make([]rune, 0, width)
	for range left {
		cells = append(cells, ' ')
	}
	cells = append(cells, runes...)
	for len(cells) < width {
		cells = append(cells, ' ')
	}

	colors := g.Colors(width)
	fg := lipgloss.Color("#FFFFFF")
	var b strings.Builder
	for i, r := range cells {
		b.WriteString(lipgloss.NewStyle().
			Background(colors[i]).
			Foreground(fg).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}
