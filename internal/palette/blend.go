package palette

import (
	"image/color"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Stops returns n hex colors evenly spread along the gradient
func (g Gradient) Stops(n int) []string {
	if n <= 0 {
		return nil
	}

	anchors := make([]colorful.Color, 0, 3)
	for _, hex := range g.stops() {
		c, err := colorful.Hex(hex)
		if err != nil {
			c, _ = colorful.Hex(Neutral.From)
		}
		anchors = append(anchors, c)
	}

	if n == 1 {
		return []string{anchors[0].Hex()}
	}

	out := make([]string, n)
	segments := float64(len(anchors) - 1)
	for i := range n {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(anchors)-1 {
			seg = len(anchors) - 2
		}
		out[i] = anchors[seg].BlendLuv(anchors[seg+1], pos-float64(seg)).Clamped().Hex()
	}
	return out
}

// Colors is Stops converted to terminal colors
func (g Gradient) Colors(n int) []color.Color {
	hexes := g.Stops(n)
	out := make([]color.Color, len(hexes))
	for i, hex := range hexes {
		out[i] = lipgloss.Color(hex)
	}
	return out
}
