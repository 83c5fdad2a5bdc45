// Package palette maps collection color tags to the gradients used to paint them.
package palette

import (
	"log/slog"

	"github.com/thenoetrevino/tasknest/internal/models"
)

// Gradient is a left-to-right color ramp. Via is optional.
type Gradient struct {
	From string
	Via  string
	To   string
}

// Neutral is used for tags that are not part of the palette
var Neutral = Gradient{From: "#94A3B8", To: "#475569"}

var gradients = map[models.ColorTag]Gradient{
	models.ColorSunset:    {From: "#EF4444", To: "#F97316"},
	models.ColorPoppy:     {From: "#FB7185", To: "#EF4444"},
	models.ColorRosebud:   {From: "#8B5CF6", To: "#A855F7"},
	models.ColorSnowflake: {From: "#818CF8", To: "#22D3EE"},
	models.ColorCandy:     {From: "#FACC15", Via: "#EC4899", To: "#EF4444"},
	models.ColorFirtree:   {From: "#10B981", To: "#064E3B"},
	models.ColorMetal:     {From: "#64748B", To: "#1E293B"},
	models.ColorPowder:    {From: "#DDD6FE", To: "#FBCFE8"},
}

// Lookup returns the gradient for tag, falling back to Neutral for unknown tags
func Lookup(tag models.ColorTag) Gradient {
	g, ok := LookupOK(tag)
	if !ok {
		slog.Debug("unknown collection color, using neutral gradient", "color", string(tag))
	}
	return g
}

// LookupOK is Lookup that also reports whether tag belongs to the palette
func LookupOK(tag models.ColorTag) (Gradient, bool) {
	g, ok := gradients[tag]
	if !ok {
		return Neutral, false
	}
	return g, true
}

func (g Gradient) stops() []string {
	if g.Via == "" {
		return []string{g.From, g.To}
	}
	return []string{g.From, g.Via, g.To}
}
