package palette

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/models"
)

func TestLookupIsTotalOverPalette(t *testing.T) {
	for _, tag := range models.AllColorTags() {
		g, ok := LookupOK(tag)
		assert.True(t, ok, "tag %q missing from palette", tag)
		assert.NotEmpty(t, g.From)
		assert.NotEmpty(t, g.To)
	}
}

func TestLookupUnknownFallsBackToNeutral(t *testing.T) {
	g, ok := LookupOK("chartreuse")
	assert.False(t, ok)
	assert.Equal(t, Neutral, g)
	assert.Equal(t, Neutral, Lookup("chartreuse"))
}

func TestStops(t *testing.T) {
	sunset := Lookup(models.ColorSunset)

	stops := sunset.Stops(5)
	require.Len(t, stops, 5)
	assert.True(t, strings.EqualFold(stops[0], sunset.From), "first stop %s", stops[0])
	assert.True(t, strings.EqualFold(stops[4], sunset.To), "last stop %s", stops[4])

	assert.Nil(t, sunset.Stops(0))
	assert.Len(t, sunset.Stops(1), 1)
}

func TestStopsThroughVia(t *testing.T) {
	candy := Lookup(models.ColorCandy)

	stops := candy.Stops(3)
	require.Len(t, stops, 3)
	assert.True(t, strings.EqualFold(stops[1], candy.Via), "middle stop %s", stops[1])
}

func TestFillKeepsWidth(t *testing.T) {
	bar := Lookup(models.ColorSnowflake).Fill("Confirmer", 20)
	assert.Equal(t, 20, lipgloss.Width(bar))

	// Text wider than the requested width is never truncated
	bar = Lookup(models.ColorSnowflake).Fill("Confirmer", 3)
	assert.Equal(t, len("Confirmer"), lipgloss.Width(bar))
}

func TestRenderKeepsText(t *testing.T) {
	out := Lookup(models.ColorPoppy).Render("Perso")
	assert.Equal(t, 5, lipgloss.Width(out))
	assert.Empty(t, Lookup(models.ColorPoppy).Render(""))
}
