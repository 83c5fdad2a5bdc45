package notifications

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasknest/internal/workflow"
)

func TestNotifyQueuesToastAndTick(t *testing.T) {
	c := NewCenter(time.Second)

	c.Notify(workflow.KindSuccess, "Succès", "La tâche a été créée avec succès")

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, Success, c.Toasts()[0].Severity)
	assert.Equal(t, "Succès", c.Toasts()[0].Title)
	assert.NotNil(t, c.Drain())
	assert.Nil(t, c.Drain(), "ticks are handed out once")
}

func TestExpiredRemovesOnlyMatchingToast(t *testing.T) {
	c := NewCenter(time.Second)
	c.Notify(workflow.KindSuccess, "a", "")
	c.Notify(workflow.KindError, "b", "")

	first := c.Toasts()[0].ID
	assert.True(t, c.Update(ExpiredMsg{ID: first}))

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "b", c.Toasts()[0].Title)
	assert.Equal(t, Error, c.Toasts()[0].Severity)

	assert.False(t, c.Update("other"))
}

func TestToastStackIsBounded(t *testing.T) {
	c := NewCenter(time.Second)
	for range 8 {
		c.Notify(workflow.KindSuccess, "x", "")
	}
	assert.Len(t, c.Toasts(), 5)
}

func TestRenderWrapsDescription(t *testing.T) {
	out := Render(Toast{
		Severity:    Error,
		Title:       "Erreur",
		Description: "une erreur s'est produit, veuillez réessayer plus tard",
	})

	assert.Contains(t, out, "Erreur")
	assert.Contains(t, out, "réessayer")
	assert.Greater(t, strings.Count(out, "\n"), 2)
}

func TestLayersNeedScreenSize(t *testing.T) {
	c := NewCenter(time.Second)
	c.Notify(workflow.KindSuccess, "Succès", "")

	assert.Empty(t, c.Layers(0, 0))
	assert.Len(t, c.Layers(120, 40), 1)
}
