package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayerEmpty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
	assert.Nil(t, CreateRightPanelLayer("", 80))
}

func TestCreateCenteredLayerPosition(t *testing.T) {
	layer := CreateCenteredLayer("abcd\nefgh", 20, 10)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 8, layer.GetX())
		assert.Equal(t, 4, layer.GetY())
	}
}

func TestCreateRightPanelLayerPosition(t *testing.T) {
	layer := CreateRightPanelLayer("abcd", 20)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 16, layer.GetX())
	}
}

func TestDialogWidths(t *testing.T) {
	assert.Equal(t, DialogMinWidth, DialogWidth(60))
	assert.Equal(t, DialogMaxWidth, DialogWidth(300))
	assert.Equal(t, 30, DialogWidth(30))
	assert.Equal(t, SheetMinWidth, SheetWidth(90))
}
