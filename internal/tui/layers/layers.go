// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(DialogZ)
}

// CreateRightPanelLayer creates a layer flush with the right edge of the screen.
// Returns nil if content is empty.
func CreateRightPanelLayer(content string, screenWidth int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max(screenWidth-lipgloss.Width(content), 0)
	return lipgloss.NewLayer(content).X(x).Y(0).Z(DialogZ)
}

// DialogWidth returns the width of the centered create-task dialog
func DialogWidth(screenWidth int) int {
	return clamp(screenWidth/2, DialogMinWidth, DialogMaxWidth, screenWidth)
}

// SheetWidth returns the width of the right-side edit sheet
func SheetWidth(screenWidth int) int {
	return clamp(screenWidth/3, SheetMinWidth, SheetMaxWidth, screenWidth)
}

func clamp(v, lo, hi, limit int) int {
	v = min(max(v, lo), hi)
	return min(v, limit)
}
