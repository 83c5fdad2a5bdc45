// Package theme holds the active colors, initialized from the config theme
package theme

import "github.com/thenoetrevino/tasknest/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Border     string
	SelectedBg string
	Disabled   string
	Title      string
	Subtle     string
	Normal     string
	Done       string
	Expired    string
	SuccessFg  string
	SuccessBg  string
	ErrorFg    string
	ErrorBg    string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Border = colors.Border
	SelectedBg = colors.SelectedBg
	Disabled = colors.Disabled
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Done = colors.Done
	Expired = colors.Expired
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
