package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Border:     "#585858",
		SelectedBg: "#3A3A3A",
		Disabled:   "#585858",

		Title:   "#FFFFFF",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
		Done:    "#8A8A8A",
		Expired: "#FFFFFF",

		SuccessFg: "#FFFFFF",
		SuccessBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
