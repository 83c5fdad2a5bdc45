package colors

// Default returns the default color scheme (slate with a violet accent)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#8B5CF6",

		// UI elements
		Border:     "#475569",
		SelectedBg: "#334155",
		Disabled:   "#64748B",

		// Text
		Title:   "#A855F7",
		Subtle:  "#64748B",
		Normal:  "#E2E8F0",
		Done:    "#10B981",
		Expired: "#EF4444",

		// Notifications
		SuccessFg: "#D1FAE5",
		SuccessBg: "#047857",
		ErrorFg:   "#FEE2E2",
		ErrorBg:   "#B91C1C",
	}
}
