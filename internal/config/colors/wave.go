package colors

// kanagawa holds the Kanagawa palette entries used by Wave
var kanagawa = struct {
	sumiInk4, sumiInk6, waveBlue1 string
	fujiWhite, fujiGray, oniViolet string
	crystalBlue, springGreen      string
	samuraiRed, winterRed         string
	winterGreen, autumnGreen      string
}{
	sumiInk4:    "#2A2A37",
	sumiInk6:    "#54546D",
	waveBlue1:   "#223249",
	fujiWhite:   "#DCD7BA",
	fujiGray:    "#727169",
	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",
	springGreen: "#98BB6C",
	samuraiRed:  "#E82424",
	winterRed:   "#43242B",
	winterGreen: "#2B3328",
	autumnGreen: "#76946A",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: kanagawa.oniViolet,

		Border:     kanagawa.sumiInk6,
		SelectedBg: kanagawa.waveBlue1,
		Disabled:   kanagawa.sumiInk4,

		Title:   kanagawa.crystalBlue,
		Subtle:  kanagawa.fujiGray,
		Normal:  kanagawa.fujiWhite,
		Done:    kanagawa.autumnGreen,
		Expired: kanagawa.samuraiRed,

		SuccessFg: kanagawa.springGreen,
		SuccessBg: kanagawa.winterGreen,
		ErrorFg:   kanagawa.samuraiRed,
		ErrorBg:   kanagawa.winterRed,
	}
}
