package colors

// Wave returns a Kanagawa Wave inspired color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: "#957FB8", // oniViolet

		// Semantic colors
		Create: "#98BB6C", // springGreen
		Edit:   "#7E9CD8", // crystalBlue
		Delete: "#FF5D62", // peachRed

		// UI element colors
		ColumnBorder:   "#54546D",
		CardBorder:     "#363646",
		CardBackground: "#2A2A37",
		SelectedBorder: "#7AA89F", // waveAqua2
		SelectedBg:     "#223249", // waveBlue1
		DragBorder:     "#DCA561", // autumnYellow

		// Text colors
		Title:  "#7E9CD8",
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Badge colors
		Success:   "#98BB6C",
		Warning:   "#FF9E3B",
		Danger:    "#E82424",
		Secondary: "#727169",

		// Notification colors
		InfoFg:    "#658594",
		InfoBg:    "#252535",
		WarningFg: "#FF9E3B",
		WarningBg: "#49443C",
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B",
	}
}
