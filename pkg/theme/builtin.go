package theme

// registerBuiltins registers all built-in themes.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		nordTheme(),
	} {
		Register(t)
	}
}

// defaultTheme is the dark neutral theme with purple accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#d4d4d4",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		GaugeFilled:   "#4ec970",
		GaugeEmpty:    "#3e3e3e",
		GaugeImminent: "#e5c07b",

		HelpKey:  "#7C3AED",
		HelpDesc: "#6b6b6b",
	}
}

// gruvboxTheme is the warm retro Gruvbox palette.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#ebdbb2",

		StatusOK:    "#b8bb26",
		StatusWarn:  "#fabd2f",
		StatusError: "#fb4934",

		GaugeFilled:   "#b8bb26",
		GaugeEmpty:    "#504945",
		GaugeImminent: "#fabd2f",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// nordTheme is the cool arctic Nord palette.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Title:       "#eceff4",

		StatusOK:    "#a3be8c",
		StatusWarn:  "#ebcb8b",
		StatusError: "#bf616a",

		GaugeFilled:   "#a3be8c",
		GaugeEmpty:    "#3b4252",
		GaugeImminent: "#ebcb8b",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}
