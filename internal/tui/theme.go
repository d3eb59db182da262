package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color set the styles are built from.
type Theme struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Bg      lipgloss.Color
	Surface lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warn    lipgloss.Color
}

var darkTheme = Theme{
	Text:    "#cdd6f4",
	Muted:   "#a6adc8",
	Border:  "#585b70",
	Bg:      "#1e1e2e",
	Surface: "#313244",
	Accent:  "#89b4fa",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
	Warn:    "#f9e2af",
}

var lightTheme = Theme{
	Text:    "#4c4f69",
	Muted:   "#6c6f85",
	Border:  "#acb0be",
	Bg:      "#eff1f5",
	Surface: "#ccd0da",
	Accent:  "#1e66f5",
	Success: "#40a02b",
	Error:   "#d20f39",
	Warn:    "#df8e1d",
}

func themeByName(name string) Theme {
	if name == "light" {
		return lightTheme
	}
	return darkTheme
}
