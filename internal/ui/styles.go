package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorSecondary = lipgloss.Color("#87CEEB") // Sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for errors
	colorWarm      = lipgloss.Color("#FFA94D") // Orange for max temperature
	colorCool      = lipgloss.Color("#74C0FC") // Blue for min temperature
	colorRain      = lipgloss.Color("#66D9E8") // Cyan for precipitation
	colorMuted     = lipgloss.Color("#6C757D") // Gray

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Side panel (desktop); Width includes the padding
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	placeStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	maxTempStyle = lipgloss.NewStyle().Foreground(colorWarm)
	minTempStyle = lipgloss.NewStyle().Foreground(colorCool)
	rainStyle    = lipgloss.NewStyle().Foreground(colorRain)

	// Dropdown entries
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(colorPrimary).
				Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)
)
