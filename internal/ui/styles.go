package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorGold       = lipgloss.Color("#FFD700")
	ColorSplashBg   = lipgloss.Color("#222222")
	ColorBarBg      = lipgloss.Color("#1A1A1A")
	ColorDim        = lipgloss.Color("#7A7A7A")
	ColorError      = lipgloss.Color("#FF3300")
	ColorCompassDim = lipgloss.Color("#DDDDDD")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorWhite)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorWhite).
			Padding(0, 1)

	StyleStatusActive = lipgloss.NewStyle().
				Foreground(ColorGold).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			MarginBottom(1)

	StyleText = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Align(lipgloss.Center)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleSplashLogo = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)
)
