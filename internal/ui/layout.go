package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, a body filled with bg, and the
// status bar.
func ComposeLayout(menuBar, body, statusBar string, width, bodyHeight int, bg lipgloss.Color) string {
	middle := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(bg))
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// RenderSplash centers the logo on the splash background.
func RenderSplash(width, height int, logo string) string {
	content := lipgloss.NewStyle().
		Background(ColorSplashBg).
		Render(StyleSplashLogo.Background(ColorSplashBg).Render(logo))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(ColorSplashBg))
}
