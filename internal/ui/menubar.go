package ui

import (
	"fmt"
	"strings"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar. steerable adds the movement keys
// shown in demo mode.
func RenderMenuBar(width int, source string, steerable bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Q", "uit"},
	}
	if steerable {
		keys = append([]struct{ key, label string }{{"←↑↓→", " walk"}}, keys...)
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	left := StyleMenuKey.Render(title) + menu
	right := StyleMenuLabel.Render("GPS: "+source) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
