package ui

import (
	"fmt"
	"strings"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/radar"
	"github.com/charmbracelet/lipgloss"
)

// Status is what the bottom bar reports.
type Status struct {
	Phase    string
	Failed   bool
	Steps    int
	HasSteps bool
	Bearing  float64
	Band     string
	Session  string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st Status) string {
	phase := StyleStatusActive.Render("[" + strings.ToUpper(st.Phase) + "]")
	if st.Failed {
		phase = StyleStatusError.Render("[" + strings.ToUpper(st.Phase) + "]")
	}

	info := "  Steps: --  Bearing: --"
	if st.HasSteps {
		info = fmt.Sprintf("  Steps: %d  Bearing: %03.0fdeg %s  Band: %s",
			st.Steps, st.Bearing, radar.CardinalName(st.Bearing), st.Band)
	}
	session := st.Session
	if len(session) > 8 {
		session = session[:8]
	}
	info += "  Session: " + session

	content := phase + StyleStatusBar.Padding(0).Render(info)

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
