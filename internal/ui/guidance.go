package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Guidance is everything the guidance panel shows.
type Guidance struct {
	Hint       string
	Background lipgloss.Color
	HasFix     bool
	HasSteps   bool
	Steps      int
	Needle     float64 // radians
	Trail      []int
	Best       int // closest reading so far; shown when HasSteps
}

// RenderGuidance renders the centered guidance panel: title, hint,
// distance, compass and step history.
func RenderGuidance(width, height int, g Guidance) string {
	bg := g.Background
	text := StyleText.Background(bg).Width(width)
	lines := []string{
		StyleTitle.Background(bg).Render("Treasure Hunt"),
		text.Render(g.Hint),
	}

	if g.HasSteps {
		lines = append(lines, text.Render(fmt.Sprintf("Distance: %d steps", g.Steps)), "")

		compassH := height - len(lines) - 4
		if compassH > 15 {
			compassH = 15
		}
		compassW := compassH * 3
		if compassW > width {
			compassW = width
		}
		if c := RenderCompass(compassW, compassH, g.Needle, g.Steps, bg); c != "" {
			lines = append(lines, c)
		}

		if spark := RenderSparkline(g.Trail, min(width-16, 48)); spark != "" {
			spark += fmt.Sprintf("  closest %d", g.Best)
			lines = append(lines, "", StyleHelp.Background(bg).Render(spark))
		}
	}

	if !g.HasFix {
		lines = append(lines, "", text.Render("Waiting for GPS... (enable location on the device)"))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// PadLines clips or pads s to exactly n lines.
func PadLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
