package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderCompassNeedle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		tip   string
	}{
		{"north", 0, "^"},
		{"east", math.Pi / 2, ">"},
		{"south", math.Pi, "v"},
		{"west", 3 * math.Pi / 2, "<"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderCompass(33, 11, tt.angle, 5, lipgloss.Color("#FF4500"))
			if out == "" {
				t.Fatal("empty compass")
			}
			if !strings.Contains(out, tt.tip) {
				t.Errorf("compass missing tip %q", tt.tip)
			}
			if got := strings.Count(out, "\n") + 1; got != 11 {
				t.Errorf("compass has %d lines, want 11", got)
			}
		})
	}
}

func TestRenderCompassTooSmall(t *testing.T) {
	if out := RenderCompass(4, 3, 0, 0, lipgloss.Color("#000000")); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderSparkline(t *testing.T) {
	if s := RenderSparkline(nil, 10); s != "" {
		t.Errorf("empty history rendered %q", s)
	}
	s := []rune(RenderSparkline([]int{50, 40, 30, 20, 10, 0}, 4))
	if len(s) != 4 {
		t.Fatalf("sparkline %q has %d cells, want 4", string(s), len(s))
	}
	if s[0] != '█' || s[3] != '▁' {
		t.Errorf("sparkline %q should fall from full to empty bars", string(s))
	}
}

func TestRenderGuidance(t *testing.T) {
	g := Guidance{
		Hint:       "Warm! Keep looking.",
		Background: lipgloss.Color("#FFD700"),
		HasFix:     true,
		HasSteps:   true,
		Steps:      30,
		Trail:      []int{40, 35, 30},
		Best:       30,
	}
	out := RenderGuidance(80, 30, g)
	for _, want := range []string{"Treasure Hunt", "Warm! Keep looking.", "Distance: 30 steps", "closest 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("guidance missing %q", want)
		}
	}
	if strings.Contains(out, "Waiting for GPS") {
		t.Error("waiting text shown with a fix")
	}

	out = RenderGuidance(80, 30, Guidance{Hint: "Getting location", Background: lipgloss.Color("#87CEFA")})
	if !strings.Contains(out, "Waiting for GPS") {
		t.Error("waiting text missing without a fix")
	}
	if strings.Contains(out, "Distance:") {
		t.Error("distance shown without steps")
	}
}

func TestPadLines(t *testing.T) {
	if got := PadLines("a\nb\nc", 2); got != "a\nb" {
		t.Errorf("clip = %q", got)
	}
	if got := PadLines("a", 3); got != "a\n\n" {
		t.Errorf("pad = %q", got)
	}
}

func TestBars(t *testing.T) {
	menu := RenderMenuBar(100, "simulator", true)
	if !strings.Contains(menu, "walk") || !strings.Contains(menu, "simulator") {
		t.Errorf("menu bar missing content: %q", menu)
	}
	status := RenderStatusBar(120, Status{Phase: "hunting", HasSteps: true, Steps: 12, Bearing: 90, Band: "warm", Session: "0123456789abcdef"})
	for _, want := range []string{"HUNTING", "Steps: 12", "090deg E", "01234567"} {
		if !strings.Contains(status, want) {
			t.Errorf("status bar missing %q: %q", want, status)
		}
	}
	if strings.Contains(status, "89abcdef") {
		t.Error("session id not shortened")
	}
}
