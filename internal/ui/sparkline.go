package ui

import "strings"

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws the most recent width step readings as a one-line
// bar chart scaled between their own min and max. Fewer steps sit lower,
// so a falling line means the player is closing in.
func RenderSparkline(steps []int, width int) string {
	if len(steps) == 0 || width <= 0 {
		return ""
	}
	if len(steps) > width {
		steps = steps[len(steps)-width:]
	}

	lo, hi := steps[0], steps[0]
	for _, s := range steps[1:] {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	span := max(hi-lo, 1)
	top := len(sparkLevels) - 1

	var sb strings.Builder
	for _, s := range steps {
		sb.WriteRune(sparkLevels[(s-lo)*top/span])
	}
	return sb.String()
}
