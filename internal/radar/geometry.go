package radar

import "math"

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// AngleDiff returns the shortest angular distance between two angles.
// Result is in [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Sector returns which of 8 compass sectors an angle (radians, 0=north,
// clockwise) falls in: 0=N, 1=NE, ... 7=NW.
func Sector(a float64) int {
	return int(math.Round(NormalizeAngle(a)/(math.Pi/4))) % 8
}

// CardinalName returns the 8-point compass name of a bearing in degrees.
func CardinalName(deg float64) string {
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	return dirs[Sector(DegToRad(deg))]
}
