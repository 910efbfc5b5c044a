package hunt

import "github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"

// Band is a coarse proximity category derived from the step distance.
type Band int

const (
	BandCold Band = iota
	BandLukewarm
	BandWarm
	BandHot
)

func (b Band) String() string {
	switch b {
	case BandHot:
		return "hot"
	case BandWarm:
		return "warm"
	case BandLukewarm:
		return "lukewarm"
	default:
		return "cold"
	}
}

// Hint returns the fixed message shown for the band.
func (b Band) Hint() string {
	switch b {
	case BandHot:
		return "Very hot! You're almost there!"
	case BandWarm:
		return "Hot! You're close!"
	case BandLukewarm:
		return "Warm! Keep looking."
	default:
		return "Cold! You're far from the treasure."
	}
}

// Color returns the background color for the band.
func (b Band) Color() string {
	switch b {
	case BandHot:
		return "#FF4500"
	case BandWarm:
		return "#FF8C00"
	case BandLukewarm:
		return "#FFD700"
	default:
		return "#87CEFA"
	}
}

// Classify maps a step distance to its band.
func Classify(steps int, p config.Policy) Band {
	switch {
	case steps < p.HotSteps:
		return BandHot
	case steps < p.WarmSteps:
		return BandWarm
	case steps < p.LukewarmSteps:
		return BandLukewarm
	default:
		return BandCold
	}
}
