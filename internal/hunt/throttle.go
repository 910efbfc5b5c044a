package hunt

import (
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
)

// ThrottleState tracks what the last accepted update looked like.
// It is a plain value: Apply returns the next state instead of mutating.
type ThrottleState struct {
	LastUIUpdate time.Time
	LastSteps    int
	HasSteps     bool
}

// Update is the outcome of feeding one position into the throttle.
type Update struct {
	// Accepted is false when the event arrived inside the UI throttle
	// window; nothing else in the Update is meaningful then.
	Accepted bool

	Meters float64
	Steps  int

	// Significant is false when the step change was under the noise gate.
	// Band and PlaySound are only set for significant updates.
	Significant bool
	Band        Band
	PlaySound   bool

	// Bearing is recomputed for every accepted event.
	Bearing float64
}

// Apply runs one raw position through the UI throttle, noise gate and
// band classification.
func (s ThrottleState) Apply(now time.Time, pos, target geo.Coordinate, p config.Policy) (ThrottleState, Update) {
	if !s.LastUIUpdate.IsZero() && now.Sub(s.LastUIUpdate) < p.UIThrottle {
		return s, Update{}
	}
	s.LastUIUpdate = now

	meters := geo.DistanceMeters(pos, target)
	u := Update{
		Accepted: true,
		Meters:   meters,
		Steps:    geo.Steps(meters, p.StepLength),
		Bearing:  geo.BearingDegrees(pos, target),
	}

	if s.HasSteps && abs(u.Steps-s.LastSteps) < p.NoiseGateSteps {
		return s, u
	}
	s.LastSteps = u.Steps
	s.HasSteps = true

	u.Significant = true
	u.Band = Classify(u.Steps, p)
	u.PlaySound = u.Band == BandHot
	return s, u
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
