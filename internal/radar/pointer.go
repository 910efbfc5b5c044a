package radar

import "time"

// Pointer animates the compass needle from one bearing to the next with
// linear easing over a fixed duration.
type Pointer struct {
	From     float64 // degrees
	To       float64 // degrees
	Start    time.Time
	Duration time.Duration
}

// NewPointer creates a pointer resting at 0 degrees (north).
func NewPointer(d time.Duration) *Pointer {
	return &Pointer{Duration: d}
}

// Retarget starts a new transition from the current angle to deg.
func (p *Pointer) Retarget(deg float64, now time.Time) {
	p.From = p.Degrees(now)
	p.To = deg
	p.Start = now
}

// Degrees returns the needle angle at now.
func (p *Pointer) Degrees(now time.Time) float64 {
	return p.From + (p.To-p.From)*p.Progress(now)
}

// Progress returns how far the transition is along, in [0, 1].
func (p *Pointer) Progress(now time.Time) float64 {
	if p.Duration <= 0 || p.Start.IsZero() {
		return 1
	}
	elapsed := now.Sub(p.Start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= p.Duration {
		return 1
	}
	return float64(elapsed) / float64(p.Duration)
}

// Animating reports whether the needle is still moving at now.
func (p *Pointer) Animating(now time.Time) bool {
	return p.Progress(now) < 1
}

// Radians returns the needle angle at now in radians [0, 2π).
func (p *Pointer) Radians(now time.Time) float64 {
	return NormalizeAngle(DegToRad(p.Degrees(now)))
}
