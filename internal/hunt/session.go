package hunt

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrTargetAlreadySet  = errors.New("target already generated")
	ErrNoTarget          = errors.New("target not generated yet")
)

// Phase is the lifecycle stage of a guidance session.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseAwaitingPermission
	PhaseAwaitingFirstFix
	PhaseTargetGenerated
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPermission:
		return "awaiting-permission"
	case PhaseAwaitingFirstFix:
		return "awaiting-fix"
	case PhaseTargetGenerated:
		return "hunting"
	case PhaseTerminated:
		return "terminated"
	default:
		return "uninitialized"
	}
}

// next lists the legal forward moves. Terminated is reachable from any
// phase and handled separately.
var next = map[Phase]Phase{
	PhaseUninitialized:      PhaseAwaitingPermission,
	PhaseAwaitingPermission: PhaseAwaitingFirstFix,
	PhaseAwaitingFirstFix:   PhaseTargetGenerated,
}

// Session is one run of the Home screen: its phase and its one target.
type Session struct {
	ID     string
	phase  Phase
	target *geo.Coordinate
}

// NewSession creates a session in the Uninitialized phase.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Alive reports whether async completions may still touch the session.
func (s *Session) Alive() bool {
	return s.phase != PhaseTerminated
}

// Advance moves to the given phase if the move is legal.
func (s *Session) Advance(to Phase) error {
	if to == PhaseTerminated {
		s.phase = PhaseTerminated
		return nil
	}
	if want, ok := next[s.phase]; !ok || want != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.phase, to)
	}
	s.phase = to
	return nil
}

// PlaceTarget generates the target around origin and moves the session to
// TargetGenerated. It succeeds at most once per session. A target that falls
// off the map (origin at a pole) is rejected and the session keeps waiting.
func (s *Session) PlaceTarget(r *rand.Rand, origin geo.Coordinate, minRadius, maxRadius float64) (geo.Coordinate, error) {
	if s.target != nil {
		return *s.target, ErrTargetAlreadySet
	}
	if s.phase != PhaseAwaitingFirstFix {
		return geo.Coordinate{}, fmt.Errorf("%w: cannot place target while %s", ErrInvalidTransition, s.phase)
	}
	t := geo.GenerateTarget(r, origin, minRadius, maxRadius)
	if err := t.Validate(); err != nil {
		return geo.Coordinate{}, fmt.Errorf("place target around %s: %w", origin, err)
	}
	s.target = &t
	s.phase = PhaseTargetGenerated
	return t, nil
}

// Target returns the generated target.
func (s *Session) Target() (geo.Coordinate, error) {
	if s.target == nil {
		return geo.Coordinate{}, ErrNoTarget
	}
	return *s.target, nil
}
