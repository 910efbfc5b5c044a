package location

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
)

// Simulator fakes a GPS receiver for demo mode. The walker stands still
// until moved; reported fixes wobble around the true position the way a
// phone GPS does.
type Simulator struct {
	// FixDelay is how long a one-shot fix takes to arrive.
	FixDelay time.Duration
	// Tick is the raw sample rate of a watch, before filtering.
	Tick time.Duration

	mu        sync.Mutex
	pos       geo.Coordinate
	jitter    float64 // meters
	phase     float64
	amplitude float64
	deny      bool
	rng       *rand.Rand
	start     time.Time
}

// NewSimulator creates a simulated receiver standing at origin.
func NewSimulator(origin geo.Coordinate, jitter float64, deny bool, seed int64) *Simulator {
	rng := rand.New(rand.NewSource(seed))
	return &Simulator{
		FixDelay:  400 * time.Millisecond,
		Tick:      250 * time.Millisecond,
		pos:       origin,
		jitter:    jitter,
		phase:     rng.Float64() * 2 * math.Pi,
		amplitude: jitter * (0.5 + rng.Float64()*0.5),
		deny:      deny,
		rng:       rng,
		start:     time.Now(),
	}
}

func (s *Simulator) Name() string { return "simulator" }

func (s *Simulator) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionDenied, err
	}
	if s.deny {
		return PermissionDenied, nil
	}
	return PermissionGranted, nil
}

func (s *Simulator) CurrentPosition(ctx context.Context, _ bool) (geo.Coordinate, error) {
	if s.deny {
		return geo.Coordinate{}, ErrPermissionDenied
	}
	select {
	case <-ctx.Done():
		return geo.Coordinate{}, ctx.Err()
	case <-time.After(s.FixDelay):
	}
	return s.sample(time.Now()), nil
}

func (s *Simulator) Watch(opts WatchOptions, onUpdate func(Fix)) (Subscription, error) {
	if s.deny {
		return nil, ErrPermissionDenied
	}
	ctx, cancel := context.WithCancel(context.Background())
	sub := newWatchSub(cancel, nil)
	filter := NewFilter(opts)

	go func() {
		defer close(sub.done)
		ticker := time.NewTicker(s.Tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				fix := Fix{Coordinate: s.sample(now), At: now}
				if filter.Accept(fix) {
					onUpdate(fix)
				}
			}
		}
	}()
	return sub, nil
}

// Move walks the simulated player by the given meters.
func (s *Simulator) Move(north, east float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = geo.Offset(s.pos, north, east)
}

// Position returns the true (noise free) position.
func (s *Simulator) Position() geo.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// sample returns the true position plus sinusoidal drift and random noise.
func (s *Simulator) sample(now time.Time) geo.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := now.Sub(s.start).Seconds()
	north := s.amplitude*math.Sin(t*0.5+s.phase) + (s.rng.Float64()-0.5)*s.jitter
	east := s.amplitude*math.Cos(t*0.3+s.phase) + (s.rng.Float64()-0.5)*s.jitter
	return geo.Offset(s.pos, north, east)
}
