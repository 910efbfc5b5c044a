package hunt

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
)

var origin = geo.Coordinate{Latitude: -23.55052, Longitude: -46.633308}

// north returns a point the given number of meters north of origin.
func north(meters float64) geo.Coordinate {
	return geo.Offset(origin, meters, 0)
}

func TestClassifyBoundaries(t *testing.T) {
	p := config.DefaultPolicy()
	tests := []struct {
		steps int
		want  Band
	}{
		{0, BandHot},
		{9, BandHot},
		{10, BandWarm},
		{24, BandWarm},
		{25, BandLukewarm},
		{49, BandLukewarm},
		{50, BandCold},
		{500, BandCold},
	}
	for _, tt := range tests {
		if got := Classify(tt.steps, p); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.steps, got, tt.want)
		}
	}
}

func TestBandPresentation(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range []Band{BandHot, BandWarm, BandLukewarm, BandCold} {
		if b.Hint() == "" || b.Color() == "" {
			t.Errorf("%s has empty hint or color", b)
		}
		if seen[b.Color()] {
			t.Errorf("%s reuses color %s", b, b.Color())
		}
		seen[b.Color()] = true
	}
}

func TestApplyFirstEventAccepted(t *testing.T) {
	p := config.DefaultPolicy()
	now := time.Unix(1000, 0)

	var s ThrottleState
	s, u := s.Apply(now, origin, north(4.2), p)
	if !u.Accepted || !u.Significant {
		t.Fatalf("first event: %+v", u)
	}
	if u.Steps != 5 {
		t.Errorf("steps = %d, want 5", u.Steps)
	}
	if u.Band != BandHot || !u.PlaySound {
		t.Errorf("band = %s, sound = %v; want hot with sound", u.Band, u.PlaySound)
	}
	if !s.HasSteps || s.LastSteps != 5 || !s.LastUIUpdate.Equal(now) {
		t.Errorf("state not recorded: %+v", s)
	}
}

func TestApplyUIThrottle(t *testing.T) {
	p := config.DefaultPolicy()
	target := north(0)
	now := time.Unix(1000, 0)

	var s ThrottleState
	s, _ = s.Apply(now, north(60), target, p)

	// A huge jump inside the window is still dropped.
	before := s
	s, u := s.Apply(now.Add(999*time.Millisecond), north(2), target, p)
	if u.Accepted {
		t.Fatalf("event inside throttle window accepted: %+v", u)
	}
	if s != before {
		t.Errorf("dropped event changed state: %+v -> %+v", before, s)
	}

	_, u = s.Apply(now.Add(1000*time.Millisecond), north(2), target, p)
	if !u.Accepted || !u.Significant || u.Band != BandHot {
		t.Errorf("event after window: %+v", u)
	}
}

func TestApplyNoiseGate(t *testing.T) {
	p := config.DefaultPolicy()
	target := north(0)
	now := time.Unix(1000, 0)

	var s ThrottleState
	s, first := s.Apply(now, north(24.4), target, p) // 30 steps
	if first.Steps != 30 {
		t.Fatalf("steps = %d, want 30", first.Steps)
	}

	// 28 steps: difference of 2 is noise.
	now = now.Add(2 * time.Second)
	s, u := s.Apply(now, north(22.5), target, p)
	if !u.Accepted || u.Significant {
		t.Fatalf("expected accepted but insignificant update: %+v", u)
	}
	if u.PlaySound {
		t.Error("noise-gated update requested sound")
	}
	if s.LastSteps != 30 {
		t.Errorf("noise-gated update recorded steps %d", s.LastSteps)
	}
	if !s.LastUIUpdate.Equal(now) {
		t.Error("noise-gated update should still consume the UI window")
	}

	// 27 steps: difference of 3 passes.
	now = now.Add(2 * time.Second)
	s, u = s.Apply(now, north(21.7), target, p)
	if !u.Significant || u.Steps != 27 || s.LastSteps != 27 {
		t.Errorf("expected significant update to 27 steps: %+v state %+v", u, s)
	}
}

func TestApplyBearingAlwaysRecomputed(t *testing.T) {
	p := config.DefaultPolicy()
	now := time.Unix(1000, 0)
	target := north(20)

	var s ThrottleState
	s, _ = s.Apply(now, origin, target, p)

	// Same distance from the target, opposite side: steps unchanged but
	// bearing swings around.
	other := geo.Offset(target, 20, 0)
	_, u := s.Apply(now.Add(2*time.Second), other, target, p)
	if u.Significant {
		t.Fatalf("same distance should be noise: %+v", u)
	}
	if u.Bearing < 179 || u.Bearing > 181 {
		t.Errorf("bearing = %v, want ~180", u.Bearing)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	if s.ID == "" {
		t.Fatal("session has no ID")
	}
	if s.Phase() != PhaseUninitialized || !s.Alive() {
		t.Fatalf("new session phase %s", s.Phase())
	}
	if _, err := s.Target(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Target before placement = %v", err)
	}

	if err := s.Advance(PhaseAwaitingFirstFix); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("skip to AwaitingFirstFix = %v", err)
	}
	if err := s.Advance(PhaseAwaitingPermission); err != nil {
		t.Fatal(err)
	}
	r := rand.New(rand.NewSource(1))
	if _, err := s.PlaceTarget(r, origin, 3, 10); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("PlaceTarget before permission = %v", err)
	}
	if err := s.Advance(PhaseAwaitingFirstFix); err != nil {
		t.Fatal(err)
	}

	target, err := s.PlaceTarget(r, origin, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseTargetGenerated {
		t.Errorf("phase = %s", s.Phase())
	}

	again, err := s.PlaceTarget(r, north(100), 3, 10)
	if !errors.Is(err, ErrTargetAlreadySet) {
		t.Errorf("second PlaceTarget = %v", err)
	}
	if again != target {
		t.Errorf("target changed from %v to %v", target, again)
	}

	if err := s.Advance(PhaseTerminated); err != nil {
		t.Fatal(err)
	}
	if s.Alive() {
		t.Error("terminated session is alive")
	}
}

func TestSessionDeniedGoesStraightToTerminated(t *testing.T) {
	s := NewSession()
	_ = s.Advance(PhaseAwaitingPermission)
	if err := s.Advance(PhaseTerminated); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(PhaseAwaitingFirstFix); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("leaving Terminated = %v", err)
	}
}

func TestSessionRejectsTargetOffTheMap(t *testing.T) {
	s := NewSession()
	_ = s.Advance(PhaseAwaitingPermission)
	_ = s.Advance(PhaseAwaitingFirstFix)
	r := rand.New(rand.NewSource(1))

	pole := geo.Coordinate{Latitude: 90, Longitude: 0}
	if _, err := s.PlaceTarget(r, pole, 3, 10); !errors.Is(err, geo.ErrInvalidCoordinate) {
		t.Fatalf("PlaceTarget at the pole = %v", err)
	}
	if s.Phase() != PhaseAwaitingFirstFix {
		t.Errorf("phase = %s, want awaiting fix", s.Phase())
	}
	if _, err := s.Target(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Target = %v", err)
	}

	target, err := s.PlaceTarget(r, origin, 3, 10)
	if err != nil {
		t.Fatalf("retry from a usable fix: %v", err)
	}
	if err := target.Validate(); err != nil {
		t.Error(err)
	}
}

func TestTrail(t *testing.T) {
	tr := NewTrail(3)
	if _, ok := tr.Best(); ok || tr.Steps() != nil {
		t.Fatal("empty trail reports readings")
	}
	for _, s := range []int{40, 12, 30, 25} {
		tr.Record(s)
	}
	got := tr.Steps()
	want := []int{12, 30, 25}
	if len(got) != len(want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("steps = %v, want %v", got, want)
		}
	}

	tr.Record(50)
	if best, ok := tr.Best(); !ok || best != 12 {
		t.Errorf("best = %d, %v; want 12 after it scrolled out", best, ok)
	}

	got[0] = -1
	if tr.Steps()[0] == -1 {
		t.Error("Steps exposes internal storage")
	}
}
