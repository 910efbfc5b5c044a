package location

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
)

const (
	rmcValid  = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A"
	rmcValid2 = "$GPRMC,123530,A,4807.138,N,01131.000,E,022.4,084.4,230394,003.1,W*60"
	rmcVoid   = "$GPRMC,123520,V,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*77"
	ggaValid  = "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	ggaNoFix  = "$GPGGA,123521,4807.040,N,01131.010,E,0,00,,,M,,M,,*57"
)

var munich = geo.Coordinate{Latitude: 48.1173, Longitude: 11.516666666666667}

func near(a, b geo.Coordinate) bool {
	return geo.DistanceMeters(a, b) < 0.5
}

func TestParseFix(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
	}{
		{"rmc valid", rmcValid, true},
		{"rmc void", rmcVoid, false},
		{"gga valid", ggaValid, true},
		{"gga no fix", ggaNoFix, false},
		{"bad checksum", strings.Replace(rmcValid, "*6A", "*00", 1), false},
		{"garbage", "hello", false},
		{"blank", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := parseFix(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseFix ok = %v, want %v", ok, tt.ok)
			}
			if ok && !near(c, munich) {
				t.Errorf("parsed %v, want ~%v", c, munich)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	f := NewFilter(WatchOptions{MinDistance: 1, MinInterval: 2 * time.Second})
	t0 := time.Unix(100, 0)

	if !f.Accept(Fix{Coordinate: munich, At: t0}) {
		t.Fatal("first fix rejected")
	}
	far := geo.Offset(munich, 5, 0)
	if f.Accept(Fix{Coordinate: far, At: t0.Add(time.Second)}) {
		t.Error("fix inside min interval accepted")
	}
	if f.Accept(Fix{Coordinate: geo.Offset(munich, 0.5, 0), At: t0.Add(3 * time.Second)}) {
		t.Error("fix under min distance accepted")
	}
	if !f.Accept(Fix{Coordinate: far, At: t0.Add(3 * time.Second)}) {
		t.Error("valid fix rejected")
	}
}

func TestWatchOptionsFrom(t *testing.T) {
	o := WatchOptionsFrom(config.DefaultPolicy())
	if !o.HighAccuracy || o.MinDistance != 1 || o.MinInterval != 2*time.Second {
		t.Errorf("options = %+v", o)
	}
}

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.nmea")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\r\n")+"\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNMEACurrentPosition(t *testing.T) {
	n := NewNMEA(writeLog(t, rmcVoid, ggaNoFix, rmcValid), 0)
	c, err := n.CurrentPosition(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if !near(c, munich) {
		t.Errorf("position %v, want ~%v", c, munich)
	}
}

func TestNMEACurrentPositionNoFix(t *testing.T) {
	n := NewNMEA(writeLog(t, rmcVoid, ggaNoFix), 0)
	if _, err := n.CurrentPosition(context.Background(), true); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestNMEAMissingDevice(t *testing.T) {
	n := NewNMEA(filepath.Join(t.TempDir(), "ttyNOPE"), 0)
	p, err := n.RequestPermission(context.Background())
	if err != nil || p != PermissionGranted {
		t.Errorf("permission = %v, %v; want granted", p, err)
	}
	if _, err := n.CurrentPosition(context.Background(), true); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CurrentPosition err = %v, want ErrUnavailable", err)
	}
	if _, err := n.Watch(WatchOptions{}, func(Fix) {}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Watch err = %v, want ErrUnavailable", err)
	}
}

func TestNMEAPermissionDenied(t *testing.T) {
	n := NewNMEA("/dev/ttyACM0", 0)
	n.Open = func(name string) (io.ReadCloser, error) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	p, err := n.RequestPermission(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if p != PermissionDenied {
		t.Errorf("permission = %v, want denied", p)
	}
}

func TestNMEAWatch(t *testing.T) {
	n := NewNMEA(writeLog(t, rmcValid, rmcVoid, rmcValid2), time.Millisecond)
	got := make(chan Fix, 4)
	sub, err := n.Watch(WatchOptions{}, func(f Fix) { got <- f })
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Cancel()

	var fixes []Fix
	timeout := time.After(2 * time.Second)
	for len(fixes) < 2 {
		select {
		case f := <-got:
			fixes = append(fixes, f)
		case <-timeout:
			t.Fatalf("got %d fixes before timeout", len(fixes))
		}
	}
	if !near(fixes[0].Coordinate, munich) {
		t.Errorf("first fix %v", fixes[0].Coordinate)
	}
	if d := geo.DistanceMeters(fixes[0].Coordinate, fixes[1].Coordinate); math.Abs(d-185.2) > 1 {
		t.Errorf("fixes %.1fm apart, want ~185.2m (0.1 arc minute)", d)
	}

	if err := sub.Cancel(); err != nil {
		t.Errorf("Cancel: %v", err)
	}
	if err := sub.Cancel(); err != nil {
		t.Errorf("second Cancel: %v", err)
	}
}

func TestSimulator(t *testing.T) {
	origin := geo.Coordinate{Latitude: -23.55052, Longitude: -46.633308}
	sim := NewSimulator(origin, 0.6, false, 1)
	sim.FixDelay = 0
	sim.Tick = 5 * time.Millisecond

	p, err := sim.RequestPermission(context.Background())
	if err != nil || p != PermissionGranted {
		t.Fatalf("permission = %v, %v", p, err)
	}

	c, err := sim.CurrentPosition(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if d := geo.DistanceMeters(origin, c); d > 2 {
		t.Errorf("jittered fix %.2fm from origin", d)
	}

	sim.Move(10, 0)
	if d := geo.DistanceMeters(origin, sim.Position()); math.Abs(d-10) > 0.01 {
		t.Errorf("moved %.3fm, want 10", d)
	}

	got := make(chan Fix, 16)
	sub, err := sim.Watch(WatchOptions{}, func(f Fix) {
		select {
		case got <- f:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	select {
	case f := <-got:
		if d := geo.DistanceMeters(sim.Position(), f.Coordinate); d > 2 {
			t.Errorf("watched fix %.2fm from true position", d)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no fix from watch")
	}
	if err := sub.Cancel(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-sub.(*watchSub).Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watch goroutine did not exit")
	}
}

func TestSimulatorDenied(t *testing.T) {
	sim := NewSimulator(munich, 0, true, 1)
	p, err := sim.RequestPermission(context.Background())
	if err != nil || p != PermissionDenied {
		t.Errorf("permission = %v, %v; want denied", p, err)
	}
	if _, err := sim.Watch(WatchOptions{}, func(Fix) {}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("Watch err = %v", err)
	}
}

func TestSimulatorCancelledFetch(t *testing.T) {
	sim := NewSimulator(munich, 0, false, 1)
	sim.FixDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sim.CurrentPosition(ctx, true); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
