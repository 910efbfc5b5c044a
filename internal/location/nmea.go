package location

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
	nmea "github.com/adrianmo/go-nmea"
)

// NMEA reads NMEA-0183 sentences from a GPS serial device or a recorded
// log. Regular files are replayed at ReplayInterval per fix.
type NMEA struct {
	Path           string
	ReplayInterval time.Duration

	// Open is replaceable for tests.
	Open func(name string) (io.ReadCloser, error)
}

// NewNMEA creates a reader for path.
func NewNMEA(path string, replayInterval time.Duration) *NMEA {
	return &NMEA{
		Path:           path,
		ReplayInterval: replayInterval,
		Open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

func (n *NMEA) Name() string { return "nmea:" + n.Path }

// RequestPermission maps read access to the device onto a permission.
// A missing device is not a denial; it surfaces later as unavailable.
func (n *NMEA) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionDenied, err
	}
	rc, err := n.Open(n.Path)
	if errors.Is(err, os.ErrPermission) {
		return PermissionDenied, nil
	}
	if err == nil {
		rc.Close()
	}
	return PermissionGranted, nil
}

func (n *NMEA) open() (io.ReadCloser, bool, error) {
	rc, err := n.Open(n.Path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, false, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	replay := false
	if f, ok := rc.(*os.File); ok {
		if st, err := f.Stat(); err == nil && st.Mode().IsRegular() {
			replay = true
		}
	}
	return rc, replay, nil
}

// CurrentPosition returns the first valid fix in the stream.
func (n *NMEA) CurrentPosition(ctx context.Context, _ bool) (geo.Coordinate, error) {
	rc, _, err := n.open()
	if err != nil {
		return geo.Coordinate{}, err
	}
	stop := context.AfterFunc(ctx, func() { rc.Close() })
	defer func() {
		if stop() {
			rc.Close()
		}
	}()

	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		if c, ok := parseFix(sc.Text()); ok {
			return c, nil
		}
	}
	if ctx.Err() != nil {
		return geo.Coordinate{}, ctx.Err()
	}
	if err := sc.Err(); err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: read %s: %v", ErrUnavailable, n.Path, err)
	}
	return geo.Coordinate{}, fmt.Errorf("%w: no valid fix in %s", ErrUnavailable, n.Path)
}

func (n *NMEA) Watch(opts WatchOptions, onUpdate func(Fix)) (Subscription, error) {
	rc, replay, err := n.open()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	sub := newWatchSub(cancel, rc.Close)
	filter := NewFilter(opts)

	go func() {
		defer close(sub.done)
		sc := bufio.NewScanner(rc)
		for sc.Scan() {
			c, ok := parseFix(sc.Text())
			if !ok {
				continue
			}
			fix := Fix{Coordinate: c, At: time.Now()}
			if filter.Accept(fix) {
				onUpdate(fix)
			}
			if replay && n.ReplayInterval > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(n.ReplayInterval):
				}
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
	return sub, nil
}

// parseFix extracts a position from RMC or GGA sentences with a valid fix.
func parseFix(line string) (geo.Coordinate, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return geo.Coordinate{}, false
	}
	s, err := nmea.Parse(line)
	if err != nil {
		return geo.Coordinate{}, false
	}

	var c geo.Coordinate
	switch m := s.(type) {
	case nmea.RMC:
		if m.Validity != nmea.ValidRMC {
			return geo.Coordinate{}, false
		}
		c = geo.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude}
	case nmea.GGA:
		if m.FixQuality == nmea.Invalid {
			return geo.Coordinate{}, false
		}
		c = geo.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude}
	default:
		return geo.Coordinate{}, false
	}
	if c.Validate() != nil {
		return geo.Coordinate{}, false
	}
	return c, true
}
