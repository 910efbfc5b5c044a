// Package location provides device positions to the hunt.
package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
)

// Permission is the outcome of a permission request.
type Permission int

const (
	PermissionDenied Permission = iota
	PermissionGranted
)

func (p Permission) String() string {
	if p == PermissionGranted {
		return "granted"
	}
	return "denied"
}

// Fix is one position report.
type Fix struct {
	Coordinate geo.Coordinate
	At         time.Time
}

// WatchOptions limit how often a watch reports.
type WatchOptions struct {
	HighAccuracy bool
	MinDistance  float64 // meters
	MinInterval  time.Duration
}

// WatchOptionsFrom builds watch options from the policy.
func WatchOptionsFrom(p config.Policy) WatchOptions {
	return WatchOptions{
		HighAccuracy: true,
		MinDistance:  p.WatchMinDistance,
		MinInterval:  p.WatchMinInterval,
	}
}

// Subscription is a running watch. Cancel may be called more than once.
type Subscription interface {
	Cancel() error
}

// Provider is a source of device positions.
type Provider interface {
	Name() string
	RequestPermission(ctx context.Context) (Permission, error)
	CurrentPosition(ctx context.Context, highAccuracy bool) (geo.Coordinate, error)
	// Watch calls onUpdate from its own goroutine until cancelled.
	Watch(opts WatchOptions, onUpdate func(Fix)) (Subscription, error)
}

// Steerable providers accept manual movement (demo mode).
type Steerable interface {
	Move(north, east float64)
}

// watchSub stops a watch goroutine. Cancel does not wait for the goroutine
// to exit: it may be blocked delivering an update to the caller's event
// loop, which is the goroutine calling Cancel.
type watchSub struct {
	once    sync.Once
	cancel  context.CancelFunc
	done    chan struct{}
	onClose func() error
	err     error
}

func newWatchSub(cancel context.CancelFunc, onClose func() error) *watchSub {
	return &watchSub{cancel: cancel, done: make(chan struct{}), onClose: onClose}
}

func (s *watchSub) Cancel() error {
	s.once.Do(func() {
		s.cancel()
		if s.onClose != nil {
			s.err = s.onClose()
		}
	})
	return s.err
}

// Done is closed once the watch goroutine has exited.
func (s *watchSub) Done() <-chan struct{} {
	return s.done
}
