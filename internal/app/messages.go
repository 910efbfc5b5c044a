package app

import (
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/audio"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/location"
)

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// ReplaceMsg asks the navigator to swap the current screen.
type ReplaceMsg struct {
	Screen string
}

// splashDoneMsg fires when the splash delay is over.
type splashDoneMsg struct{}

// The messages below complete async work started by the Home screen.
// Each carries the session it was started for; the screen drops any
// that arrive for a session that is no longer live.

type permissionMsg struct {
	session    string
	permission location.Permission
	err        error
}

type initialFixMsg struct {
	session string
	coord   geo.Coordinate
	at      time.Time
	err     error
}

type watchStartedMsg struct {
	session string
	sub     location.Subscription
	err     error
}

type positionMsg struct {
	session string
	fix     location.Fix
}

type soundLoadedMsg struct {
	session string
	handle  audio.Handle
	played  bool
	err     error // load error; handle is nil
	playErr error
}

type soundPlayedMsg struct {
	session string
	action  audio.Action
	err     error
}
