// Package audio plays the treasure cue.
package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/assets"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
)

var (
	ErrReleased      = errors.New("sound handle already released")
	ErrForeignHandle = errors.New("sound handle belongs to another provider")
)

// Handle is a loaded, playable sound.
type Handle interface {
	Asset() assets.ID
}

// Provider loads and plays sounds. Calls may block on I/O and should be
// issued off the UI event loop.
type Provider interface {
	Name() string
	Load(ctx context.Context, id assets.ID) (Handle, error)
	Play(h Handle) error
	Replay(h Handle) error
	Unload(h Handle) error
}

// New builds the provider selected by the settings.
func New(s config.AudioSettings) (Provider, error) {
	switch s.Mode {
	case config.SoundChime:
		return NewEbiten(s.File), nil
	case config.SoundBell:
		return NewBell(nil), nil
	case config.SoundNone:
		return Silent{}, nil
	}
	return nil, fmt.Errorf("unknown sound mode %q", s.Mode)
}

// Silent never makes a sound.
type Silent struct{}

type silentHandle assets.ID

func (h silentHandle) Asset() assets.ID { return assets.ID(h) }

func (Silent) Name() string { return "none" }

func (Silent) Load(ctx context.Context, id assets.ID) (Handle, error) {
	return silentHandle(id), ctx.Err()
}

func (Silent) Play(Handle) error   { return nil }
func (Silent) Replay(Handle) error { return nil }
func (Silent) Unload(Handle) error { return nil }
