// Package assets holds the static assets of the hunt, addressed by ID.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownAsset is returned for IDs the store does not hold.
var ErrUnknownAsset = errors.New("unknown asset")

// ID identifies an asset.
type ID string

const (
	Logo  ID = "logo"
	Chime ID = "chime"
)

//go:embed logo.txt
var logo string

var (
	chimeOnce sync.Once
	chimePCM  []byte
)

// Bytes returns the raw contents of an asset. Chime is 16-bit signed
// little-endian stereo PCM at SampleRate.
func Bytes(id ID) ([]byte, error) {
	switch id {
	case Logo:
		return []byte(logo), nil
	case Chime:
		chimeOnce.Do(func() { chimePCM = synthChime() })
		return chimePCM, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
}

// Text returns a text asset.
func Text(id ID) (string, error) {
	if id != Logo {
		return "", fmt.Errorf("%w: %q is not text", ErrUnknownAsset, id)
	}
	return logo, nil
}
