package audio

import (
	"context"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/assets"
)

// Action is what a granted play request should do.
type Action int

const (
	ActionNone        Action = iota
	ActionPlay               // first playback of a loaded handle
	ActionReplay             // rewind and play again
	ActionLoadAndPlay        // nothing loaded yet
)

func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionReplay:
		return "replay"
	case ActionLoadAndPlay:
		return "load+play"
	default:
		return "none"
	}
}

// Cue gates how often the treasure sound may play. It keeps its own
// timer, separate from any UI throttling. Cue is not safe for concurrent
// use; it lives on the UI event loop.
type Cue struct {
	Asset    assets.ID
	interval time.Duration
	last     time.Time
	handle   Handle
	played   bool
	loading  bool
}

// NewCue creates a cue for asset with the given minimum interval.
func NewCue(asset assets.ID, interval time.Duration) *Cue {
	return &Cue{Asset: asset, interval: interval}
}

// Request asks to play at now. It returns ActionNone when the last granted
// request was less than the interval ago or a load is still in flight. Only
// granted requests start a new interval.
func (c *Cue) Request(now time.Time) Action {
	if !c.last.IsZero() && now.Sub(c.last) < c.interval {
		return ActionNone
	}
	if c.handle == nil && c.loading {
		return ActionNone
	}
	c.last = now

	switch {
	case c.handle == nil:
		c.loading = true
		return ActionLoadAndPlay
	case !c.played:
		c.played = true
		return ActionPlay
	default:
		return ActionReplay
	}
}

// Preloading marks a load as started outside Request.
func (c *Cue) Preloading() {
	c.loading = true
}

// Loaded records a finished load. If a handle is already held, the new
// one is returned so the caller can unload it.
func (c *Cue) Loaded(h Handle, played bool) (extra Handle) {
	c.loading = false
	if c.handle != nil {
		return h
	}
	c.handle = h
	c.played = c.played || played
	return nil
}

// LoadFailed clears the in-flight flag so a later request may retry.
func (c *Cue) LoadFailed() {
	c.loading = false
}

// Handle returns the loaded handle, or nil.
func (c *Cue) Handle() Handle {
	return c.handle
}

// Release hands back the handle for unloading and forgets it.
func (c *Cue) Release() Handle {
	h := c.handle
	c.handle = nil
	c.played = false
	return h
}

// Perform carries out act against p. Call it off the event loop. For
// ActionLoadAndPlay the freshly loaded handle is returned.
func Perform(ctx context.Context, p Provider, act Action, asset assets.ID, h Handle) (Handle, error) {
	switch act {
	case ActionPlay:
		return h, p.Play(h)
	case ActionReplay:
		return h, p.Replay(h)
	case ActionLoadAndPlay:
		nh, err := p.Load(ctx, asset)
		if err != nil {
			return nil, err
		}
		return nh, p.Play(nh)
	}
	return h, nil
}
