package app

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/assets"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/audio"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/hunt"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/location"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/radar"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	hintStarting     = "Starting the treasure hunt..."
	hintDenied       = "Location permission denied. Enable it in settings."
	hintLocating     = "Getting initial location to place the treasure..."
	hintPlaced       = "Treasure placed! Search around..."
	hintNoInitialFix = "Could not get initial location. Check GPS."
	hintNoWatch      = "Could not track location. Check GPS."
	hintNoTarget     = "Could not place the treasure here. Try another spot."
)

// Bearing changes smaller than this leave the needle where it is.
const minNeedleTurn = 0.5 * math.Pi / 180

// home is the guidance screen. It owns one hunt session from mount to
// teardown; async completions for any other session are dropped.
type home struct {
	deps   Deps
	policy config.Policy
	send   func(tea.Msg)
	log    *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc

	session  *hunt.Session
	throttle hunt.ThrottleState
	cue      *audio.Cue
	sub      location.Subscription
	pointer  *radar.Pointer
	trail    *hunt.Trail
	tick     func() tea.Cmd
	ticking  bool

	hint     string
	bg       lipgloss.Color
	failed   bool
	hasFix   bool
	steps    int
	hasSteps bool
	bearing  float64
	band     hunt.Band

	mounted bool
	torn    bool
}

func newHome(deps Deps, send func(tea.Msg)) *home {
	p := deps.Settings.Policy
	s := hunt.NewSession()
	ctx, cancel := context.WithCancel(context.Background())
	return &home{
		deps:    deps,
		policy:  p,
		send:    send,
		log:     deps.Log.WithFields(logrus.Fields{"screen": config.ScreenHome, "session": s.ID}),
		ctx:     ctx,
		cancel:  cancel,
		session: s,
		cue:     audio.NewCue(assets.Chime, p.SoundInterval),
		pointer: radar.NewPointer(p.PointerTransition),
		trail:   hunt.NewTrail(config.HistorySize),
		tick:    tickCmd,
		hint:    hintStarting,
		bg:      lipgloss.Color(hunt.BandCold.Color()),
	}
}

// Init mounts the screen: ask for permission and preload the cue.
func (h *home) Init() tea.Cmd {
	if h.mounted || h.torn {
		return nil
	}
	h.mounted = true

	if err := h.session.Advance(hunt.PhaseAwaitingPermission); err != nil {
		h.log.WithError(err).Error("mount")
		return nil
	}
	h.log.WithField("gps", h.deps.Location.Name()).Info("hunt started")

	h.cue.Preloading()
	return tea.Batch(h.requestPermission(), h.preloadSound())
}

func (h *home) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		h.handleKey(msg)
		return nil

	case permissionMsg:
		if !h.current(msg.session) {
			return nil
		}
		return h.handlePermission(msg)

	case initialFixMsg:
		if !h.current(msg.session) {
			return nil
		}
		return h.handleInitialFix(msg)

	case watchStartedMsg:
		h.handleWatchStarted(msg)
		return nil

	case positionMsg:
		if !h.current(msg.session) {
			return nil
		}
		return h.handlePosition(msg.fix)

	case soundLoadedMsg:
		h.handleSoundLoaded(msg)
		return nil

	case TickMsg:
		if h.pointer.Animating(h.deps.Now()) {
			return h.tick()
		}
		h.ticking = false
		return nil

	case soundPlayedMsg:
		if msg.err != nil && h.current(msg.session) {
			h.log.WithError(msg.err).WithField("action", msg.action).Warn("sound playback failed")
		}
		return nil
	}
	return nil
}

// current reports whether a completion for session may still act.
func (h *home) current(session string) bool {
	return session == h.session.ID && h.session.Alive()
}

func (h *home) handleKey(msg tea.KeyMsg) {
	steer, ok := h.deps.Location.(location.Steerable)
	if !ok || !h.session.Alive() {
		return
	}
	step := h.policy.StepLength
	switch msg.String() {
	case "up", "k":
		steer.Move(step, 0)
	case "down", "j":
		steer.Move(-step, 0)
	case "right", "l":
		steer.Move(0, step)
	case "left", "h":
		steer.Move(0, -step)
	}
}

func (h *home) handlePermission(msg permissionMsg) tea.Cmd {
	if msg.err != nil || msg.permission != location.PermissionGranted {
		if msg.err != nil && !errors.Is(msg.err, location.ErrPermissionDenied) {
			h.log.WithError(msg.err).Warn("permission request failed")
		}
		h.log.Info("location permission denied")
		h.hint = hintDenied
		h.failed = true
		_ = h.session.Advance(hunt.PhaseTerminated)
		return nil
	}

	if err := h.session.Advance(hunt.PhaseAwaitingFirstFix); err != nil {
		h.log.WithError(err).Error("permission granted")
		return nil
	}
	h.hint = hintLocating
	return h.requestInitialFix()
}

func (h *home) handleInitialFix(msg initialFixMsg) tea.Cmd {
	if msg.err != nil {
		h.log.WithError(msg.err).Warn("initial location failed")
		h.hint = hintNoInitialFix
		h.failed = true
		return h.startWatch()
	}
	if err := msg.coord.Validate(); err != nil {
		h.log.WithError(err).Warn("initial location rejected")
		h.hint = hintNoInitialFix
		h.failed = true
		return h.startWatch()
	}
	h.hasFix = true
	return tea.Batch(h.handleFirstFix(location.Fix{Coordinate: msg.coord, At: msg.at}), h.startWatch())
}

// handleFirstFix places the target around fix and applies fix to it.
func (h *home) handleFirstFix(fix location.Fix) tea.Cmd {
	target, err := h.session.PlaceTarget(h.deps.Rand, fix.Coordinate,
		h.policy.MinRadius, h.policy.MaxRadius)
	if errors.Is(err, geo.ErrInvalidCoordinate) {
		h.log.WithError(err).Warn("target placement failed")
		h.hint = hintNoTarget
		h.failed = true
		return nil
	}
	if err != nil {
		h.log.WithError(err).Warn("target placement skipped")
		return nil
	}
	h.failed = false
	h.log.WithFields(logrus.Fields{"origin": fix.Coordinate.String(), "target": target.String()}).Info("treasure placed")

	cmd := h.applyFix(fix)
	h.hint = hintPlaced
	return cmd
}

func (h *home) handleWatchStarted(msg watchStartedMsg) {
	if !h.current(msg.session) {
		if msg.sub != nil {
			if err := msg.sub.Cancel(); err != nil {
				h.log.WithError(err).Warn("cancel stale watch")
			}
		}
		return
	}
	if msg.err != nil {
		h.log.WithError(msg.err).Warn("watch failed to start")
		h.hint = hintNoWatch
		h.failed = true
		return
	}
	h.sub = msg.sub
}

func (h *home) handlePosition(fix location.Fix) tea.Cmd {
	if err := fix.Coordinate.Validate(); err != nil {
		h.log.WithError(err).Debug("position dropped")
		return nil
	}
	h.hasFix = true

	switch h.session.Phase() {
	case hunt.PhaseAwaitingFirstFix:
		return h.handleFirstFix(fix)
	case hunt.PhaseTargetGenerated:
		return h.applyFix(fix)
	}
	return nil
}

// applyFix feeds one position through the throttle and updates what the
// screen shows. It returns a sound command when the cue fires.
func (h *home) applyFix(fix location.Fix) tea.Cmd {
	target, err := h.session.Target()
	if err != nil {
		return nil
	}

	var u hunt.Update
	h.throttle, u = h.throttle.Apply(fix.At, fix.Coordinate, target, h.policy)
	if !u.Accepted {
		return nil
	}
	h.bearing = u.Bearing
	frames := h.aim(u.Bearing)

	if !u.Significant {
		return frames
	}
	h.steps = u.Steps
	h.hasSteps = true
	h.trail.Record(u.Steps)

	if hint := u.Band.Hint(); hint != h.hint {
		h.hint = hint
	}
	if c := lipgloss.Color(u.Band.Color()); c != h.bg {
		h.bg = c
	}
	if u.Band != h.band {
		h.log.WithFields(logrus.Fields{"band": u.Band, "steps": u.Steps}).Debug("band changed")
	}
	h.band = u.Band

	if u.PlaySound {
		return tea.Batch(frames, h.requestSound(fix))
	}
	return frames
}

// aim turns the needle toward bearing and starts the frame ticks if they
// are not already running.
func (h *home) aim(bearing float64) tea.Cmd {
	if radar.AngleDiff(radar.DegToRad(bearing), radar.DegToRad(h.pointer.To)) < minNeedleTurn {
		return nil
	}
	h.pointer.Retarget(bearing, h.deps.Now())
	if h.ticking {
		return nil
	}
	h.ticking = true
	return h.tick()
}

func (h *home) handleSoundLoaded(msg soundLoadedMsg) {
	if !h.current(msg.session) {
		h.unload(msg.handle)
		return
	}
	if msg.err != nil {
		h.log.WithError(msg.err).Warn("sound load failed")
		h.cue.LoadFailed()
		return
	}
	if msg.playErr != nil {
		h.log.WithError(msg.playErr).Warn("sound playback failed")
	}
	if extra := h.cue.Loaded(msg.handle, msg.played); extra != nil {
		h.unload(extra)
	}
}

func (h *home) unload(hd audio.Handle) {
	if hd == nil {
		return
	}
	if err := h.deps.Audio.Unload(hd); err != nil && !errors.Is(err, audio.ErrReleased) {
		h.log.WithError(err).Warn("sound unload failed")
	}
}

// Commands. Each runs off the event loop and reports back with a message
// stamped with the session it was issued for.

func (h *home) requestPermission() tea.Cmd {
	ctx, id, loc := h.ctx, h.session.ID, h.deps.Location
	return func() tea.Msg {
		perm, err := loc.RequestPermission(ctx)
		return permissionMsg{session: id, permission: perm, err: err}
	}
}

func (h *home) requestInitialFix() tea.Cmd {
	ctx, id, loc, now := h.ctx, h.session.ID, h.deps.Location, h.deps.Now
	return func() tea.Msg {
		c, err := loc.CurrentPosition(ctx, true)
		if err != nil {
			err = fmt.Errorf("current position: %w", err)
		}
		return initialFixMsg{session: id, coord: c, at: now(), err: err}
	}
}

func (h *home) startWatch() tea.Cmd {
	id, loc, send := h.session.ID, h.deps.Location, h.send
	opts := location.WatchOptionsFrom(h.policy)
	return func() tea.Msg {
		sub, err := loc.Watch(opts, func(fix location.Fix) {
			send(positionMsg{session: id, fix: fix})
		})
		if err != nil {
			err = fmt.Errorf("watch position: %w", err)
		}
		return watchStartedMsg{session: id, sub: sub, err: err}
	}
}

func (h *home) preloadSound() tea.Cmd {
	ctx, id, p, asset := h.ctx, h.session.ID, h.deps.Audio, h.cue.Asset
	return func() tea.Msg {
		hd, err := p.Load(ctx, asset)
		return soundLoadedMsg{session: id, handle: hd, err: err}
	}
}

func (h *home) requestSound(fix location.Fix) tea.Cmd {
	act := h.cue.Request(fix.At)
	if act == audio.ActionNone {
		return nil
	}
	h.log.WithField("action", act).Debug("sound cue")

	ctx, id, p, asset, hd := h.ctx, h.session.ID, h.deps.Audio, h.cue.Asset, h.cue.Handle()
	return func() tea.Msg {
		nh, err := audio.Perform(ctx, p, act, asset, hd)
		if act != audio.ActionLoadAndPlay {
			return soundPlayedMsg{session: id, action: act, err: err}
		}
		if nh == nil {
			return soundLoadedMsg{session: id, err: err}
		}
		return soundLoadedMsg{session: id, handle: nh, played: err == nil, playErr: err}
	}
}

// Teardown stops the watch and releases the sound. Failures are logged and
// swallowed.
func (h *home) Teardown() {
	if h.torn {
		return
	}
	h.torn = true

	defer func() {
		if r := recover(); r != nil {
			h.log.WithField("panic", r).Error("teardown")
		}
	}()

	_ = h.session.Advance(hunt.PhaseTerminated)
	h.cancel()

	if h.sub != nil {
		if err := h.sub.Cancel(); err != nil {
			h.log.WithError(err).Warn("cancel watch")
		}
		h.sub = nil
	}
	h.unload(h.cue.Release())
	h.log.Info("hunt stopped")
}

func (h *home) View(width, height int) string {
	_, steerable := h.deps.Location.(location.Steerable)
	menuBar := ui.RenderMenuBar(width, h.deps.Location.Name(), steerable)
	statusBar := ui.RenderStatusBar(width, ui.Status{
		Phase:    h.session.Phase().String(),
		Failed:   h.failed,
		Steps:    h.steps,
		HasSteps: h.hasSteps,
		Bearing:  h.bearing,
		Band:     h.band.String(),
		Session:  h.session.ID,
	})

	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	best, _ := h.trail.Best()
	body := ui.RenderGuidance(width, bodyHeight, ui.Guidance{
		Hint:       h.hint,
		Background: h.bg,
		HasFix:     h.hasFix,
		HasSteps:   h.hasSteps,
		Steps:      h.steps,
		Needle:     h.pointer.Radians(h.deps.Now()),
		Trail:      h.trail.Steps(),
		Best:       best,
	})
	body = ui.PadLines(body, bodyHeight)

	return ui.ComposeLayout(menuBar, body, statusBar, width, bodyHeight, h.bg)
}

// target exposes the placed target for status logging and tests.
func (h *home) target() (geo.Coordinate, bool) {
	t, err := h.session.Target()
	return t, err == nil
}
