package app

import (
	"math/rand"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/audio"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/location"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators shared by all screens.
type Deps struct {
	Settings config.Settings
	Location location.Provider
	Audio    audio.Provider
	Log      *logrus.Logger
	Rand     *rand.Rand
	Now      func() time.Time
}

// Screen is one page managed by the navigator. Screens are pointers and
// mutate in place; only the navigator calls them, from the event loop.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	// Teardown releases everything the screen holds. It must be safe to
	// call more than once.
	Teardown()
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	deps    Deps
	send    func(tea.Msg)
	screen  Screen
	name    string
	screens map[string]func() Screen
}

// Model is the root Bubble Tea model. It acts as the navigator: it owns
// the current screen and swaps it on ReplaceMsg.
type Model struct {
	width  int
	height int

	shared *shared
}

// New creates the navigator with the Splash and Home destinations,
// starting at Splash.
func New(deps Deps) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sh := &shared{deps: deps, send: func(tea.Msg) {}}
	sh.screens = map[string]func() Screen{
		config.ScreenSplash: func() Screen { return newSplash(sh.deps) },
		config.ScreenHome:   func() Screen { return newHome(sh.deps, sh.dispatch) },
	}
	sh.name = config.ScreenSplash
	sh.screen = sh.screens[sh.name]()

	return Model{shared: sh}
}

// Attach wires the running program so background work (location watches)
// can deliver messages. Must be called before p.Run().
func (m Model) Attach(p *tea.Program) {
	m.shared.send = p.Send
}

// dispatch forwards to whatever send is current, so screens built before
// Attach still reach the program.
func (sh *shared) dispatch(msg tea.Msg) {
	sh.send(msg)
}

// Screen returns the name of the current screen.
func (m Model) Screen() string {
	return m.shared.name
}

func (m Model) Init() tea.Cmd {
	return m.shared.screen.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			m.Shutdown()
			return m, tea.Quit
		}
		return m, m.shared.screen.Update(msg)

	case ReplaceMsg:
		return m, m.replace(msg.Screen)
	}

	return m, m.shared.screen.Update(msg)
}

// replace tears down the current screen and mounts the named one.
func (m Model) replace(name string) tea.Cmd {
	build, ok := m.shared.screens[name]
	if !ok {
		m.shared.deps.Log.WithField("screen", name).Warn("unknown screen, staying put")
		return nil
	}
	m.shared.deps.Log.WithFields(logrus.Fields{"from": m.shared.name, "to": name}).Info("navigate")

	m.shared.screen.Teardown()
	m.shared.name = name
	m.shared.screen = build()
	return m.shared.screen.Init()
}

// Shutdown tears down the current screen. Safe to call more than once.
func (m Model) Shutdown() {
	m.shared.screen.Teardown()
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.shared.screen.View(m.width, m.height)
}

// tickCmd requests one animation frame. Screens re-arm it while they have
// something moving.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
