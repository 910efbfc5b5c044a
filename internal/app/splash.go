package app

import (
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/assets"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// splash shows the logo for a fixed time, then hands over to Home.
type splash struct {
	deps    Deps
	log     *logrus.Entry
	logo    string
	mounted bool
}

func newSplash(deps Deps) *splash {
	return &splash{
		deps: deps,
		log:  deps.Log.WithField("screen", config.ScreenSplash),
	}
}

// Init runs the one-time mount work: the logo is loaded from the asset
// store and the hand-over timer is armed.
func (s *splash) Init() tea.Cmd {
	if s.mounted {
		return nil
	}
	s.mounted = true

	logo, err := assets.Text(assets.Logo)
	if err != nil {
		s.log.WithError(err).Warn("logo unavailable")
		logo = config.AppName
	}
	s.logo = logo

	return tea.Tick(s.deps.Settings.Policy.SplashDuration, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

func (s *splash) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(splashDoneMsg); ok && s.mounted {
		return func() tea.Msg { return ReplaceMsg{Screen: config.ScreenHome} }
	}
	return nil
}

func (s *splash) View(width, height int) string {
	return ui.RenderSplash(width, height, s.logo)
}

func (s *splash) Teardown() {
	s.mounted = false
}
