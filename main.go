package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/app"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/audio"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/location"
	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flagConfig string

func main() {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "trezor",
		Short: "Trezor - walk toward a hidden treasure with a hot/cold compass",
		Long: `Trezor hides a treasure a few meters from where you stand and guides
you to it: the screen turns warmer as you get closer, a compass needle
points the way, and a chime plays when you are almost there.

Positions come from an NMEA GPS receiver (--device, a serial port or a
recorded log file). Use --demo to walk a simulated player with the arrow keys.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "YAML config file")
	f.Bool("demo", false, "Use the simulated GPS (arrow keys walk)")
	f.Bool("deny", false, "Simulate a denied location permission (demo mode)")
	f.String("device", "/dev/ttyACM0", "NMEA GPS device or log file")
	f.Duration("replay-interval", time.Second, "Delay between fixes when replaying a log file")
	f.Float64("origin-lat", -23.55052, "Simulated start latitude")
	f.Float64("origin-lon", -46.633308, "Simulated start longitude")
	f.String("sound", config.SoundChime, "Treasure sound: chime, bell or none")
	f.String("sound-file", "", "WAV or MP3 file to play instead of the built-in chime")
	f.Int64("seed", 0, "Random seed for treasure placement (0 = time based)")
	f.String("log-file", "trezor.log", "Log file (empty disables logging)")
	f.String("log-level", "info", "Log level")

	for key, flag := range map[string]string{
		"location.demo":            "demo",
		"location.deny":            "deny",
		"location.device":          "device",
		"location.replay_interval": "replay-interval",
		"location.origin_lat":      "origin-lat",
		"location.origin_lon":      "origin-lon",
		"audio.mode":               "sound",
		"audio.file":               "sound-file",
		"seed":                     "seed",
		"log.file":                 "log-file",
		"log.level":                "log-level",
	} {
		if err := v.BindPFlag(key, f.Lookup(flag)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(v *viper.Viper) error {
	settings, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}

	log, closer, err := logging.Setup(settings.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	if flagConfig != "" {
		config.Watch(v, func(s config.Settings) {
			level, err := logrus.ParseLevel(s.Log.Level)
			if err != nil {
				log.WithError(err).Warn("config reload: bad log level")
				return
			}
			if level != log.GetLevel() {
				log.SetLevel(level)
				log.WithField("level", level).Info("log level changed")
			}
		}, func(err error) {
			log.WithError(err).Warn("config reload rejected")
		})
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	loc, err := newLocation(settings.Location, seed)
	if err != nil {
		return err
	}

	snd, err := audio.New(settings.Audio)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"gps":   loc.Name(),
		"sound": snd.Name(),
		"seed":  seed,
	}).Info("starting")

	model := app.New(app.Deps{
		Settings: settings,
		Location: loc,
		Audio:    snd,
		Log:      log,
		Rand:     rand.New(rand.NewSource(seed)),
		Now:      time.Now,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)
	model.Attach(p)

	_, err = p.Run()
	model.Shutdown()
	if err != nil {
		log.WithError(err).Error("program exited")
	}
	return err
}

func newLocation(s config.LocationSettings, seed int64) (location.Provider, error) {
	if s.Demo || s.Deny {
		origin := geo.Coordinate{Latitude: s.OriginLat, Longitude: s.OriginLon}
		if err := origin.Validate(); err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		return location.NewSimulator(origin, s.Jitter, s.Deny, seed), nil
	}
	return location.NewNMEA(s.Device, s.ReplayInterval), nil
}
