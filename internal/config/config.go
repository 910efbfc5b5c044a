package config

import "time"

const (
	// Display
	TargetFPS = 30 // Target frames per second

	// Step history shown under the compass
	HistorySize = 64

	// App
	AppName    = "TREZOR"
	AppVersion = "1.0"
)

// Screen names understood by the navigator.
const (
	ScreenSplash = "Splash"
	ScreenHome   = "Home"
)

// Policy holds the tunable thresholds of the hunt.
type Policy struct {
	StepLength     float64 `mapstructure:"step_length"`      // meters per step
	NoiseGateSteps int     `mapstructure:"noise_gate_steps"` // ignore step changes smaller than this

	HotSteps      int `mapstructure:"hot_steps"`      // steps < HotSteps => hot
	WarmSteps     int `mapstructure:"warm_steps"`     // steps < WarmSteps => warm
	LukewarmSteps int `mapstructure:"lukewarm_steps"` // steps < LukewarmSteps => lukewarm, else cold

	UIThrottle        time.Duration `mapstructure:"ui_throttle"`
	SoundInterval     time.Duration `mapstructure:"sound_interval"`
	PointerTransition time.Duration `mapstructure:"pointer_transition"`
	SplashDuration    time.Duration `mapstructure:"splash_duration"`

	MinRadius float64 `mapstructure:"min_radius"` // meters
	MaxRadius float64 `mapstructure:"max_radius"` // meters

	WatchMinDistance float64       `mapstructure:"watch_min_distance"` // meters
	WatchMinInterval time.Duration `mapstructure:"watch_min_interval"`
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		StepLength:        0.8,
		NoiseGateSteps:    3,
		HotSteps:          10,
		WarmSteps:         25,
		LukewarmSteps:     50,
		UIThrottle:        1000 * time.Millisecond,
		SoundInterval:     5000 * time.Millisecond,
		PointerTransition: 300 * time.Millisecond,
		SplashDuration:    2000 * time.Millisecond,
		MinRadius:         3,
		MaxRadius:         10,
		WatchMinDistance:  1,
		WatchMinInterval:  2000 * time.Millisecond,
	}
}
