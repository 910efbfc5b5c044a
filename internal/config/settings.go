package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Sound modes.
const (
	SoundChime = "chime"
	SoundBell  = "bell"
	SoundNone  = "none"
)

// LocationSettings selects and tunes the position source.
type LocationSettings struct {
	Demo           bool          `mapstructure:"demo"`
	Deny           bool          `mapstructure:"deny"`
	Device         string        `mapstructure:"device"`
	ReplayInterval time.Duration `mapstructure:"replay_interval"`
	OriginLat      float64       `mapstructure:"origin_lat"`
	OriginLon      float64       `mapstructure:"origin_lon"`
	Jitter         float64       `mapstructure:"jitter"` // meters
}

// AudioSettings selects the sound backend.
type AudioSettings struct {
	Mode string `mapstructure:"mode"`
	File string `mapstructure:"file"` // optional WAV/MP3 override for the chime
}

// LogSettings controls the log file.
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Settings is the full runtime configuration.
type Settings struct {
	Policy   Policy           `mapstructure:"policy"`
	Location LocationSettings `mapstructure:"location"`
	Audio    AudioSettings    `mapstructure:"audio"`
	Log      LogSettings      `mapstructure:"log"`
	Seed     int64            `mapstructure:"seed"` // 0 = time based
}

// SetDefaults registers every key with its default so env and flag
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	p := DefaultPolicy()
	v.SetDefault("policy.step_length", p.StepLength)
	v.SetDefault("policy.noise_gate_steps", p.NoiseGateSteps)
	v.SetDefault("policy.hot_steps", p.HotSteps)
	v.SetDefault("policy.warm_steps", p.WarmSteps)
	v.SetDefault("policy.lukewarm_steps", p.LukewarmSteps)
	v.SetDefault("policy.ui_throttle", p.UIThrottle)
	v.SetDefault("policy.sound_interval", p.SoundInterval)
	v.SetDefault("policy.pointer_transition", p.PointerTransition)
	v.SetDefault("policy.splash_duration", p.SplashDuration)
	v.SetDefault("policy.min_radius", p.MinRadius)
	v.SetDefault("policy.max_radius", p.MaxRadius)
	v.SetDefault("policy.watch_min_distance", p.WatchMinDistance)
	v.SetDefault("policy.watch_min_interval", p.WatchMinInterval)

	v.SetDefault("location.demo", false)
	v.SetDefault("location.deny", false)
	v.SetDefault("location.device", "/dev/ttyACM0")
	v.SetDefault("location.replay_interval", time.Second)
	v.SetDefault("location.origin_lat", -23.55052)
	v.SetDefault("location.origin_lon", -46.633308)
	v.SetDefault("location.jitter", 0.6)

	v.SetDefault("audio.mode", SoundChime)
	v.SetDefault("audio.file", "")

	v.SetDefault("log.file", "trezor.log")
	v.SetDefault("log.level", "info")

	v.SetDefault("seed", 0)
}

// Load reads settings from defaults, an optional YAML file, and
// TREASURE_* environment variables. Flags must already be bound to v.
func Load(v *viper.Viper, path string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix("treasure")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Watch reloads the config file on change and passes settings that still
// validate to onChange. Invalid edits are reported through onError and
// otherwise ignored. Only meaningful after Load with a file path.
func Watch(v *viper.Viper, onChange func(Settings), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		var s Settings
		if err := v.Unmarshal(&s); err != nil {
			onError(fmt.Errorf("decode %s: %w", e.Name, err))
			return
		}
		if err := s.Validate(); err != nil {
			onError(fmt.Errorf("reload %s: %w", e.Name, err))
			return
		}
		onChange(s)
	})
	v.WatchConfig()
}

// Validate rejects settings the hunt cannot run with.
func (s Settings) Validate() error {
	p := s.Policy
	switch {
	case p.StepLength <= 0:
		return fmt.Errorf("%w: step_length must be positive", ErrInvalidSettings)
	case p.NoiseGateSteps < 0:
		return fmt.Errorf("%w: noise_gate_steps must not be negative", ErrInvalidSettings)
	case !(p.HotSteps < p.WarmSteps && p.WarmSteps < p.LukewarmSteps):
		return fmt.Errorf("%w: band thresholds must increase (hot < warm < lukewarm)", ErrInvalidSettings)
	case p.UIThrottle < 0 || p.SoundInterval < 0:
		return fmt.Errorf("%w: throttle intervals must not be negative", ErrInvalidSettings)
	case p.PointerTransition <= 0 || p.SplashDuration <= 0:
		return fmt.Errorf("%w: pointer_transition and splash_duration must be positive", ErrInvalidSettings)
	case p.MinRadius < 0 || p.MaxRadius <= p.MinRadius:
		return fmt.Errorf("%w: need 0 <= min_radius < max_radius", ErrInvalidSettings)
	case p.WatchMinDistance < 0 || p.WatchMinInterval < 0:
		return fmt.Errorf("%w: watch limits must not be negative", ErrInvalidSettings)
	}

	switch s.Audio.Mode {
	case SoundChime, SoundBell, SoundNone:
	default:
		return fmt.Errorf("%w: unknown sound mode %q", ErrInvalidSettings, s.Audio.Mode)
	}

	if !s.Location.Demo && s.Location.Device == "" {
		return fmt.Errorf("%w: a GPS device is required outside demo mode", ErrInvalidSettings)
	}
	return nil
}
