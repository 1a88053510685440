package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// SettingsPrefix is the envconfig prefix, so Endpoint reads WEATHER_ENDPOINT.
const SettingsPrefix = "weather"

// Settings are runtime knobs read from WEATHER_* variables. Command line
// flags take precedence over them.
type Settings struct {
	Endpoint string        `default:"http://api.openweathermap.org/data/2.5/weather" validate:"required,url"`
	Timeout  time.Duration `default:"10s" validate:"gt=0"`
	ProbeURL string        `split_words:"true" default:"https://google.com" validate:"required,url"`
	// CheckConnectivity probes ProbeURL before the lookup.
	CheckConnectivity bool   `split_words:"true"`
	Style             string `default:"plain" validate:"oneof=plain json waybar waybar-inline"`
	Offline           string `default:"halt" validate:"oneof=halt sentinel message"`
	LogLevel          string `split_words:"true" default:"warn" validate:"oneof=debug info warn error"`
}

// LoadSettings populates Settings from the process environment. It does not
// validate them: callers apply command line overrides first and then call
// Validate.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(SettingsPrefix, &s); err != nil {
		return nil, &ConfigError{
			Type:    ErrTypeParsing,
			Message: "failed to process environment settings",
			Err:     err,
		}
	}
	return &s, nil
}

// Validate lower-cases Style, Offline and LogLevel in place and then checks
// every field.
func (s *Settings) Validate() error {
	s.Style = normalize(s.Style)
	s.Offline = normalize(s.Offline)
	s.LogLevel = normalize(s.LogLevel)
	if err := validator.New().Struct(s); err != nil {
		return &ConfigError{
			Type:    ErrTypeValidation,
			Message: "settings validation failed",
			Err:     err,
		}
	}
	return nil
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to warn.
func (s *Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Offline policies, applied when the network or provider is unreachable.
const (
	OfflineHalt     = "halt"
	OfflineSentinel = "sentinel"
	OfflineMessage  = "message"
)
