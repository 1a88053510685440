package config

import (
	"errors"
	"fmt"
)

// ConfigErrorType categorizes configuration failures.
type ConfigErrorType string

const (
	ErrTypeMissingCity          ConfigErrorType = "MISSING_CITY"
	ErrTypeMissingAPIKey        ConfigErrorType = "MISSING_API_KEY"
	ErrTypeConfigFileUnreadable ConfigErrorType = "CONFIG_FILE_UNREADABLE"
	ErrTypeParsing              ConfigErrorType = "PARSING_ERROR"
	ErrTypeValidation           ConfigErrorType = "VALIDATION_ERROR"
)

// Sentinels for errors.Is. A *ConfigError matches the sentinel of its Type.
var (
	ErrMissingCity          = errors.New("no city given")
	ErrMissingAPIKey        = errors.New("no API key found")
	ErrConfigFileUnreadable = errors.New("config file unreadable")
	ErrParsing              = errors.New("settings could not be parsed")
	ErrValidation           = errors.New("settings are invalid")
)

var sentinels = map[ConfigErrorType]error{
	ErrTypeMissingCity:          ErrMissingCity,
	ErrTypeMissingAPIKey:        ErrMissingAPIKey,
	ErrTypeConfigFileUnreadable: ErrConfigFileUnreadable,
	ErrTypeParsing:              ErrParsing,
	ErrTypeValidation:           ErrValidation,
}

// ConfigError wraps a ConfigErrorType and an optional underlying error.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Type.
func (e *ConfigError) Is(target error) bool {
	s, ok := sentinels[e.Type]
	return ok && s == target
}
