// Package config resolves what the weather command needs before it can make
// a request: the city, the API key, and the runtime settings.
//
// City and key resolution follows a fixed precedence:
//  1. City: first positional argument, then CITY, then CITY in the config file.
//  2. Config file: second positional argument, then <home>/.env.
//  3. API key: WEATHER_API, then WEATHER_API in the config file.
//
// The environment is passed in as an explicit map and the config file is
// parsed into a separate map; neither is written back to the process.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

const (
	EnvAPIKey = "WEATHER_API"
	EnvCity   = "CITY"
)

// Source records where a resolved value came from.
type Source string

const (
	SourceArg  Source = "arg"
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

// Config is the resolved input for a single lookup.
type Config struct {
	City           string
	APIKey         string
	ConfigFilePath string

	CitySource   Source
	APIKeySource Source
}

// Resolver resolves a Config. The zero value reads files with DotenvLoader
// and finds the home directory with os.UserHomeDir.
type Resolver struct {
	Loader  FileLoader
	HomeDir func() (string, error)
	Logger  *slog.Logger
}

// Resolve is a convenience for a Resolver using loader.
func Resolve(args []string, env map[string]string, loader FileLoader) (*Config, error) {
	r := &Resolver{Loader: loader}
	return r.Resolve(args, env)
}

// Resolve determines the city and API key from positional args, env, and the
// config file. The file is read at most once and only if env is missing a
// value. A file that cannot be read is not an error on its own.
func (r *Resolver) Resolve(args []string, env map[string]string) (*Config, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := &Config{ConfigFilePath: r.configFilePath(args, logger)}
	file := &lazyFile{path: cfg.ConfigFilePath, loader: r.loader(), logger: logger}

	switch {
	case argAt(args, 0) != "":
		cfg.City, cfg.CitySource = argAt(args, 0), SourceArg
	case lookup(env, EnvCity) != "":
		cfg.City, cfg.CitySource = lookup(env, EnvCity), SourceEnv
	case file.get(EnvCity) != "":
		cfg.City, cfg.CitySource = file.get(EnvCity), SourceFile
	default:
		return nil, &ConfigError{
			Type:    ErrTypeMissingCity,
			Message: "no city given as argument or in " + EnvCity,
		}
	}

	switch {
	case lookup(env, EnvAPIKey) != "":
		cfg.APIKey, cfg.APIKeySource = lookup(env, EnvAPIKey), SourceEnv
	case file.get(EnvAPIKey) != "":
		cfg.APIKey, cfg.APIKeySource = file.get(EnvAPIKey), SourceFile
	default:
		return nil, &ConfigError{
			Type:    ErrTypeMissingAPIKey,
			Message: fmt.Sprintf("%s is not set in the environment or in %s", EnvAPIKey, displayPath(cfg.ConfigFilePath)),
			Err:     file.err,
		}
	}

	logger.Debug("resolved config",
		"city", cfg.City,
		"city_source", cfg.CitySource,
		"api_key_source", cfg.APIKeySource,
		"config_file", cfg.ConfigFilePath,
	)
	return cfg, nil
}

func (r *Resolver) loader() FileLoader {
	if r.Loader == nil {
		return DotenvLoader{}
	}
	return r.Loader
}

func (r *Resolver) configFilePath(args []string, logger *slog.Logger) string {
	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = defaultHomeDir
	}

	path := argAt(args, 1)
	if path != "" && !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := homeDir()
	if err != nil {
		logger.Debug("home directory unavailable", "error", err)
		return path
	}
	if path != "" {
		return expandHome(path, home)
	}
	return filepath.Join(home, DefaultConfigFileName)
}

// lazyFile loads the config file on first use and remembers the outcome.
type lazyFile struct {
	path   string
	loader FileLoader
	logger *slog.Logger

	loaded bool
	values map[string]string
	err    error
}

func (f *lazyFile) get(key string) string {
	if !f.loaded {
		f.loaded = true
		f.load()
	}
	return lookup(f.values, key)
}

func (f *lazyFile) load() {
	if f.path == "" {
		f.err = &ConfigError{Type: ErrTypeConfigFileUnreadable, Message: "no config file path"}
		return
	}
	values, err := f.loader.Load(f.path)
	if err != nil {
		f.err = &ConfigError{
			Type:    ErrTypeConfigFileUnreadable,
			Message: "could not read " + f.path,
			Err:     err,
		}
		f.logger.Debug("config file not loaded", "path", f.path, "error", err)
		return
	}
	f.values = values
}

func argAt(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return strings.TrimSpace(args[i])
}

func lookup(m map[string]string, key string) string {
	return strings.TrimSpace(m[key])
}

func displayPath(path string) string {
	if path == "" {
		return "the config file"
	}
	return path
}
