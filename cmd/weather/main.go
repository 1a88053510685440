package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/tednaleid/weatherbar/internal/config"
	"github.com/tednaleid/weatherbar/internal/weather"
	"github.com/urfave/cli/v3"
)

const usage = "Usage: weather [City] [Path to .env file] (optional)"

// app holds what the command reads from the outside world so tests can swap it
type app struct {
	env        map[string]string
	loader     config.FileLoader
	homeDir    func() (string, error)
	httpClient *http.Client
	settings   func() (*config.Settings, error)
	logOutput  io.Writer
}

// CommandOption configures the app behind the command
type CommandOption func(*app)

// WithEnv replaces the process environment as the source of CITY and WEATHER_API
func WithEnv(env map[string]string) CommandOption {
	return func(a *app) {
		a.env = env
	}
}

// WithHomeDir sets where the default .env file is looked up
func WithHomeDir(dir string) CommandOption {
	return func(a *app) {
		a.homeDir = func() (string, error) { return dir, nil }
	}
}

// WithHTTPClient sets the client used for the probe and the lookup
func WithHTTPClient(c *http.Client) CommandOption {
	return func(a *app) {
		a.httpClient = c
	}
}

// WithSettings skips reading WEATHER_* variables and starts from s instead
func WithSettings(s config.Settings) CommandOption {
	return func(a *app) {
		a.settings = func() (*config.Settings, error) {
			copied := s
			return &copied, nil
		}
	}
}

// WithLogOutput redirects log output, stderr by default
func WithLogOutput(w io.Writer) CommandOption {
	return func(a *app) {
		a.logOutput = w
	}
}

func setupCommand(opts ...CommandOption) *cli.Command {
	a := &app{
		env:       config.EnvMap(os.Environ()),
		loader:    config.DotenvLoader{},
		homeDir:   os.UserHomeDir,
		settings:  config.LoadSettings,
		logOutput: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	return &cli.Command{
		Name:      "weather",
		Usage:     "Print the current weather for a city",
		ArgsUsage: "[city] [config_file_path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "style",
				Aliases: []string{"s"},
				Usage:   "Output style: plain, json, waybar or waybar-inline",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Weather API endpoint",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP timeout",
			},
			&cli.BoolFlag{
				Name:    "check-connectivity",
				Aliases: []string{"c"},
				Usage:   "Probe the network before querying the weather API",
			},
			&cli.StringFlag{
				Name:  "probe-url",
				Usage: "URL used by --check-connectivity",
			},
			&cli.StringFlag{
				Name:  "offline",
				Usage: "What to do when offline: halt, sentinel or message",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Debug logging on stderr",
			},
		},
		Action: a.run,
	}
}

func (a *app) run(ctx context.Context, command *cli.Command) error {
	settings, err := a.settings()
	if err != nil {
		return err
	}
	applyFlags(command, settings)
	if err := settings.Validate(); err != nil {
		return err
	}
	style, err := weather.ParseStyle(settings.Style)
	if err != nil {
		return err
	}

	level := settings.SlogLevel()
	if command.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.logOutput, &slog.HandlerOptions{Level: level}))

	resolver := &config.Resolver{Loader: a.loader, HomeDir: a.homeDir, Logger: logger}
	cfg, err := resolver.Resolve(command.Args().Slice(), a.env)
	if err != nil {
		var cfgErr *config.ConfigError
		switch {
		case errors.Is(err, config.ErrMissingCity):
			fmt.Fprintln(command.Writer, usage)
			return nil
		case errors.Is(err, config.ErrMissingAPIKey) && errors.As(err, &cfgErr):
			logger.Debug("api key lookup failed", "error", err)
			fmt.Fprintf(command.Writer, "Could not find API key: %s\n", cfgErr.Message)
			return nil
		}
		return err
	}

	httpClient := a.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}

	out, err := lookup(ctx, httpClient, logger, settings, cfg, style)
	var connErr *weather.ConnectivityError
	if errors.As(err, &connErr) {
		logger.Warn("offline", "error", err, "policy", settings.Offline)
		switch settings.Offline {
		case config.OfflineSentinel:
			out, err = weather.Sentinel(), nil
		case config.OfflineMessage:
			fmt.Fprintln(command.Writer, "No Internet")
			return nil
		}
	}
	if err != nil {
		return err
	}

	line, err := out.Render(style)
	if err != nil {
		return err
	}
	fmt.Fprintln(command.Writer, line)
	return nil
}

func lookup(
	ctx context.Context,
	httpClient *http.Client,
	logger *slog.Logger,
	settings *config.Settings,
	cfg *config.Config,
	style weather.OutputStyle,
) (weather.Output, error) {
	if settings.CheckConnectivity {
		if err := weather.Probe(ctx, httpClient, settings.ProbeURL); err != nil {
			return weather.Output{}, err
		}
	}

	client := weather.NewClient(settings.Endpoint, httpClient, logger)
	reading, err := client.Current(ctx, cfg.City, cfg.APIKey)
	if err != nil {
		return weather.Output{}, err
	}
	return weather.Format(*reading, style), nil
}

// applyFlags overrides settings with any flags given on the command line
func applyFlags(command *cli.Command, s *config.Settings) {
	if command.IsSet("style") {
		s.Style = command.String("style")
	}
	if command.IsSet("endpoint") {
		s.Endpoint = command.String("endpoint")
	}
	if command.IsSet("timeout") {
		s.Timeout = command.Duration("timeout")
	}
	if command.IsSet("check-connectivity") {
		s.CheckConnectivity = command.Bool("check-connectivity")
	}
	if command.IsSet("probe-url") {
		s.ProbeURL = command.String("probe-url")
	}
	if command.IsSet("offline") {
		s.Offline = command.String("offline")
	}
}

func main() {
	cmd := setupCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
