// Package weather fetches the current weather for a city from OpenWeatherMap
// and turns it into a short status line.
package weather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultEndpoint is the OpenWeatherMap current-weather endpoint.
const DefaultEndpoint = "http://api.openweathermap.org/data/2.5/weather"

const maxBodyBytes = 1 << 20

// Client performs the single lookup request. It never retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a Client for endpoint. A nil httpClient gets a 10 second
// timeout; a nil logger uses slog.Default().
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{endpoint: endpoint, httpClient: httpClient, logger: logger}
}

// Current fetches the current weather for city in metric units.
func (c *Client) Current(ctx context.Context, city, apiKey string) (*Reading, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("units", "metric")
	logged := *u
	logged.RawQuery = q.Encode()
	c.logger.Debug("requesting weather", "url", logged.String())
	q.Set("appid", apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{URL: redact(u), Err: stripURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &ConnectivityError{URL: redact(u), Err: err}
	}

	reading, err := ParseReading(body)
	if err != nil {
		c.logger.Warn("weather lookup failed", "city", city, "http_status", resp.StatusCode, "error", err)
		return nil, err
	}
	c.logger.Debug("weather reading", "city", city, "temp_c", reading.TemperatureC, "icon", reading.ConditionCode)
	return reading, nil
}

// redact returns u without its query so the API key stays out of messages.
func redact(u *url.URL) string {
	clean := *u
	clean.RawQuery = ""
	return clean.String()
}

// stripURL drops the request URL from a *url.Error, since it carries the key.
func stripURL(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}
