package weather

import (
	"context"
	"net/http"
)

// Probe sends one GET to probeURL. Any HTTP response, whatever its status,
// counts as reachable; a transport failure is a *ConnectivityError.
func Probe(ctx context.Context, httpClient *http.Client, probeURL string) error {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return &ConnectivityError{URL: probeURL, Err: err}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return &ConnectivityError{URL: probeURL, Err: err}
	}
	resp.Body.Close()
	return nil
}
