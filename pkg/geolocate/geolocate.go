// Package geolocate resolves an approximate position from the server's IP
// via the Google Geolocation API. It only ever runs best-effort: callers
// swallow failures and log them.
package geolocate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com"

// Lookups are fire-and-forget side effects of login, so they get a tight
// deadline.
const requestTimeout = 3 * time.Second

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, defaultBaseURL)
}

// NewClientWithBaseURL allows tests to point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

type Position struct {
	Latitude  float64
	Longitude float64
}

type geolocateResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

// Locate returns the approximate position inferred from the calling IP.
func (c *Client) Locate(ctx context.Context) (*Position, error) {
	url := c.baseURL + "/geolocation/v1/geolocate?key=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("geolocate: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geolocate: unexpected status %d", resp.StatusCode)
	}

	var result geolocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("geolocate: decoding response: %w", err)
	}

	return &Position{
		Latitude:  result.Location.Lat,
		Longitude: result.Location.Lng,
	}, nil
}
