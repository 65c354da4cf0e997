// Package ticketmaster is the outbound client for the Ticketmaster
// Discovery API. Any transport error, non-2xx status or malformed payload
// is reported as an upstream-unavailable error; callers never see raw
// upstream failures.
package ticketmaster

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sefazor/eventmate-backend/pkg/apperror"
)

const (
	defaultBaseURL = "https://app.ticketmaster.com"

	// Search parameters for the nearby-events listing.
	searchRadius = "50"
	searchUnit   = "miles"
	searchSize   = "10"
)

// requestTimeout bounds every outbound call; the source had none.
const requestTimeout = 5 * time.Second

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

// EventDetails is the subset of an upstream event this system caches.
type EventDetails struct {
	ID       string
	Name     string
	Location string
	Date     time.Time
	Category string
	ImageURL string
}

type searchResponse struct {
	Embedded struct {
		Events []json.RawMessage `json:"events"`
	} `json:"_embedded"`
}

type eventResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Dates struct {
		Start struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
	} `json:"classifications"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
		} `json:"venues"`
	} `json:"_embedded"`
}

// SearchNearby returns the raw upstream event objects around the given
// coordinates. The listing is passed through untouched so the API surface
// mirrors what Ticketmaster returns.
func (c *Client) SearchNearby(lat, lng float64) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("latlong", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", searchRadius)
	params.Set("unit", searchUnit)
	params.Set("size", searchSize)

	var result searchResponse
	if err := c.getJSON("/discovery/v2/events.json?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	return result.Embedded.Events, nil
}

// GetEvent fetches one event by its upstream id.
func (c *Client) GetEvent(id string) (*EventDetails, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)

	var result eventResponse
	path := "/discovery/v2/events/" + url.PathEscape(id) + ".json?" + params.Encode()
	if err := c.getJSON(path, &result); err != nil {
		return nil, err
	}

	if result.Name == "" {
		return nil, apperror.Upstream("Unable to fetch event details", fmt.Errorf("ticketmaster: event %s has no name", id))
	}

	details := &EventDetails{
		ID:   id,
		Name: result.Name,
	}

	if len(result.Embedded.Venues) > 0 {
		venue := result.Embedded.Venues[0]
		details.Location = venue.Name
		if venue.City.Name != "" {
			if details.Location != "" {
				details.Location += ", " + venue.City.Name
			} else {
				details.Location = venue.City.Name
			}
		}
	}

	date, err := parseStartDate(result.Dates.Start.DateTime, result.Dates.Start.LocalDate)
	if err != nil {
		return nil, apperror.Upstream("Unable to fetch event details", err)
	}
	details.Date = date

	if len(result.Classifications) > 0 {
		details.Category = result.Classifications[0].Segment.Name
	}
	if len(result.Images) > 0 {
		details.ImageURL = result.Images[0].URL
	}

	return details, nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return apperror.Upstream("Unable to fetch events", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.Upstream("Unable to fetch events", fmt.Errorf("ticketmaster: unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Upstream("Unable to fetch events", fmt.Errorf("ticketmaster: decoding response: %w", err))
	}

	return nil
}

// Events sometimes carry only a local date without a time component.
func parseStartDate(dateTime, localDate string) (time.Time, error) {
	if dateTime != "" {
		return time.Parse(time.RFC3339, dateTime)
	}
	if localDate != "" {
		return time.Parse("2006-01-02", localDate)
	}
	return time.Time{}, fmt.Errorf("ticketmaster: event has no start date")
}
