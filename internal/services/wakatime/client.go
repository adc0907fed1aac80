// Package wakatime provides the time-tracking statistics client.
package wakatime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wakadash/wakadash/internal/logger"
	"github.com/wakadash/wakadash/internal/models"
)

const userAgent = "wakadash-wakatime-stats"

// ErrMissingAPIKey is returned before any request is attempted when no API
// key is configured. Callers treat it as a configuration error, distinct
// from upstream failures.
var ErrMissingAPIKey = errors.New("missing WakaTime API key (set WAKATIME_API_KEY)")

// StatusError is returned for any non-success HTTP status. The response
// body is captured best-effort for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wakatime API error %d: %s", e.StatusCode, e.Body)
}

// Client calls the WakaTime API. It performs no caching of its own; the
// transport layer owns that.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a WakaTime client. A nil httpClient gets a default with a
// 30 second timeout.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

// envelope is the {data: T} wrapper every WakaTime endpoint uses.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type wireStat struct {
	Name         string   `json:"name"`
	TotalSeconds *float64 `json:"total_seconds"`
	Seconds      *float64 `json:"seconds"`
}

type wireAllTimeStats struct {
	Languages  []wireStat `json:"languages"`
	Categories []wireStat `json:"categories"`

	HumanReadableTotalIncludingOtherLanguage        string `json:"human_readable_total_including_other_language"`
	HumanReadableDailyAverageIncludingOtherLanguage string `json:"human_readable_daily_average_including_other_language"`
	HumanReadableDailyAverage                       string `json:"human_readable_daily_average"`
	HumanReadableRange                              string `json:"human_readable_range"`
	DaysIncludingHolidays                           int    `json:"days_including_holidays"`
}

type wireUser struct {
	URL        string `json:"url"`
	ProfileURL string `json:"profile_url"`
	Username   string `json:"username"`
}

// FetchAllTimeStats retrieves the all-time statistics. Any non-success
// status is terminal for this call; there are no retries.
func (c *Client) FetchAllTimeStats(ctx context.Context) (*models.AllTimeStats, error) {
	raw, err := c.fetch(ctx, "/users/current/stats/all_time")
	if err != nil {
		return nil, err
	}

	var wire wireAllTimeStats
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse all-time stats: %w", err)
	}

	return &models.AllTimeStats{
		Languages:                      toStatPoints(wire.Languages),
		Categories:                     toStatPoints(wire.Categories),
		TotalIncludingOtherText:        wire.HumanReadableTotalIncludingOtherLanguage,
		DailyAverageIncludingOtherText: wire.HumanReadableDailyAverageIncludingOtherLanguage,
		DailyAverageText:               wire.HumanReadableDailyAverage,
		RangeText:                      wire.HumanReadableRange,
		DaysIncludingHolidays:          wire.DaysIncludingHolidays,
	}, nil
}

// FetchCurrentUser retrieves the current user's profile fields.
func (c *Client) FetchCurrentUser(ctx context.Context) (*models.WakaUser, error) {
	raw, err := c.fetch(ctx, "/users/current")
	if err != nil {
		return nil, err
	}

	var wire wireUser
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return &models.WakaUser{
		URL:        wire.URL,
		ProfileURL: wire.ProfileURL,
		Username:   wire.Username,
	}, nil
}

func (c *Client) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey+":")))
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wakatime request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		// Body text is best-effort diagnostics; a read error leaves it empty.
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return env.Data, nil
}

// toStatPoints normalizes the provider's two seconds fields: total_seconds
// wins over seconds, absent values fold to zero.
func toStatPoints(stats []wireStat) []models.StatPoint {
	points := make([]models.StatPoint, 0, len(stats))
	for _, s := range stats {
		var seconds float64
		switch {
		case s.TotalSeconds != nil:
			seconds = *s.TotalSeconds
		case s.Seconds != nil:
			seconds = *s.Seconds
		}
		points = append(points, models.StatPoint{Name: s.Name, Seconds: seconds})
	}
	return points
}
