// Package badge extracts a human-readable "total lines" metric from a
// remote text document carrying a shields.io badge. The value is purely
// cosmetic: every failure degrades to an empty result.
package badge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/wakadash/wakadash/internal/logger"
)

var (
	// A human-readable quantity phrase, e.g. "1.80 million%20lines".
	linesPhraseRe = regexp.MustCompile(`(?i)([0-9.,]+\s*(?:%20million|k|thousand|M|K)\s*(?:%20))`)

	// A shields.io badge URL embedded in the document.
	badgeURLRe = regexp.MustCompile(`(?i)https?://img\.shields\.io/badge/[^)\s]+`)

	trailingColorRe = regexp.MustCompile(`-[^-]+$`)
)

// Scraper fetches and scrapes the badge document.
type Scraper struct {
	url        string
	httpClient *http.Client
}

// New creates a scraper for the given document URL. A nil httpClient gets a
// default with a 30 second timeout.
func New(url string, httpClient *http.Client) *Scraper {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Scraper{url: url, httpClient: httpClient}
}

// LinesText returns the extracted metric text, or "" when the document is
// unavailable or neither extraction strategy matches.
func (s *Scraper) LinesText(ctx context.Context) string {
	doc, err := s.fetch(ctx)
	if err != nil {
		logger.Debug("badge document unavailable", "url", s.url, "error", err)
		return ""
	}

	// Strategy 1: a readable quantity phrase in the raw document.
	if m := linesPhraseRe.FindStringSubmatch(doc); len(m) > 1 {
		if decoded, err := url.PathUnescape(strings.TrimSpace(m[1])); err == nil {
			return strings.TrimSpace(decoded)
		}
		return ""
	}

	// Strategy 2: decode the badge message from a shields.io URL.
	return messageFromBadgeURL(badgeURLRe.FindString(doc))
}

// messageFromBadgeURL extracts the message from a shields.io badge URL,
// whose path segment is encoded as label-message-color.
func messageFromBadgeURL(badgeURL string) string {
	if badgeURL == "" {
		return ""
	}

	_, segment, found := strings.Cut(badgeURL, "/badge/")
	if !found {
		return ""
	}
	segment, _, _ = strings.Cut(segment, "?")
	if segment == "" {
		return ""
	}

	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return ""
	}

	withoutColor := trailingColorRe.ReplaceAllString(decoded, "")
	if i := strings.LastIndex(withoutColor, "-"); i != -1 {
		return strings.TrimSpace(withoutColor[i+1:])
	}
	return strings.TrimSpace(withoutColor)
}

func (s *Scraper) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("badge request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("badge request failed (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}
