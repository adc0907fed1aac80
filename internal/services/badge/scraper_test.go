package badge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestScraper(t *testing.T, body string, status int) *Scraper {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return New(server.URL, nil)
}

func TestLinesText_QuantityPhrase(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			"million phrase",
			"I've written 1.80%20million%20lines of code.",
			"1.80 million",
		},
		{
			"thousand suffix",
			"about 120k%20lines so far",
			"120k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScraper(t, tt.doc, http.StatusOK)
			if got := s.LinesText(context.Background()); got != tt.expected {
				t.Errorf("LinesText = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLinesText_BadgeURLFallback(t *testing.T) {
	doc := "![lines](https://img.shields.io/badge/Total%20Lines-1.80%20million-blue?style=flat)"
	s := newTestScraper(t, doc, http.StatusOK)
	if got := s.LinesText(context.Background()); got != "1.80 million" {
		t.Errorf("LinesText = %q, want %q", got, "1.80 million")
	}
}

func TestLinesText_NoMatch(t *testing.T) {
	s := newTestScraper(t, "plain readme with no badge", http.StatusOK)
	if got := s.LinesText(context.Background()); got != "" {
		t.Errorf("LinesText = %q, want empty", got)
	}
}

func TestLinesText_HTTPErrorSwallowed(t *testing.T) {
	s := newTestScraper(t, "ignored", http.StatusNotFound)
	if got := s.LinesText(context.Background()); got != "" {
		t.Errorf("LinesText = %q, want empty", got)
	}
}

func TestMessageFromBadgeURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			"label message color",
			"https://img.shields.io/badge/Total%20Lines-1.80%20million-blue",
			"1.80 million",
		},
		{
			"query string stripped",
			"https://img.shields.io/badge/lines-42k-green?style=flat-square",
			"42k",
		},
		{
			"segment without hyphens",
			"https://img.shields.io/badge/justone",
			"justone",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := messageFromBadgeURL(tt.url); got != tt.expected {
				t.Errorf("messageFromBadgeURL(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}
