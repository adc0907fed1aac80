package cache

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/wakadash/wakadash/internal/logger"
)

// Transport is an http.RoundTripper that serves successful GET responses
// from the store while they are younger than the TTL. Caching lives here,
// in the transport layer, so the source clients stay cache-free.
type Transport struct {
	store *Store
	base  http.RoundTripper
	ttl   time.Duration
}

// NewTransport wraps base with read-through caching. A nil store disables
// caching; a nil base falls back to http.DefaultTransport.
func NewTransport(store *Store, ttl time.Duration, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{store: store, base: base, ttl: ttl}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.store == nil || req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}

	key := req.URL.String()

	entry, err := t.store.Get(key, t.ttl)
	if err != nil {
		logger.Warn("cache read failed", "endpoint", key, "error", err)
	} else if entry != nil {
		return cachedResponse(req, entry), nil
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Only 200s are worth keeping; errors must surface fresh every time.
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		logger.Warn("failed to close response body", "error", closeErr)
	}

	if err := t.store.Put(key, resp.Header.Get("Content-Type"), body); err != nil {
		logger.Warn("cache write failed", "endpoint", key, "error", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

func cachedResponse(req *http.Request, entry *Entry) *http.Response {
	header := make(http.Header)
	if entry.ContentType != "" {
		header.Set("Content-Type", entry.ContentType)
	}
	return &http.Response{
		Status:        http.StatusText(http.StatusOK),
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.Body)),
		ContentLength: int64(len(entry.Body)),
		Request:       req,
	}
}
