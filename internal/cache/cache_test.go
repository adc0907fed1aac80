package cache

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("https://example.com/a", "application/json", []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	entry, err := s.Get("https://example.com/a", time.Minute)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry == nil {
		t.Fatal("Get returned nil for fresh entry")
	}
	if string(entry.Body) != `{"ok":true}` {
		t.Errorf("Body = %q", entry.Body)
	}
	if entry.ContentType != "application/json" {
		t.Errorf("ContentType = %q", entry.ContentType)
	}
}

func TestStore_GetUnknownEndpoint(t *testing.T) {
	s := newTestStore(t)
	entry, err := s.Get("https://example.com/missing", time.Minute)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry != nil {
		t.Error("Get returned entry for unknown endpoint")
	}
}

func TestStore_ExpiredEntryIsMiss(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put("https://example.com/a", "", []byte("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// A zero TTL means everything already written is stale.
	entry, err := s.Get("https://example.com/a", 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry != nil {
		t.Error("expired entry should be a miss")
	}
}

func TestStore_PutReplaces(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put("k", "", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", "", []byte("new")); err != nil {
		t.Fatal(err)
	}
	entry, err := s.Get("k", time.Minute)
	if err != nil || entry == nil {
		t.Fatalf("Get: %v, %v", entry, err)
	}
	if string(entry.Body) != "new" {
		t.Errorf("Body = %q, want new", entry.Body)
	}
}

func TestStore_PurgeOlderThan(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put("k", "", []byte("x")); err != nil {
		t.Fatal(err)
	}
	n, err := s.PurgeOlderThan(0)
	if err != nil {
		t.Fatalf("PurgeOlderThan: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d rows, want 1", n)
	}
}

func TestTransport_ServesFromCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	s := newTestStore(t)
	client := &http.Client{Transport: NewTransport(s, time.Minute, nil)}

	for range 3 {
		resp, err := client.Get(server.URL + "/data")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if string(body) != "payload" {
			t.Errorf("body = %q", body)
		}
	}

	if hits != 1 {
		t.Errorf("server saw %d requests, want 1", hits)
	}
}

func TestTransport_DoesNotCacheErrors(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := newTestStore(t)
	client := &http.Client{Transport: NewTransport(s, time.Minute, nil)}

	for range 2 {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("status = %d", resp.StatusCode)
		}
	}

	if hits != 2 {
		t.Errorf("server saw %d requests, want 2 (errors must not be cached)", hits)
	}
}

func TestTransport_NilStorePassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewTransport(nil, time.Minute, nil)}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
