package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "octo", nil)
}

func TestLatestPublicCommit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octo/events/public" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"type":"WatchEvent","repo":{"name":"octo/starred"}},
			{"type":"PushEvent","repo":{"name":"octo/widgets"},
			 "payload":{"head":"abc123","commits":[{"sha":"abc123","message":"fix build","author":{"name":"Octo Cat"}}]},
			 "actor":{"login":"octo","avatar_url":"https://example.com/a.png"},
			 "created_at":"2025-08-30T10:00:00Z"},
			{"type":"PushEvent","repo":{"name":"octo/older"},
			 "payload":{"head":"def456","commits":[{"sha":"def456","message":"older"}]}}
		]`))
	})

	got := c.LatestPublicCommit(context.Background())
	if got == nil {
		t.Fatal("LatestPublicCommit returned nil")
	}
	if got.SHA != "abc123" || got.Repo != "octo/widgets" {
		t.Errorf("got %q @ %q", got.SHA, got.Repo)
	}
	if got.Message != "fix build" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.AuthorName != "Octo Cat" || got.AuthorLogin != "octo" {
		t.Errorf("author = %q / %q", got.AuthorName, got.AuthorLogin)
	}
	if got.URL != "https://github.com/octo/widgets/commit/abc123" {
		t.Errorf("URL = %q", got.URL)
	}
	if got.CommittedAt != "2025-08-30T10:00:00Z" {
		t.Errorf("CommittedAt = %q", got.CommittedAt)
	}
}

func TestLatestPublicCommit_HeadCommitFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"type":"PushEvent","repo":{"name":"octo/widgets"},
			 "payload":{"head_commit":{"sha":"fff999","message":"direct push"}}}
		]`))
	})

	got := c.LatestPublicCommit(context.Background())
	if got == nil {
		t.Fatal("LatestPublicCommit returned nil")
	}
	if got.SHA != "fff999" {
		t.Errorf("SHA = %q, want head_commit fallback", got.SHA)
	}
}

func TestLatestPublicCommit_SkipsUnresolvableEvents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"type":"PushEvent","repo":{"name":"octo/no-sha"},"payload":{}},
			{"type":"PushEvent","payload":{"head":"abc"}},
			{"type":"PushEvent","repo":{"name":"octo/good"},"payload":{"head":"abc123"}}
		]`))
	})

	got := c.LatestPublicCommit(context.Background())
	if got == nil {
		t.Fatal("LatestPublicCommit returned nil")
	}
	if got.Repo != "octo/good" {
		t.Errorf("Repo = %q, want octo/good (earlier events unresolvable)", got.Repo)
	}
}

func TestLatestPublicCommit_NoMatchReturnsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"type":"WatchEvent"},{"type":"ForkEvent"}]`))
	})

	if got := c.LatestPublicCommit(context.Background()); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestLatestPublicCommit_SwallowsFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			if got := c.LatestPublicCommit(context.Background()); got != nil {
				t.Errorf("got %+v, want nil", got)
			}
		})
	}
}

func TestCommitDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octo/widgets/commits/abc123" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"commit":{"message":"fix build\n\nlonger body","author":{"name":"Octo Cat","date":"2025-08-30T09:58:00Z"}},
			"author":{"login":"octo","avatar_url":"https://example.com/a.png"},
			"files":[{"filename":"a.go"},{"filename":"b.go"}],
			"stats":{"additions":12,"deletions":3}
		}`))
	})

	got := c.CommitDetails(context.Background(), "octo/widgets", "abc123")
	if got == nil {
		t.Fatal("CommitDetails returned nil")
	}
	if got.Message != "fix build\n\nlonger body" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.AuthorName != "Octo Cat" || got.AuthorLogin != "octo" {
		t.Errorf("author = %q / %q", got.AuthorName, got.AuthorLogin)
	}
	if got.CommittedAt != "2025-08-30T09:58:00Z" {
		t.Errorf("CommittedAt = %q", got.CommittedAt)
	}
	if got.FilesChanged == nil || *got.FilesChanged != 2 {
		t.Errorf("FilesChanged = %v, want 2", got.FilesChanged)
	}
	if got.Additions == nil || *got.Additions != 12 || got.Deletions == nil || *got.Deletions != 3 {
		t.Errorf("stats = %v/%v", got.Additions, got.Deletions)
	}
}

func TestCommitDetails_AbsentOptionalFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"commit":{"message":"m","author":{"name":"n"}}}`))
	})

	got := c.CommitDetails(context.Background(), "octo/widgets", "abc")
	if got == nil {
		t.Fatal("CommitDetails returned nil")
	}
	if got.FilesChanged != nil || got.Additions != nil || got.Deletions != nil {
		t.Error("absent files/stats must stay nil, not zero")
	}
	if got.AuthorLogin != "" {
		t.Errorf("AuthorLogin = %q, want empty", got.AuthorLogin)
	}
}

func TestCommitDetails_SwallowsFailures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if got := c.CommitDetails(context.Background(), "octo/widgets", "abc"); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}
