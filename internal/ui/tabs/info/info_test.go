package info

import (
	"strings"
	"testing"
	"time"

	"github.com/wakadash/wakadash/internal/app"
	"github.com/wakadash/wakadash/internal/config"
	"github.com/wakadash/wakadash/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		WakaTimeAPIKey:  "waka_1234abcd",
		WakaTimeBaseURL: "https://wakatime.com/api/v1",
		GitHubBaseURL:   "https://api.github.com",
		GitHubUser:      "octocat",
		BadgeURL:        "https://wakatime.com/badge/user/octocat.svg",
		CachePath:       "/tmp/wakadash/cache.db",
		RefreshInterval: 5 * time.Minute,
		RequestTimeout:  30 * time.Second,
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState(), testConfig())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestViewRendersConfiguration(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(100, 40)

	view := m.View()
	for _, want := range []string{
		"Configuration",
		"octocat",
		"https://wakatime.com/api/v1",
		"cache.db",
		"5m0s",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewMasksAPIKey(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(100, 40)

	view := m.View()
	if strings.Contains(view, "waka_1234abcd") {
		t.Error("view leaks the full API key")
	}
	if !strings.Contains(view, "****abcd") {
		t.Error("view missing masked key suffix")
	}
}

func TestViewWithoutConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "Configuration not loaded") {
		t.Error("view missing missing-config notice")
	}
}

func TestViewLastRefresh(t *testing.T) {
	state := app.NewState()
	m := New(state, testConfig())
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "never") {
		t.Error("expected 'never' before first refresh")
	}

	state.SetView(&models.ActivityViewModel{TotalTimeText: "1 hrs"})
	if strings.Contains(m.View(), "never") {
		t.Error("still shows 'never' after a refresh")
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "not set"},
		{"ab", "****"},
		{"secret-token-abcd", "****abcd"},
	}
	for _, tt := range tests {
		if got := maskSecret(tt.in); got != tt.want {
			t.Errorf("maskSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	m := New(app.NewState(), testConfig())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp returned no bindings")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp returned no bindings")
	}
}
