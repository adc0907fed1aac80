// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wakadash/wakadash/internal/cache"
	"github.com/wakadash/wakadash/internal/config"
	"github.com/wakadash/wakadash/internal/logger"
	"github.com/wakadash/wakadash/internal/models"
	"github.com/wakadash/wakadash/internal/services/activity"
	"github.com/wakadash/wakadash/internal/services/badge"
	"github.com/wakadash/wakadash/internal/services/github"
	"github.com/wakadash/wakadash/internal/services/wakatime"
)

// Cache lifetimes per upstream. Stats move slowly; the activity feed is
// near real time; the badge readme changes rarely.
const (
	statsCacheTTL = 5 * time.Minute
	feedCacheTTL  = time.Minute
	badgeCacheTTL = time.Hour
)

type (
	// ActivityUpdatedEvent is emitted after a successful aggregation run.
	ActivityUpdatedEvent struct {
		View *models.ActivityViewModel
	}

	// ConfigReloadedEvent is emitted when the watched env file changes on
	// disk. Subscribers decide whether to rebuild.
	ConfigReloadedEvent struct {
		Path string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ActivityUpdatedEvent) isServiceEvent() {}
func (ConfigReloadedEvent) isServiceEvent()  {}
func (ErrorEvent) isServiceEvent()           {}

// Manager wires the source clients, response cache, and aggregator, and
// routes events to subscribers.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	store       *cache.Store
	activity    *activity.Service
	watcher     *config.Watcher
	subscribers []chan<- ServiceEvent
	lastView    *models.ActivityViewModel
}

// NewManager creates a new service manager from the loaded configuration.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{cfg: cfg}

	var err error
	m.store, err = cache.New(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open response cache: %w", err)
	}

	m.buildClients(cfg)

	m.watcher, err = config.NewWatcher(cfg.EnvFile, func() {
		if err := m.Reload(); err != nil {
			logger.Warn("config reload failed", "error", err)
			m.broadcast(ErrorEvent{Service: "config", Error: err})
			return
		}
		m.broadcast(ConfigReloadedEvent{Path: cfg.EnvFile})
	})
	if err != nil {
		logger.Warn("config watcher disabled", "error", err)
	}

	return m, nil
}

// buildClients constructs the source clients and aggregator for cfg. The
// caller holds the write lock, except during initial construction.
func (m *Manager) buildClients(cfg *config.Config) {
	wakaClient := wakatime.New(cfg.WakaTimeBaseURL, cfg.WakaTimeAPIKey, m.httpClient(cfg, statsCacheTTL))
	ghClient := github.New(cfg.GitHubBaseURL, cfg.GitHubUser, m.httpClient(cfg, feedCacheTTL))
	badgeScraper := badge.New(cfg.BadgeURL, m.httpClient(cfg, badgeCacheTTL))

	m.activity = activity.New(wakaClient, ghClient, badgeScraper)
}

// Reload re-reads configuration and rebuilds the source clients, so a
// corrected credential or base URL takes effect without a restart.
func (m *Manager) Reload() error {
	m.mu.RLock()
	envFile := m.cfg.EnvFile
	m.mu.RUnlock()

	cfg, err := config.Reload(envFile)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cfg = cfg
	m.buildClients(cfg)
	m.mu.Unlock()
	return nil
}

func (m *Manager) httpClient(cfg *config.Config, ttl time.Duration) *http.Client {
	return &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: cache.NewTransport(m.store, ttl, nil),
	}
}

// BuildActivity runs one aggregation pass. Successful views are retained
// for LastActivity and broadcast to subscribers; failures broadcast an
// ErrorEvent and leave the previous view in place.
func (m *Manager) BuildActivity(ctx context.Context) (*models.ActivityViewModel, error) {
	m.mu.RLock()
	svc := m.activity
	m.mu.RUnlock()

	view, err := svc.Build(ctx)
	if err != nil {
		m.broadcast(ErrorEvent{Service: "activity", Error: err})
		return nil, err
	}

	m.mu.Lock()
	m.lastView = view
	m.mu.Unlock()

	m.broadcast(ActivityUpdatedEvent{View: view})
	return view, nil
}

// LastActivity returns the most recent successful view, or nil before the
// first completed run.
func (m *Manager) LastActivity() *models.ActivityViewModel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastView
}

// Config returns the current configuration. The pointer is replaced
// wholesale on reload, never mutated in place.
func (m *Manager) Config() *config.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// CachePath returns the response cache location, or an empty string for
// the in-memory cache.
func (m *Manager) CachePath() string {
	if m.store == nil {
		return ""
	}
	return m.store.Path()
}

func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close stops the config watcher and closes the response cache.
func (m *Manager) Close() error {
	var firstErr error
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			firstErr = err
		}
	}
	if m.store != nil {
		if err := m.store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	return firstErr
}
