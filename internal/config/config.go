// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// API defaults. The base URLs are overridable for tests and self-hosted
// deployments; everything else mirrors the upstream services.
const (
	DefaultWakaTimeBaseURL = "https://wakatime.com/api/v1"
	DefaultGitHubBaseURL   = "https://api.github.com"

	defaultRefreshInterval = 5 * time.Minute
	defaultRequestTimeout  = 30 * time.Second
)

// Config holds the application configuration.
type Config struct {
	WakaTimeAPIKey  string
	WakaTimeBaseURL string
	GitHubBaseURL   string
	GitHubUser      string
	BadgeURL        string
	CachePath       string
	RefreshInterval time.Duration
	RequestTimeout  time.Duration

	// EnvFile is the .env file that was loaded, if any. The config watcher
	// monitors it for credential changes.
	EnvFile string
}

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	var envFile string
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			envFile = path
			break
		}
	}

	apiKey := os.Getenv("WAKATIME_API_KEY")
	if apiKey == "" {
		apiKey = loadWakaTimeCfgKey()
	}

	user := getEnvString("GITHUB_USERNAME", "")
	if user == "" {
		return nil, fmt.Errorf("GITHUB_USERNAME is required (set via env or .env)")
	}

	cfg := &Config{
		WakaTimeAPIKey:  apiKey,
		WakaTimeBaseURL: getEnvString("WAKATIME_BASE_URL", DefaultWakaTimeBaseURL),
		GitHubBaseURL:   getEnvString("GITHUB_BASE_URL", DefaultGitHubBaseURL),
		GitHubUser:      user,
		BadgeURL:        getEnvString("BADGE_URL", defaultBadgeURL(user)),
		CachePath:       getEnvString("CACHE_PATH", getDefaultCachePath()),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", defaultRefreshInterval),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", defaultRequestTimeout),
		EnvFile:         envFile,
	}

	// Ensure cache directory exists
	if err := ensureDir(filepath.Dir(cfg.CachePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Reload re-reads configuration after the watched env file changed on disk.
// godotenv.Load never overrides variables that are already set, so the file
// is re-applied with override semantics first.
func Reload(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return nil, fmt.Errorf("failed to re-read %s: %w", envFile, err)
		}
	}
	return Load()
}

// defaultBadgeURL points at the profile repository readme, which carries the
// shields.io "total lines" badge.
func defaultBadgeURL(user string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/main/readme.md", user, user)
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "wakadash", ".env"),
			filepath.Join(home, ".wakadash", ".env"),
		)
	}

	return paths
}

// getDefaultCachePath returns the default path for the SQLite response cache.
func getDefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cache.db"
	}
	return filepath.Join(home, ".config", "wakadash", "cache.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
