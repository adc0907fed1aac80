// Package cache provides a short-lived, sqlite-backed HTTP response cache.
// Source results are cached read-through by endpoint URL with a fixed TTL;
// there is no invalidation beyond expiry.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// Store wraps the SQL database holding cached responses.
type Store struct {
	*sql.DB
	path string
}

// New creates the cache store and initializes the schema. An empty path
// opens an in-memory cache.
func New(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	} else {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create cache directory: %w", err)
			}
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to cache database: %w", err)
	}

	s := &Store{DB: sqlDB, path: path}

	if err := s.configure(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to configure cache database: %w", err)
	}

	if err := s.createSchema(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return s, nil
}

// Path returns the cache database file path.
func (s *Store) Path() string {
	return s.path
}

// configure sets up database pragmas.
func (s *Store) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := s.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) createSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS responses (
		endpoint     TEXT PRIMARY KEY,
		content_type TEXT NOT NULL DEFAULT '',
		body         BLOB NOT NULL,
		fetched_at   INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_fetched_at ON responses(fetched_at);
	`
	_, err := s.Exec(schema)
	return err
}

// Entry is a cached response body with its content type.
type Entry struct {
	Body        []byte
	ContentType string
	FetchedAt   time.Time
}

// Get returns the cached entry for an endpoint if it is younger than ttl.
func (s *Store) Get(endpoint string, ttl time.Duration) (*Entry, error) {
	cutoff := time.Now().Add(-ttl).Unix()

	row := s.QueryRow(
		`SELECT body, content_type, fetched_at FROM responses
		 WHERE endpoint = ? AND fetched_at >= ?`,
		endpoint, cutoff,
	)

	var e Entry
	var fetchedAt int64
	if err := row.Scan(&e.Body, &e.ContentType, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached response: %w", err)
	}
	e.FetchedAt = time.Unix(fetchedAt, 0)
	return &e, nil
}

// Put stores a response body for an endpoint, replacing any previous entry.
func (s *Store) Put(endpoint, contentType string, body []byte) error {
	_, err := s.Exec(
		`INSERT INTO responses (endpoint, content_type, body, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(endpoint) DO UPDATE SET
			content_type = excluded.content_type,
			body = excluded.body,
			fetched_at = excluded.fetched_at`,
		endpoint, contentType, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store cached response: %w", err)
	}
	return nil
}

// PurgeOlderThan removes entries older than the given age.
func (s *Store) PurgeOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age).Unix()
	res, err := s.Exec(`DELETE FROM responses WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
