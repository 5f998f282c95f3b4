// Package database opens the libsql connection that backs local state.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// Client wraps the libsql connection.
type Client struct {
	*sql.DB
}

// Options configures how the connection is opened.
type Options struct {
	AuthToken string
	Ping      bool
}

// Open connects to url, which is either a local file: URL or a remote libsql URL.
// Parent directories of a local database file are created on demand.
func Open(url string, opts Options) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	if path, ok := localPath(url); ok {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	connStr := url
	if opts.AuthToken != "" {
		connStr += "?authToken=" + opts.AuthToken
	}
	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if IsRemote(url) {
		// Turso closes idle Hrana streams; stale pooled connections fail with "stream not found".
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(0)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		db.SetMaxOpenConns(1)
	}

	if opts.Ping {
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pinging database: %w", err)
		}
	}
	return &Client{DB: db}, nil
}

// IsRemote reports whether url points at a libsql server rather than a file.
func IsRemote(url string) bool {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

func localPath(url string) (string, bool) {
	path, ok := strings.CutPrefix(url, "file:")
	if !ok || strings.HasPrefix(path, ":memory:") {
		return "", false
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path, path != ""
}

// IsStreamError checks if an error is a Turso "stream not found" error.
func IsStreamError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "stream not found")
}

// WithRetry runs fn, retrying up to maxRetries times on stream errors.
func WithRetry[T any](ctx context.Context, maxRetries int, fn func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err = fn()
		if err == nil || !IsStreamError(err) || attempt == maxRetries {
			return result, err
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
	return result, err
}
