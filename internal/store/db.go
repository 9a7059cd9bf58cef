// Package store persists tracked portfolio snapshots and contact messages
// in a local SQLite file.
package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// busyTimeout is how long a writer waits on a locked database.
const busyTimeout = 5 * time.Second

// DB is the folio history database.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the database at path, creating the file and its directory on
// first use, and applies pending migrations.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	conn, err := sql.Open("sqlite", dsn("file:"+path, "journal_mode(WAL)"))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return initialize(conn, path)
}

// OpenInMemory opens a private in-memory database.
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", dsn(":memory:"))
	if err != nil {
		return nil, err
	}
	// A second pooled connection would see a different, empty database.
	conn.SetMaxOpenConns(1)
	return initialize(conn, ":memory:")
}

// dsn attaches per-connection pragmas so pooled connections agree on them.
func dsn(name string, extra ...string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	for _, p := range extra {
		q.Add("_pragma", p)
	}
	return name + "?" + q.Encode()
}

func initialize(conn *sql.DB, path string) (*DB, error) {
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}
	db := &DB{conn: conn, path: path}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Path reports where the database lives, or ":memory:".
func (db *DB) Path() string {
	return db.path
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
