package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// migrations are applied in order; migrations[i] brings the schema to
// version i+1.
var migrations = []func(*sql.Tx) error{
	migrateHistory,
}

// currentSchemaVersion is the version a fully migrated database reports.
var currentSchemaVersion = len(migrations)

// Migrate applies every migration newer than the stored schema version.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	applied, err := db.SchemaVersion()
	if err != nil {
		return err
	}

	for v := applied; v < len(migrations); v++ {
		if err := db.applyMigration(v+1, migrations[v]); err != nil {
			return fmt.Errorf("migration v%d: %w", v+1, err)
		}
	}
	return nil
}

// SchemaVersion returns the applied schema version, 0 for a fresh file.
func (db *DB) SchemaVersion() (int, error) {
	var v int
	err := db.conn.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

func (db *DB) applyMigration(version int, fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schema_version`); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version); err != nil {
		return err
	}
	return tx.Commit()
}

// migrateHistory creates the snapshot history and contact inbox tables.
func migrateHistory(tx *sql.Tx) error {
	return execAll(tx,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at TEXT NOT NULL,
			version  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS provider_snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			source      TEXT NOT NULL,
			status      TEXT NOT NULL,
			fetched_at  TEXT,
			message     TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS metrics (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			source      TEXT NOT NULL,
			name        TEXT NOT NULL,
			value       REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS language_shares (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			rank        INTEGER NOT NULL,
			name        TEXT NOT NULL,
			percentage  INTEGER NOT NULL,
			bytes       INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id          TEXT PRIMARY KEY,
			received_at TEXT NOT NULL,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL,
			message     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_provider_snapshots_snapshot ON provider_snapshots(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_metrics_snapshot ON metrics(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_metrics_name ON metrics(name)`,
		`CREATE INDEX IF NOT EXISTS idx_language_shares_snapshot ON language_shares(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_received ON contact_messages(received_at)`,
	)
}

func execAll(tx *sql.Tx, stmts ...string) error {
	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}
