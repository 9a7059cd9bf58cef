package store

import (
	"database/sql"
	"errors"
	"time"
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(version string) (int64, error) {
	return createSnapshot(db.conn, version, time.Now())
}

func createSnapshot(ex execer, version string, at time.Time) (int64, error) {
	result, err := ex.Exec(
		"INSERT INTO snapshots (taken_at, version) VALUES (?, ?)",
		at.UTC().Format(time.RFC3339), version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, version FROM snapshots ORDER BY id DESC LIMIT 1")
	return scanSnapshot(row)
}

// GetSnapshot returns a snapshot by ID.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, version FROM snapshots WHERE id = ?", id)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous, etc.).
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	if n < 1 {
		return nil, nil
	}
	row := db.conn.QueryRow(
		"SELECT id, taken_at, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

// GetRecentSnapshots returns up to n snapshots, newest first.
func (db *DB) GetRecentSnapshots(n int) ([]Snapshot, error) {
	rows, err := db.conn.Query("SELECT id, taken_at, version FROM snapshots ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertProviderSnapshot records a provider's status for a snapshot.
func (db *DB) InsertProviderSnapshot(ps *ProviderSnapshot) error {
	return insertProviderSnapshot(db.conn, ps)
}

func insertProviderSnapshot(ex execer, ps *ProviderSnapshot) error {
	var fetchedAt sql.NullString
	if !ps.FetchedAt.IsZero() {
		fetchedAt = sql.NullString{String: ps.FetchedAt.UTC().Format(time.RFC3339), Valid: true}
	}
	_, err := ex.Exec(
		`INSERT INTO provider_snapshots (snapshot_id, source, status, fetched_at, message)
		VALUES (?, ?, ?, ?, ?)`,
		ps.SnapshotID, ps.Source, ps.Status, fetchedAt, ps.Message,
	)
	return err
}

// GetProviderSnapshots returns every provider row of a snapshot.
func (db *DB) GetProviderSnapshots(snapshotID int64) ([]ProviderSnapshot, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, source, status, fetched_at, message
		 FROM provider_snapshots WHERE snapshot_id = ? ORDER BY id`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ProviderSnapshot
	for rows.Next() {
		var ps ProviderSnapshot
		var fetchedAt, message sql.NullString
		if err := rows.Scan(&ps.ID, &ps.SnapshotID, &ps.Source, &ps.Status, &fetchedAt, &message); err != nil {
			return nil, err
		}
		if fetchedAt.Valid {
			ps.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt.String)
		}
		ps.Message = message.String
		out = append(out, ps)
	}
	return out, rows.Err()
}

// InsertMetric inserts a metric for a snapshot.
func (db *DB) InsertMetric(snapshotID int64, source, name string, value float64) error {
	return insertMetric(db.conn, snapshotID, source, name, value)
}

func insertMetric(ex execer, snapshotID int64, source, name string, value float64) error {
	_, err := ex.Exec(
		"INSERT INTO metrics (snapshot_id, source, name, value) VALUES (?, ?, ?, ?)",
		snapshotID, source, name, value,
	)
	return err
}

// GetMetrics returns all metrics for a snapshot in insertion order.
func (db *DB) GetMetrics(snapshotID int64) ([]Metric, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, source, name, value FROM metrics WHERE snapshot_id = ? ORDER BY id",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []Metric
	for rows.Next() {
		var m Metric
		if err := rows.Scan(&m.ID, &m.SnapshotID, &m.Source, &m.Name, &m.Value); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// InsertLanguageShare records one ranked language share.
func (db *DB) InsertLanguageShare(ls *LanguageShareRow) error {
	return insertLanguageShare(db.conn, ls)
}

func insertLanguageShare(ex execer, ls *LanguageShareRow) error {
	_, err := ex.Exec(
		"INSERT INTO language_shares (snapshot_id, rank, name, percentage, bytes) VALUES (?, ?, ?, ?, ?)",
		ls.SnapshotID, ls.Rank, ls.Name, ls.Percentage, ls.Bytes,
	)
	return err
}

// GetLanguageShares returns a snapshot's breakdown ordered by rank.
func (db *DB) GetLanguageShares(snapshotID int64) ([]LanguageShareRow, error) {
	rows, err := db.conn.Query(
		"SELECT snapshot_id, rank, name, percentage, bytes FROM language_shares WHERE snapshot_id = ? ORDER BY rank",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	return scanLanguageShares(rows)
}

// LanguageBaseline returns the breakdown of the latest snapshot at or
// before snapshotID that recorded one. Runs without live GitHub data are
// skipped.
func (db *DB) LanguageBaseline(snapshotID int64) ([]LanguageShareRow, error) {
	rows, err := db.conn.Query(`
		SELECT snapshot_id, rank, name, percentage, bytes FROM language_shares
		WHERE snapshot_id = (SELECT MAX(snapshot_id) FROM language_shares WHERE snapshot_id <= ?)
		ORDER BY rank`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	return scanLanguageShares(rows)
}

func scanLanguageShares(rows *sql.Rows) ([]LanguageShareRow, error) {
	defer func() { _ = rows.Close() }()

	var out []LanguageShareRow
	for rows.Next() {
		var ls LanguageShareRow
		if err := rows.Scan(&ls.SnapshotID, &ls.Rank, &ls.Name, &ls.Percentage, &ls.Bytes); err != nil {
			return nil, err
		}
		out = append(out, ls)
	}
	return out, rows.Err()
}

// MetricBaseline returns, for every source and metric name, the value from
// the latest snapshot at or before snapshotID that recorded it. A run where
// a provider fell back records no metrics, so its last live values stand.
func (db *DB) MetricBaseline(snapshotID int64) ([]Metric, error) {
	rows, err := db.conn.Query(`
		SELECT m.id, m.snapshot_id, m.source, m.name, m.value
		FROM metrics m
		JOIN (
			SELECT source, name, MAX(snapshot_id) AS snapshot_id
			FROM metrics
			WHERE snapshot_id <= ?
			GROUP BY source, name
		) latest ON m.source = latest.source AND m.name = latest.name AND m.snapshot_id = latest.snapshot_id
		ORDER BY m.snapshot_id, m.id`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []Metric
	for rows.Next() {
		var m Metric
		if err := rows.Scan(&m.ID, &m.SnapshotID, &m.Source, &m.Name, &m.Value); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
