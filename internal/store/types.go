// Package store provides SQLite persistence for profile history snapshots
// and contact-form submissions.
package store

import "time"

// Snapshot is one recorded aggregation cycle.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Version string    `json:"version"`
}

// ProviderSnapshot records how one provider resolved within a snapshot.
type ProviderSnapshot struct {
	ID         int64     `json:"id"`
	SnapshotID int64     `json:"snapshot_id"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	FetchedAt  time.Time `json:"fetched_at"`
	Message    string    `json:"message,omitempty"`
}

// Metric is a named numeric value within a snapshot.
type Metric struct {
	ID         int64   `json:"id"`
	SnapshotID int64   `json:"snapshot_id"`
	Source     string  `json:"source"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
}

// LanguageShareRow is one ranked entry of a recorded language breakdown.
type LanguageShareRow struct {
	SnapshotID int64  `json:"snapshot_id"`
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Bytes      int64  `json:"bytes"`
}

// ContactMessage is a recorded contact-form submission.
type ContactMessage struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
}

// SnapshotDiff represents the comparison between two snapshots.
type SnapshotDiff struct {
	Previous  *Snapshot        `json:"previous"`
	Current   *Snapshot        `json:"current"`
	Deltas    []MetricDelta    `json:"deltas"`
	Languages []LanguageChange `json:"languages,omitempty"`
}

// MetricDelta represents the change in a single metric between snapshots.
type MetricDelta struct {
	Name      string  `json:"name"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"` // "improved", "regressed", "unchanged"

	// Since is the snapshot the previous value was recorded in.
	Since int64 `json:"since_snapshot"`
}

// LanguageChange is the movement of one language's share between two
// recorded breakdowns.
type LanguageChange struct {
	Name     string `json:"name"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
	Delta    int    `json:"delta"`
	New      bool   `json:"new,omitempty"`
	Dropped  bool   `json:"dropped,omitempty"`
}
