package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanbv/folio/internal/profile"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func liveGitHub() *profile.Snapshot {
	return &profile.Snapshot{
		Source:          profile.SourceGitHub,
		Status:          profile.StatusLive,
		FetchedAt:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		RepositoryCount: 12,
		StarCount:       30,
		ForkCount:       4,
		FollowerCount:   9,
		FollowingCount:  3,
		LanguageBreakdown: []profile.LanguageShare{
			{Name: "Go", Percentage: 70, Bytes: 700},
			{Name: "Shell", Percentage: 30, Bytes: 300},
		},
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate())

	v, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, path, db.Path())
	assert.FileExists(t, path)

	id, err := db.CreateSnapshot("test")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestOpen_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")
	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.CreateSnapshot("v1")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	v, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)

	id, err := db.CreateSnapshot("v2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)
	_, err := db.conn.Exec(`INSERT INTO metrics (snapshot_id, source, name, value) VALUES (99, 'github', 'stars', 1)`)
	assert.Error(t, err)
}

func TestSnapshots_Ordering(t *testing.T) {
	db := openTestDB(t)

	none, err := db.GetLatestSnapshot()
	require.NoError(t, err)
	assert.Nil(t, none)

	for range 3 {
		_, err := db.CreateSnapshot("v1")
		require.NoError(t, err)
	}

	latest, err := db.GetSnapshotN(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest.ID)

	prev, err := db.GetSnapshotN(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), prev.ID)

	missing, err := db.GetSnapshotN(9)
	require.NoError(t, err)
	assert.Nil(t, missing)

	recent, err := db.GetRecentSnapshots(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(3), recent[0].ID)
	assert.Equal(t, "v1", recent[1].Version)

	byID, err := db.GetSnapshot(1)
	require.NoError(t, err)
	assert.False(t, byID.TakenAt.IsZero())
}

func TestRecord_LiveSnapshots(t *testing.T) {
	db := openTestDB(t)
	lc := &profile.Snapshot{
		Source: profile.SourceLeetCode,
		Status: profile.StatusLive,
		Coding: &profile.CodingStats{TotalSolved: 200, Ranking: 40000, AcceptanceRate: 61.5},
	}

	id, err := db.Record("v1", liveGitHub(), lc, nil)
	require.NoError(t, err)

	providers, err := db.GetProviderSnapshots(id)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "github", providers[0].Source)
	assert.Equal(t, "live", providers[0].Status)
	assert.Equal(t, liveGitHub().FetchedAt, providers[0].FetchedAt)
	assert.True(t, providers[1].FetchedAt.IsZero())

	metrics, err := db.GetMetrics(id)
	require.NoError(t, err)
	byName := map[string]float64{}
	for _, m := range metrics {
		byName[m.Name] = m.Value
	}
	assert.Equal(t, 30.0, byName[MetricStars])
	assert.Equal(t, 40000.0, byName[MetricRanking])
	assert.Equal(t, 61.5, byName[MetricAcceptanceRate])
	assert.Equal(t, MetricRepositories, metrics[0].Name)

	shares, err := db.GetLanguageShares(id)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, LanguageShareRow{SnapshotID: id, Rank: 1, Name: "Go", Percentage: 70, Bytes: 700}, shares[0])
}

func TestRecord_FallbackHasNoMetrics(t *testing.T) {
	db := openTestDB(t)
	fb := &profile.Snapshot{
		Source:            profile.SourceGitHub,
		Status:            profile.StatusFallback,
		Message:           "cached",
		StarCount:         45,
		LanguageBreakdown: []profile.LanguageShare{{Name: "Java", Percentage: 20}},
	}

	id, err := db.Record("v1", fb)
	require.NoError(t, err)

	metrics, err := db.GetMetrics(id)
	require.NoError(t, err)
	assert.Empty(t, metrics)

	shares, err := db.GetLanguageShares(id)
	require.NoError(t, err)
	assert.Empty(t, shares)

	providers, err := db.GetProviderSnapshots(id)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "fallback", providers[0].Status)
	assert.Equal(t, "cached", providers[0].Message)
}

func TestSingleRowWriters(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateSnapshot("v1")
	require.NoError(t, err)

	require.NoError(t, db.InsertProviderSnapshot(&ProviderSnapshot{SnapshotID: id, Source: "leetcode", Status: "error", Message: "down"}))
	require.NoError(t, db.InsertMetric(id, "leetcode", MetricTotalSolved, 42))
	require.NoError(t, db.InsertLanguageShare(&LanguageShareRow{SnapshotID: id, Rank: 1, Name: "Rust", Percentage: 100, Bytes: 10}))

	ps, err := db.GetProviderSnapshots(id)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "down", ps[0].Message)

	metrics, err := db.GetMetrics(id)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, 42.0, metrics[0].Value)

	shares, err := db.GetLanguageShares(id)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "Rust", shares[0].Name)

	assert.Error(t, db.InsertMetric(id+1, "leetcode", MetricTotalSolved, 1), "unknown snapshot")
}

func TestComputeDeltas(t *testing.T) {
	prev := []Metric{
		{SnapshotID: 4, Source: "github", Name: MetricStars, Value: 10},
		{SnapshotID: 4, Source: "leetcode", Name: MetricRanking, Value: 500},
		{SnapshotID: 4, Source: "github", Name: MetricForks, Value: 2},
	}
	curr := []Metric{
		{Source: "github", Name: MetricStars, Value: 12},
		{Source: "leetcode", Name: MetricRanking, Value: 450},
		{Source: "github", Name: MetricForks, Value: 2},
		{Source: "github", Name: MetricFollowers, Value: 1},
	}

	deltas := ComputeDeltas(prev, curr)
	require.Len(t, deltas, 3, "metrics without a baseline are left out")
	assert.Equal(t, MetricDelta{Name: MetricStars, Previous: 10, Current: 12, Delta: 2, Direction: "improved", Since: 4}, deltas[0])
	assert.Equal(t, "improved", deltas[1].Direction, "a lower ranking is better")
	assert.Equal(t, "unchanged", deltas[2].Direction)

	worse := ComputeDeltas([]Metric{{Name: MetricRanking, Value: 1}}, []Metric{{Name: MetricRanking, Value: 2}})
	assert.Equal(t, "regressed", worse[0].Direction)

	other := ComputeDeltas([]Metric{{Source: "github", Name: MetricStars, Value: 5}}, []Metric{{Source: "leetcode", Name: MetricStars, Value: 9}})
	assert.Empty(t, other, "values from another source are not a baseline")
}

func TestDeltasAcrossFallbackRun(t *testing.T) {
	db := openTestDB(t)
	fallback := &profile.Snapshot{
		Source:            profile.SourceGitHub,
		Status:            profile.StatusFallback,
		StarCount:         45,
		LanguageBreakdown: []profile.LanguageShare{{Name: "Java", Percentage: 20}},
	}

	first, err := db.Record("v1", liveGitHub())
	require.NoError(t, err)
	offline, err := db.Record("v1", fallback)
	require.NoError(t, err)
	current, err := db.Record("v1", liveGitHub())
	require.NoError(t, err)

	baseline, err := db.MetricBaseline(offline)
	require.NoError(t, err)
	require.Len(t, baseline, 5)
	for _, m := range baseline {
		assert.Equal(t, first, m.SnapshotID, m.Name)
	}

	curr, err := db.GetMetrics(current)
	require.NoError(t, err)
	deltas := ComputeDeltas(baseline, curr)
	require.Len(t, deltas, 5)
	for _, d := range deltas {
		assert.Equal(t, "unchanged", d.Direction, d.Name)
		assert.Zero(t, d.Delta, d.Name)
		assert.Equal(t, first, d.Since, d.Name)
	}

	langs, err := db.LanguageBaseline(offline)
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, first, langs[0].SnapshotID)
}

func TestMetricBaseline_Empty(t *testing.T) {
	db := openTestDB(t)
	id, err := db.Record("v1", &profile.Snapshot{Source: profile.SourceGitHub, Status: profile.StatusFallback})
	require.NoError(t, err)

	metrics, err := db.MetricBaseline(id)
	require.NoError(t, err)
	assert.Empty(t, metrics)

	langs, err := db.LanguageBaseline(id)
	require.NoError(t, err)
	assert.Empty(t, langs)
}

func TestComputeLanguageChanges(t *testing.T) {
	prev := []LanguageShareRow{{Rank: 1, Name: "Go", Percentage: 60}, {Rank: 2, Name: "Shell", Percentage: 40}}
	curr := []LanguageShareRow{{Rank: 1, Name: "Go", Percentage: 70}, {Rank: 2, Name: "Rust", Percentage: 30}}

	changes := ComputeLanguageChanges(prev, curr)
	require.Len(t, changes, 3)
	assert.Equal(t, LanguageChange{Name: "Go", Previous: 60, Current: 70, Delta: 10}, changes[0])
	assert.Equal(t, LanguageChange{Name: "Rust", Current: 30, Delta: 30, New: true}, changes[1])
	assert.Equal(t, LanguageChange{Name: "Shell", Previous: 40, Delta: -40, Dropped: true}, changes[2])
}

func TestContactMessages(t *testing.T) {
	db := openTestDB(t)

	first, err := db.InsertContactMessage("Ada", "ada@example.com", "Hello")
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)

	second, err := db.InsertContactMessage("Linus", "linus@example.com", "Hi")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	msgs, err := db.ListContactMessages(10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, second.ID, msgs[0].ID)
	assert.Equal(t, "Hello", msgs[1].Message)
	assert.Equal(t, first.ReceivedAt, msgs[1].ReceivedAt)

	limited, err := db.ListContactMessages(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
