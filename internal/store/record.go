package store

import (
	"fmt"
	"time"

	"github.com/aryanbv/folio/internal/profile"
)

// Metric names recorded per source.
const (
	MetricRepositories   = "repositories"
	MetricStars          = "stars"
	MetricForks          = "forks"
	MetricFollowers      = "followers"
	MetricFollowing      = "following"
	MetricTotalSolved    = "total_solved"
	MetricEasySolved     = "easy_solved"
	MetricMediumSolved   = "medium_solved"
	MetricHardSolved     = "hard_solved"
	MetricRanking        = "ranking"
	MetricAcceptanceRate = "acceptance_rate"
)

// MetricOrder is the display order of recorded metrics.
var MetricOrder = []string{
	MetricRepositories, MetricStars, MetricForks, MetricFollowers, MetricFollowing,
	MetricTotalSolved, MetricEasySolved, MetricMediumSolved, MetricHardSolved,
	MetricRanking, MetricAcceptanceRate,
}

// metricLowerIsBetter lists metrics where a decrease is an improvement.
var metricLowerIsBetter = map[string]bool{
	MetricRanking: true,
}

// HigherIsBetter reports the trend direction of a metric.
func HigherIsBetter(name string) bool {
	return !metricLowerIsBetter[name]
}

// SnapshotMetrics flattens the numeric fields of a live snapshot. Fallback
// and error snapshots yield nothing so placeholder values never enter the
// history.
func SnapshotMetrics(s *profile.Snapshot) map[string]float64 {
	if !s.IsLive() {
		return nil
	}
	switch s.Source {
	case profile.SourceGitHub:
		return map[string]float64{
			MetricRepositories: float64(s.RepositoryCount),
			MetricStars:        float64(s.StarCount),
			MetricForks:        float64(s.ForkCount),
			MetricFollowers:    float64(s.FollowerCount),
			MetricFollowing:    float64(s.FollowingCount),
		}
	case profile.SourceLeetCode:
		if s.Coding == nil {
			return nil
		}
		return map[string]float64{
			MetricTotalSolved:    float64(s.Coding.TotalSolved),
			MetricEasySolved:     float64(s.Coding.EasySolved),
			MetricMediumSolved:   float64(s.Coding.MediumSolved),
			MetricHardSolved:     float64(s.Coding.HardSolved),
			MetricRanking:        float64(s.Coding.Ranking),
			MetricAcceptanceRate: s.Coding.AcceptanceRate,
		}
	}
	return nil
}

// Record stores one history snapshot holding every given provider snapshot
// in a single transaction, and returns its ID. Nil snapshots are skipped.
func (db *DB) Record(version string, snaps ...*profile.Snapshot) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := createSnapshot(tx, version, time.Now())
	if err != nil {
		return 0, fmt.Errorf("creating snapshot: %w", err)
	}

	for _, s := range snaps {
		if s == nil {
			continue
		}
		src := string(s.Source)
		if err := insertProviderSnapshot(tx, &ProviderSnapshot{
			SnapshotID: id,
			Source:     src,
			Status:     string(s.Status),
			FetchedAt:  s.FetchedAt,
			Message:    s.Message,
		}); err != nil {
			return 0, fmt.Errorf("inserting %s status: %w", src, err)
		}

		values := SnapshotMetrics(s)
		for _, name := range MetricOrder {
			v, ok := values[name]
			if !ok {
				continue
			}
			if err := insertMetric(tx, id, src, name, v); err != nil {
				return 0, fmt.Errorf("inserting metric %s: %w", name, err)
			}
		}

		if s.Source == profile.SourceGitHub && s.IsLive() {
			for i, ls := range s.LanguageBreakdown {
				if err := insertLanguageShare(tx, &LanguageShareRow{
					SnapshotID: id,
					Rank:       i + 1,
					Name:       ls.Name,
					Percentage: ls.Percentage,
					Bytes:      ls.Bytes,
				}); err != nil {
					return 0, fmt.Errorf("inserting language %s: %w", ls.Name, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ComputeDeltas compares curr against a baseline, matching metrics by
// source and name. Metrics the baseline lacks have nothing to compare
// against and are left out.
func ComputeDeltas(prev, curr []Metric) []MetricDelta {
	type key struct{ source, name string }
	base := make(map[key]Metric, len(prev))
	for _, m := range prev {
		base[key{m.Source, m.Name}] = m
	}

	var deltas []MetricDelta
	for _, m := range curr {
		p, ok := base[key{m.Source, m.Name}]
		if !ok {
			continue
		}
		delta := m.Value - p.Value

		deltas = append(deltas, MetricDelta{
			Name:      m.Name,
			Previous:  p.Value,
			Current:   m.Value,
			Delta:     delta,
			Direction: direction(delta, HigherIsBetter(m.Name)),
			Since:     p.SnapshotID,
		})
	}
	return deltas
}

// ComputeLanguageChanges compares two recorded breakdowns. Languages are
// listed in current rank order, followed by languages that dropped out.
func ComputeLanguageChanges(prev, curr []LanguageShareRow) []LanguageChange {
	before := make(map[string]int, len(prev))
	for _, ls := range prev {
		before[ls.Name] = ls.Percentage
	}

	seen := make(map[string]bool, len(curr))
	changes := make([]LanguageChange, 0, len(curr))
	for _, ls := range curr {
		seen[ls.Name] = true
		p, ok := before[ls.Name]
		changes = append(changes, LanguageChange{
			Name:     ls.Name,
			Previous: p,
			Current:  ls.Percentage,
			Delta:    ls.Percentage - p,
			New:      !ok,
		})
	}
	for _, ls := range prev {
		if seen[ls.Name] {
			continue
		}
		changes = append(changes, LanguageChange{
			Name:     ls.Name,
			Previous: ls.Percentage,
			Delta:    -ls.Percentage,
			Dropped:  true,
		})
	}
	return changes
}

func direction(delta float64, higherIsBetter bool) string {
	switch {
	case delta == 0:
		return "unchanged"
	case (delta > 0) == higherIsBetter:
		return "improved"
	default:
		return "regressed"
	}
}
