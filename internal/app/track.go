package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/config"
	"github.com/aryanbv/folio/internal/output"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/store"
)

var (
	trackCompare int
	trackHistory int
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot and compare profile metrics over time",
	Long: `Refresh both providers, store a new history snapshot, and compare it
against a previous snapshot to show deltas with trend arrows. Only live data
is recorded; cached fallback numbers never enter the history.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show metric trends across N most recent snapshots")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := rt.agg.Refresh(cmd.Context()); err != nil {
		return err
	}
	board := rt.agg.Board()

	snapshotID, err := db.Record(appVersion, board.Get(profile.SourceGitHub), board.Get(profile.SourceLeetCode))
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	logger.Debug("snapshot recorded", "id", snapshotID)

	w := cmd.OutOrStdout()

	if trackHistory > 0 {
		if flagJSON {
			return outputHistoryJSON(w, db, trackHistory)
		}
		return renderHistory(w, db, trackHistory)
	}

	// trackCompare=1 means compare against the immediate predecessor (offset 2 from newest).
	prevSnapshot, err := db.GetSnapshotN(trackCompare + 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	currentSnapshot, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	var diff *store.SnapshotDiff
	if prevSnapshot != nil {
		diff, err = compareSnapshots(db, prevSnapshot, currentSnapshot)
		if err != nil {
			return err
		}
	}

	if flagJSON {
		result := map[string]any{"snapshot": currentSnapshot}
		if diff != nil {
			result["diff"] = diff
		}
		return writeJSON(w, result)
	}

	renderTrackOutput(w, currentSnapshot, diff)
	return nil
}

// compareSnapshots diffs current against the last values recorded at or
// before prev, so a run where a provider fell back does not reset its
// metrics to zero.
func compareSnapshots(db *store.DB, prev, current *store.Snapshot) (*store.SnapshotDiff, error) {
	baseline, err := db.MetricBaseline(prev.ID)
	if err != nil {
		return nil, fmt.Errorf("loading previous metrics: %w", err)
	}
	currMetrics, err := db.GetMetrics(current.ID)
	if err != nil {
		return nil, fmt.Errorf("loading current metrics: %w", err)
	}

	diff := &store.SnapshotDiff{
		Previous: prev,
		Current:  current,
		Deltas:   store.ComputeDeltas(baseline, currMetrics),
	}

	currLangs, err := db.GetLanguageShares(current.ID)
	if err != nil {
		return nil, fmt.Errorf("loading current languages: %w", err)
	}
	if len(currLangs) > 0 {
		prevLangs, err := db.LanguageBaseline(prev.ID)
		if err != nil {
			return nil, fmt.Errorf("loading previous languages: %w", err)
		}
		if len(prevLangs) > 0 {
			diff.Languages = store.ComputeLanguageChanges(prevLangs, currLangs)
		}
	}
	return diff, nil
}

func renderTrackOutput(w io.Writer, current *store.Snapshot, diff *store.SnapshotDiff) {
	fmt.Fprintln(w, output.Section("Track: Snapshot Comparison"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " Snapshot #%d taken at %s\n\n", current.ID, current.TakenAt.Format("2006-01-02 15:04:05"))

	if diff == nil {
		fmt.Fprintln(w, " First snapshot recorded. Run 'folio track' again later to see trends.")
		return
	}

	fmt.Fprintf(w, " Comparing against snapshot #%d (%s)\n\n",
		diff.Previous.ID, diff.Previous.TakenAt.Format("2006-01-02 15:04:05"))

	if len(diff.Deltas) == 0 {
		fmt.Fprintln(w, " No live metrics in this snapshot.")
		return
	}

	tbl := output.NewTable("Metric", "Previous", "Current", "Delta", "Trend").AlignRight(1, 2, 3)
	for _, d := range diff.Deltas {
		prev := formatMetric(d.Name, d.Previous)
		if d.Since != diff.Previous.ID {
			prev += output.StyleMuted.Render(fmt.Sprintf(" (#%d)", d.Since))
		}
		tbl.AddRow(
			metricShortName(d.Name),
			prev,
			formatMetric(d.Name, d.Current),
			fmt.Sprintf("%+.1f", d.Delta),
			output.TrendArrow(d.Delta, store.HigherIsBetter(d.Name)),
		)
	}
	tbl.Fprint(w)

	if len(diff.Languages) == 0 {
		return
	}
	fmt.Fprintln(w, output.Section("Languages"))
	fmt.Fprintln(w)
	langs := output.NewTable("Language", "Previous", "Current", "Change").AlignRight(1, 2, 3)
	for _, l := range diff.Languages {
		change := output.TrendArrow(float64(l.Delta), true)
		switch {
		case l.New:
			change = output.StyleSuccess.Render("new")
		case l.Dropped:
			change = output.StyleMuted.Render("dropped")
		}
		langs.AddRow(l.Name, fmt.Sprintf("%d%%", l.Previous), fmt.Sprintf("%d%%", l.Current), change)
	}
	langs.Fprint(w)
}

var metricLabels = map[string]string{
	store.MetricRepositories:   "Repositories",
	store.MetricStars:          "Stars",
	store.MetricForks:          "Forks",
	store.MetricFollowers:      "Followers",
	store.MetricFollowing:      "Following",
	store.MetricTotalSolved:    "Solved",
	store.MetricEasySolved:     "Easy",
	store.MetricMediumSolved:   "Medium",
	store.MetricHardSolved:     "Hard",
	store.MetricRanking:        "Ranking",
	store.MetricAcceptanceRate: "Acceptance %",
}

// metricShortName returns a compact label for display in tables.
func metricShortName(name string) string {
	if s, ok := metricLabels[name]; ok {
		return s
	}
	return name
}

func formatMetric(name string, v float64) string {
	if name == store.MetricAcceptanceRate {
		return output.Percent(v)
	}
	return output.Count(int(v))
}

// chronological returns the most recent n snapshots, oldest first.
func chronological(db *store.DB, n int) ([]store.Snapshot, error) {
	snapshots, err := db.GetRecentSnapshots(n)
	if err != nil {
		return nil, fmt.Errorf("loading snapshots: %w", err)
	}
	slices.Reverse(snapshots)
	return snapshots, nil
}

// renderHistory shows a multi-snapshot timeline table.
func renderHistory(w io.Writer, db *store.DB, n int) error {
	snapshots, err := chronological(db, n)
	if err != nil {
		return err
	}

	type snapshotMetrics struct {
		snapshot store.Snapshot
		metrics  map[string]float64
	}
	var timeline []snapshotMetrics
	for _, s := range snapshots {
		metrics, err := db.GetMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		m := make(map[string]float64, len(metrics))
		for _, am := range metrics {
			m[am.Name] = am.Value
		}
		timeline = append(timeline, snapshotMetrics{snapshot: s, metrics: m})
	}

	fmt.Fprintln(w, output.Section("Track: Metric History"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " Showing %d most recent snapshots\n\n", len(timeline))

	headers := []string{"Metric"}
	for _, sm := range timeline {
		headers = append(headers, fmt.Sprintf("#%d %s", sm.snapshot.ID, sm.snapshot.TakenAt.Format("Jan 02")))
	}
	headers = append(headers, "Trend")
	tbl := output.NewTable(headers...)
	for i := range timeline {
		tbl.AlignRight(i + 1)
	}

	for _, name := range store.MetricOrder {
		row := []string{metricShortName(name)}
		var vals []float64
		for _, sm := range timeline {
			v, ok := sm.metrics[name]
			if !ok {
				row = append(row, "-")
				continue
			}
			vals = append(vals, v)
			row = append(row, formatMetric(name, v))
		}
		if len(vals) == 0 {
			continue
		}

		trend := ""
		if len(vals) >= 2 {
			trend = output.TrendArrow(vals[len(vals)-1]-vals[0], store.HigherIsBetter(name))
		}
		row = append(row, trend)
		tbl.AddRow(row...)
	}

	if tbl.Len() == 0 {
		fmt.Fprintln(w, " No live metrics recorded yet.")
		return nil
	}
	tbl.Fprint(w)
	return nil
}

// outputHistoryJSON writes the history data as JSON.
func outputHistoryJSON(w io.Writer, db *store.DB, n int) error {
	snapshots, err := chronological(db, n)
	if err != nil {
		return err
	}

	type snapshotEntry struct {
		Snapshot  store.Snapshot           `json:"snapshot"`
		Providers []store.ProviderSnapshot `json:"providers"`
		Metrics   []store.Metric           `json:"metrics"`
	}

	entries := make([]snapshotEntry, 0, len(snapshots))
	for _, s := range snapshots {
		providers, err := db.GetProviderSnapshots(s.ID)
		if err != nil {
			return fmt.Errorf("loading providers for snapshot #%d: %w", s.ID, err)
		}
		metrics, err := db.GetMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		entries = append(entries, snapshotEntry{Snapshot: s, Providers: providers, Metrics: metrics})
	}

	return writeJSON(w, map[string]any{"history": entries})
}
