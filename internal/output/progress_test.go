package output

import (
	"strings"
	"testing"
	"time"

	"github.com/aryanbv/folio/internal/profile"
)

func TestProficiencyBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		score  int
		filled int
		label  string
	}{
		{100, 10, "100%"},
		{50, 5, " 50%"},
		{0, 0, "  0%"},
		{130, 10, "130%"},
		{-5, 0, " -5%"},
	}
	for _, tc := range tests {
		got := ProficiencyBar(tc.score, 10)
		if n := strings.Count(got, "█"); n != tc.filled {
			t.Errorf("ProficiencyBar(%d) filled = %d, want %d", tc.score, n, tc.filled)
		}
		if !strings.HasSuffix(got, tc.label) {
			t.Errorf("ProficiencyBar(%d) = %q, want suffix %q", tc.score, got, tc.label)
		}
	}
}

func TestShareBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := ShareBar(profile.LanguageShare{Name: "Go", Percentage: 40}, 10)
	if strings.Count(got, "▇") != 4 {
		t.Errorf("ShareBar filled wrong: %q", got)
	}
	if !strings.HasPrefix(got, "Go") || !strings.HasSuffix(got, " 40%") {
		t.Errorf("ShareBar = %q", got)
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := TrendArrow(0, true); got != "─" {
		t.Errorf("TrendArrow(0) = %q", got)
	}
	if got := TrendArrow(2, true); got != "▲ +2.0" {
		t.Errorf("TrendArrow(2) = %q", got)
	}
	if got := TrendArrow(-1.5, false); got != "▼ -1.5" {
		t.Errorf("TrendArrow(-1.5) = %q", got)
	}
}

func TestHeatmap(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) // Tuesday
	days := profile.BucketContributions([]time.Time{now, now, now.AddDate(0, 0, -1)}, now, 14)

	got := Heatmap(days)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 weekday rows, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "▒") {
		t.Errorf("Tuesday row should hold a level-2 cell: %q", lines[2])
	}
	if !strings.Contains(lines[1], "░") {
		t.Errorf("Monday row should hold a level-1 cell: %q", lines[1])
	}

	if empty := Heatmap(nil); !strings.Contains(empty, "no recent activity") {
		t.Errorf("Heatmap(nil) = %q", empty)
	}
}

func TestStatusBadge(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		snap *profile.Snapshot
		want string
	}{
		{nil, "[loading]"},
		{&profile.Snapshot{Status: profile.StatusLive}, "[live]"},
		{&profile.Snapshot{Status: profile.StatusFallback}, "[cached]"},
		{&profile.Snapshot{Status: profile.StatusError}, "[unavailable]"},
	}
	for _, tc := range tests {
		if got := StatusBadge(tc.snap); got != tc.want {
			t.Errorf("StatusBadge() = %q, want %q", got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Count(50234); got != "50,234" {
		t.Errorf("Count = %q", got)
	}
	if got := Percent(65.5); got != "65.5%" {
		t.Errorf("Percent = %q", got)
	}
	if got := Percent(70); got != "70%" {
		t.Errorf("Percent = %q", got)
	}

	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := Since(now.AddDate(-3, 0, 0), now); got != "3 years ago" {
		t.Errorf("Since = %q", got)
	}
	if got := Since(time.Time{}, now); got != "unknown" {
		t.Errorf("Since(zero) = %q", got)
	}
}
