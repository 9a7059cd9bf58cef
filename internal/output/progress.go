package output

import (
	"fmt"
	"strings"

	"github.com/aryanbv/folio/internal/profile"
)

// ProficiencyBar renders a 0-100 proficiency as a bar.
// Example: "████████░░ 80%"
func ProficiencyBar(score, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := min(max(score*width/100, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%3d%%", score)))
}

// ShareBar renders a language share of total bytes.
func ShareBar(share profile.LanguageShare, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := min(max(share.Percentage*width/100, 0), width)
	bar := StyleAccent.Render(strings.Repeat("▇", filled)) + StyleMuted.Render(strings.Repeat("·", width-filled))
	return fmt.Sprintf("%-12s %s %3d%%", share.Name, bar, share.Percentage)
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := isPositive == higherIsBetter

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.1f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.1f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// heatLevels maps a capped daily count to a cell glyph.
var heatLevels = []string{"·", "░", "▒", "▓", "█"}

// Heatmap renders contribution days as seven weekday rows, one column per
// week, oldest on the left.
func Heatmap(days []profile.ContributionDay) string {
	if len(days) == 0 {
		return StyleMuted.Render(" no recent activity") + "\n"
	}

	rows := make([][]string, 7)
	lead := days[0].Weekday
	for i := range lead {
		rows[i] = append(rows[i], " ")
	}
	for _, d := range days {
		level := min(max(d.Count, 0), profile.MaxContributionLevel)
		cell := heatLevels[level]
		if level > 0 {
			cell = StyleSuccess.Render(cell)
		} else {
			cell = StyleMuted.Render(cell)
		}
		rows[d.Weekday] = append(rows[d.Weekday], cell)
	}

	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(" ")
		sb.WriteString(StyleMuted.Render(labels[i]))
		sb.WriteString(" ")
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// StatusBadge labels a snapshot's provenance.
func StatusBadge(s *profile.Snapshot) string {
	switch {
	case s == nil:
		return StyleMuted.Render("[loading]")
	case s.Status == profile.StatusLive:
		return StyleSuccess.Render("[live]")
	case s.Status == profile.StatusFallback:
		return StyleWarning.Render("[cached]")
	default:
		return StyleError.Render("[unavailable]")
	}
}
