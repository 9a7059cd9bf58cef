package profile

import "time"

// MaxContributionLevel caps a day's count for heatmap scaling.
const MaxContributionLevel = 4

// MaxContributionDays is the longest heatmap window.
const MaxContributionDays = 365

// BucketContributions counts timestamps per UTC calendar day over the days
// ending at now, oldest first. Counts are capped at MaxContributionLevel and
// the window at MaxContributionDays.
func BucketContributions(timestamps []time.Time, now time.Time, days int) []ContributionDay {
	if days <= 0 {
		return nil
	}
	days = min(days, MaxContributionDays)

	counts := make(map[string]int, len(timestamps))
	for _, ts := range timestamps {
		counts[ts.UTC().Format(time.DateOnly)]++
	}

	now = now.UTC()
	out := make([]ContributionDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		key := d.Format(time.DateOnly)
		out = append(out, ContributionDay{
			Date:    key,
			Count:   min(counts[key], MaxContributionLevel),
			Weekday: int(d.Weekday()),
		})
	}
	return out
}
