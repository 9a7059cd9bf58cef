package output

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Count renders an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Percent renders a rate such as 65.5 as "65.5%".
func Percent(rate float64) string {
	return fmt.Sprintf("%s%%", humanize.FtoaWithDigits(rate, 1))
}

// Since renders t relative to now, e.g. "3 years ago".
func Since(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
