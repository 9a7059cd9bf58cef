package profile

import (
	"math"
	"sort"
	"strings"
)

// BreakdownLanguages sums byte counts across the sampled repositories and
// returns each language's rounded share of the grand total, sorted
// descending and truncated to top entries. Ties keep the order in which the
// language first appeared across perRepo. A top of zero or less keeps all.
func BreakdownLanguages(perRepo [][]LanguageBytes, top int) []LanguageShare {
	totals := make(map[string]int64)
	var order []string

	for _, langs := range perRepo {
		for _, l := range langs {
			if l.Bytes <= 0 || l.Name == "" {
				continue
			}
			if _, seen := totals[l.Name]; !seen {
				order = append(order, l.Name)
			}
			totals[l.Name] += l.Bytes
		}
	}

	var grand int64
	for _, b := range totals {
		grand += b
	}
	if grand == 0 {
		return nil
	}

	shares := make([]LanguageShare, 0, len(order))
	for _, name := range order {
		b := totals[name]
		shares = append(shares, LanguageShare{
			Name:       name,
			Percentage: int(math.Round(float64(b) / float64(grand) * 100)),
			Bytes:      b,
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})

	if top > 0 && len(shares) > top {
		shares = shares[:top]
	}
	return shares
}

// FindLanguage returns the breakdown entry whose name matches
// case-insensitively.
func FindLanguage(breakdown []LanguageShare, name string) (LanguageShare, bool) {
	for _, l := range breakdown {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return LanguageShare{}, false
}

// MaxPercentage returns the largest percentage in the breakdown.
func MaxPercentage(breakdown []LanguageShare) int {
	maxPct := 0
	for _, l := range breakdown {
		if l.Percentage > maxPct {
			maxPct = l.Percentage
		}
	}
	return maxPct
}
