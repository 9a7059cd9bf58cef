package profile

import "strings"

// Showcase returns the repositories fit for the project gallery: forks and
// repositories without a description are dropped. Only the gallery applies
// this filter; language and technology counting use the full list.
// A limit of zero or less keeps every match.
func Showcase(repos []Repository, limit int) []Repository {
	var out []Repository
	for _, r := range repos {
		if r.IsFork || strings.TrimSpace(r.Description) == "" {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// SumStars totals stargazers across repos.
func SumStars(repos []Repository) int {
	var total int
	for _, r := range repos {
		total += r.StarCount
	}
	return total
}

// SumForks totals forks across repos.
func SumForks(repos []Repository) int {
	var total int
	for _, r := range repos {
		total += r.ForkCount
	}
	return total
}
