package techstack

import (
	"strings"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/profile"
)

// Display categories assigned to live repositories.
const (
	RepoCategoryAI    = "ai"
	RepoCategoryWeb   = "web"
	RepoCategoryOther = "other"
)

var aiMarkers = map[string]bool{
	"ai": true, "ml": true, "machine-learning": true, "deep-learning": true,
	"artificial-intelligence": true, "nlp": true, "computer-vision": true,
	"llm": true, "data-science": true, "jupyter notebook": true,
	"tensorflow": true, "pytorch": true, "scikit-learn": true,
}

var webMarkers = map[string]bool{
	"javascript": true, "typescript": true, "html": true, "css": true,
	"vue": true, "svelte": true, "react": true, "nextjs": true, "next.js": true,
	"web": true, "frontend": true, "tailwindcss": true, "express": true,
}

// FromSnapshot builds an engine over a GitHub snapshot. Only live snapshots
// contribute signals; a fallback table is never treated as live data.
func FromSnapshot(s *profile.Snapshot, defaults map[string]int) *Engine {
	if !s.IsLive() {
		return New(nil, nil, defaults)
	}
	return New(s.LanguageBreakdown, s.Repositories, defaults)
}

// RepoCategory maps repository metadata to a showcase category. Topics win
// over the primary language.
func RepoCategory(r profile.Repository) string {
	for _, t := range r.Topics {
		if aiMarkers[strings.ToLower(t)] {
			return RepoCategoryAI
		}
	}
	lang := strings.ToLower(r.PrimaryLanguage)
	if aiMarkers[lang] {
		return RepoCategoryAI
	}
	for _, t := range r.Topics {
		if webMarkers[strings.ToLower(t)] {
			return RepoCategoryWeb
		}
	}
	if webMarkers[lang] {
		return RepoCategoryWeb
	}
	return RepoCategoryOther
}

// RepoProject converts a repository into a showcase entry.
func RepoProject(r profile.Repository) catalog.Project {
	var tech []string
	if r.PrimaryLanguage != "" {
		tech = append(tech, r.PrimaryLanguage)
	}
	for _, t := range r.Topics {
		tech = append(tech, TitleCase(t))
	}
	return catalog.Project{
		Title:        r.Name,
		Description:  r.Description,
		Category:     RepoCategory(r),
		Technologies: tech,
		GithubURL:    r.GithubURL,
		LiveURL:      r.HomepageURL,
	}
}

// Showcase lists the curated projects followed by up to limit live
// repositories that qualify for display and are not already curated.
func Showcase(s *profile.Snapshot, cat *catalog.Catalog, limit int) []catalog.Project {
	out := make([]catalog.Project, 0, len(cat.Projects)+max(limit, 0))
	curated := make(map[string]bool, len(cat.Projects))
	for _, p := range cat.Projects {
		out = append(out, p)
		if p.GithubURL != "" {
			curated[strings.ToLower(p.GithubURL)] = true
		}
	}
	if !s.IsLive() {
		return out
	}

	added := 0
	for _, r := range profile.Showcase(s.Repositories, 0) {
		if added >= limit {
			break
		}
		if curated[strings.ToLower(r.GithubURL)] {
			continue
		}
		out = append(out, RepoProject(r))
		added++
	}
	return out
}
