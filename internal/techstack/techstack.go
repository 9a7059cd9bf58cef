// Package techstack merges the curated technology catalog with live
// repository and language signals into display-ready tech items.
package techstack

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/profile"
)

const (
	// CategoryDiscovered holds technologies seen in repositories but absent
	// from the catalog.
	CategoryDiscovered = "discovered"

	// DefaultProficiency is used when no signal or static level exists.
	DefaultProficiency = 50
)

// Tier records which signal produced a proficiency.
type Tier int

const (
	TierLanguageShare Tier = iota + 1
	TierProjectCount
	TierStatic
	TierDefault
)

func (t Tier) String() string {
	switch t {
	case TierLanguageShare:
		return "language_share"
	case TierProjectCount:
		return "project_count"
	case TierStatic:
		return "static"
	case TierDefault:
		return "default"
	default:
		return "unknown"
	}
}

// DisplayTechItem is a catalog or discovered technology with derived values.
type DisplayTechItem struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Proficiency  int    `json:"proficiency"`
	ProjectCount int    `json:"projectCount"`
	Tier         Tier   `json:"-"`
	Signal       string `json:"signal"`
}

func (d DisplayTechItem) CategoryID() string { return d.Category }

// IsFeatured reports whether the proficiency came from live data.
func (d DisplayTechItem) IsFeatured() bool {
	return d.Tier == TierLanguageShare || d.Tier == TierProjectCount
}

func (d DisplayTechItem) SearchFields() []string {
	return []string{d.Name, d.Category}
}

// Engine derives per-technology values from one GitHub snapshot. It does
// not filter forks or undescribed repositories: every repository counts.
type Engine struct {
	breakdown []profile.LanguageShare
	maxShare  int

	counts   map[string]int
	names    map[string]string
	order    []string
	maxCount int

	defaults map[string]int
}

// New builds an engine. defaults maps technology name to its static level.
func New(breakdown []profile.LanguageShare, repos []profile.Repository, defaults map[string]int) *Engine {
	e := &Engine{
		breakdown: breakdown,
		maxShare:  profile.MaxPercentage(breakdown),
		counts:    make(map[string]int),
		names:     make(map[string]string),
		defaults:  make(map[string]int, len(defaults)),
	}
	for name, level := range defaults {
		e.defaults[strings.ToLower(name)] = level
	}

	for _, repo := range repos {
		seen := make(map[string]bool)
		if repo.PrimaryLanguage != "" {
			e.count(repo.PrimaryLanguage, repo.PrimaryLanguage, seen)
		}
		for _, topic := range repo.Topics {
			if topic != "" {
				e.count(topic, TitleCase(topic), seen)
			}
		}
	}
	return e
}

func (e *Engine) count(raw, display string, seen map[string]bool) {
	key := strings.ToLower(raw)
	if seen[key] {
		return
	}
	seen[key] = true

	if _, ok := e.names[key]; !ok {
		e.names[key] = display
		e.order = append(e.order, key)
	}
	e.counts[key]++
	if e.counts[key] > e.maxCount {
		e.maxCount = e.counts[key]
	}
}

// ProjectCount is the number of repositories whose primary language or any
// topic equals name, case-insensitively. Each repository counts once.
func (e *Engine) ProjectCount(name string) int {
	return e.counts[strings.ToLower(name)]
}

// Proficiency returns the 0-100 score for name.
func (e *Engine) Proficiency(name string) int {
	p, _ := e.proficiency(name)
	return p
}

func (e *Engine) proficiency(name string) (int, Tier) {
	if share, ok := profile.FindLanguage(e.breakdown, name); ok && e.maxShare > 0 {
		return ratio(share.Percentage, e.maxShare), TierLanguageShare
	}
	if n := e.ProjectCount(name); n > 0 && e.maxCount > 0 {
		return ratio(n, e.maxCount), TierProjectCount
	}
	if level, ok := e.defaults[strings.ToLower(name)]; ok {
		return clamp(level), TierStatic
	}
	return DefaultProficiency, TierDefault
}

// Item derives the display entry for one technology.
func (e *Engine) Item(name, category string) DisplayTechItem {
	p, tier := e.proficiency(name)
	return DisplayTechItem{
		Name:         name,
		Category:     category,
		Proficiency:  p,
		ProjectCount: e.ProjectCount(name),
		Tier:         tier,
		Signal:       tier.String(),
	}
}

// Items returns the catalog's technologies in catalog order, followed by
// technologies discovered in repositories that the catalog lacks.
func (e *Engine) Items(cat *catalog.Catalog) []DisplayTechItem {
	known := make(map[string]bool, len(cat.Tech))
	items := make([]DisplayTechItem, 0, len(cat.Tech)+len(e.order))
	for _, t := range cat.Tech {
		known[strings.ToLower(t.Name)] = true
		items = append(items, e.Item(t.Name, t.Category))
	}
	for _, key := range e.order {
		if known[key] {
			continue
		}
		items = append(items, e.Item(e.names[key], CategoryDiscovered))
	}
	return items
}

// Summary aggregates a (possibly filtered) set of items.
type Summary struct {
	Total              int `json:"total"`
	AverageProficiency int `json:"averageProficiency"`
	TotalProjects      int `json:"totalProjects"`
	Categories         int `json:"categories"`
}

// Summarize computes the header figures of the tech grid.
func Summarize(items []DisplayTechItem) Summary {
	s := Summary{Total: len(items)}
	if len(items) == 0 {
		return s
	}
	sum := 0
	cats := make(map[string]bool)
	for _, it := range items {
		sum += it.Proficiency
		s.TotalProjects += it.ProjectCount
		cats[it.Category] = true
	}
	s.AverageProficiency = int(math.Round(float64(sum) / float64(len(items))))
	s.Categories = len(cats)
	return s
}

// TitleCase upper-cases the first letter only: "react-native" becomes
// "React-native".
func TitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func ratio(n, top int) int {
	return clamp(int(math.Round(100 * float64(n) / float64(top))))
}

func clamp(v int) int {
	return min(max(v, 0), 100)
}
