// Package catalog holds the author-curated, bundled content (technologies,
// projects, certificates, timeline) and the filter shared by every list view.
package catalog

import "strings"

// Special category ids understood by every list view.
const (
	CategoryAll      = "all"
	CategoryFeatured = "featured"
)

// Item is anything a list view can filter.
type Item interface {
	CategoryID() string
	IsFeatured() bool
	// SearchFields returns title/name, description and tags.
	SearchFields() []string
}

// Query is the view state of a list: a category id and free search text.
type Query struct {
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

// MatchesCategory applies the category stage. An empty id means all.
func (q Query) MatchesCategory(it Item) bool {
	switch q.Category {
	case "", CategoryAll:
		return true
	case CategoryFeatured:
		return it.IsFeatured()
	default:
		return it.CategoryID() == q.Category
	}
}

// MatchesSearch applies the case-insensitive substring stage.
func (q Query) MatchesSearch(it Item) bool {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}
	for _, field := range it.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Apply returns the items matching both stages, in input order.
func Apply[T Item](items []T, q Query) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q.MatchesCategory(it) && q.MatchesSearch(it) {
			out = append(out, it)
		}
	}
	return out
}
