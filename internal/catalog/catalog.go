package catalog

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
)

// Catalog is the full set of bundled content.
type Catalog struct {
	Categories   []Category    `toml:"categories" json:"categories"`
	Tech         []Tech        `toml:"tech" json:"tech"`
	Projects     []Project     `toml:"projects" json:"projects"`
	Certificates []Certificate `toml:"certificates" json:"certificates"`
	Timeline     []Entry       `toml:"timeline" json:"timeline"`
	Platforms    []Platform    `toml:"platforms" json:"platforms"`
}

// Default returns a private copy of the bundled catalog.
func Default() *Catalog {
	return &Catalog{
		Categories:   slices.Clone(defaultCategories),
		Tech:         slices.Clone(defaultTech),
		Projects:     slices.Clone(defaultProjects),
		Certificates: slices.Clone(defaultCertificates),
		Timeline:     slices.Clone(defaultTimeline),
		Platforms:    slices.Clone(defaultPlatforms),
	}
}

// Load returns the bundled catalog with any section present in the TOML file
// at path replacing the bundled one. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	var override Catalog
	md, err := toml.DecodeFile(path, &override)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decoding catalog %s: unknown key %q", path, undecoded[0].String())
	}

	if md.IsDefined("categories") {
		cat.Categories = override.Categories
	}
	if md.IsDefined("tech") {
		cat.Tech = override.Tech
	}
	if md.IsDefined("projects") {
		cat.Projects = override.Projects
	}
	if md.IsDefined("certificates") {
		cat.Certificates = override.Certificates
	}
	if md.IsDefined("timeline") {
		cat.Timeline = override.Timeline
	}
	if md.IsDefined("platforms") {
		cat.Platforms = override.Platforms
	}
	return cat, nil
}

// Defaults maps technology name to its static level, for the proficiency
// engine's third tier.
func (c *Catalog) Defaults() map[string]int {
	out := make(map[string]int, len(c.Tech))
	for _, t := range c.Tech {
		out[t.Name] = t.Level
	}
	return out
}

// Timeline entries matching the tab id.
func (c *Catalog) TimelineFor(tab string) []Entry {
	return Apply(c.Timeline, Query{Category: tab})
}
