package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/techstack"
)

// GitHubStatsResult summarises the source-control snapshot.
type GitHubStatsResult struct {
	Status       profile.Status          `json:"status"`
	Message      string                  `json:"message,omitempty"`
	FetchedAt    string                  `json:"fetched_at,omitempty"`
	Login        string                  `json:"login,omitempty"`
	Repositories int                     `json:"repositories"`
	Stars        int                     `json:"stars"`
	Forks        int                     `json:"forks"`
	Followers    int                     `json:"followers"`
	Following    int                     `json:"following"`
	Languages    []profile.LanguageShare `json:"languages"`
}

// LeetCodeStatsResult summarises the problem-solving snapshot.
type LeetCodeStatsResult struct {
	Status    profile.Status      `json:"status"`
	Message   string              `json:"message,omitempty"`
	FetchedAt string              `json:"fetched_at,omitempty"`
	Stats     profile.CodingStats `json:"stats"`
}

// TechStackResult holds filtered tech items and their summary.
type TechStackResult struct {
	Items   []techstack.DisplayTechItem `json:"items"`
	Summary techstack.Summary           `json:"summary"`
}

// ProjectsResult holds the filtered showcase.
type ProjectsResult struct {
	Projects []catalog.Project `json:"projects"`
}

// CertificatesResult holds the filtered certificates.
type CertificatesResult struct {
	Certificates []catalog.Certificate `json:"certificates"`
}

// TimelineResult holds timeline entries for one tab.
type TimelineResult struct {
	Entries []catalog.Entry `json:"entries"`
}

// listArgs are the shared arguments of every list tool.
type listArgs struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

var (
	noArgsSchema = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	listSchema   = json.RawMessage(`{"type":"object","properties":{"category":{"type":"string","description":"Category id, 'all' or 'featured'"},"query":{"type":"string","description":"Case-insensitive search text"}},"additionalProperties":false}`)
	timeSchema   = json.RawMessage(`{"type":"object","properties":{"type":{"type":"string","enum":["all","education","project","certification","achievement"]}},"additionalProperties":false}`)
)

var errNoAggregator = errors.New("no data source configured")

// addTools registers every MCP tool handler on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "get_github_stats",
		Description: "Repository, star, fork and follower counts plus the top languages by share of bytes.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetGitHubStats,
	})
	s.registerTool(toolDef{
		Name:        "get_leetcode_stats",
		Description: "Solved problem counts by difficulty, ranking and acceptance rate.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetLeetCodeStats,
	})
	s.registerTool(toolDef{
		Name:        "get_tech_stack",
		Description: "Technologies with derived 0-100 proficiency and project counts, filtered by category and search text.",
		InputSchema: listSchema,
		Handler:     s.handleGetTechStack,
	})
	s.registerTool(toolDef{
		Name:        "search_projects",
		Description: "Curated projects and live repositories matching a category and search text.",
		InputSchema: listSchema,
		Handler:     s.handleSearchProjects,
	})
	s.registerTool(toolDef{
		Name:        "search_certificates",
		Description: "Certifications matching a category and search text.",
		InputSchema: listSchema,
		Handler:     s.handleSearchCertificates,
	})
	s.registerTool(toolDef{
		Name:        "get_timeline",
		Description: "Education, project, certification and achievement milestones.",
		InputSchema: timeSchema,
		Handler:     s.handleGetTimeline,
	})
}

// snapshot returns the current snapshot for src, resolving it on first use.
func (s *Server) snapshot(ctx context.Context, src profile.Source) (*profile.Snapshot, error) {
	agg := s.deps.Aggregator
	if agg == nil {
		return nil, errNoAggregator
	}
	if snap := agg.Board().Get(src); snap != nil {
		return snap, nil
	}
	if err := agg.RefreshSource(ctx, src); err != nil {
		return nil, err
	}
	if snap := agg.Board().Get(src); snap != nil {
		return snap, nil
	}
	return nil, fmt.Errorf("no %s provider registered", src)
}

func decodeArgs(args json.RawMessage, v any) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *Server) handleGetGitHubStats(ctx context.Context, _ json.RawMessage) (any, error) {
	snap, err := s.snapshot(ctx, profile.SourceGitHub)
	if err != nil {
		return nil, err
	}
	res := GitHubStatsResult{
		Status:       snap.Status,
		Message:      snap.Message,
		FetchedAt:    stamp(snap.FetchedAt),
		Repositories: snap.RepositoryCount,
		Stars:        snap.StarCount,
		Forks:        snap.ForkCount,
		Followers:    snap.FollowerCount,
		Following:    snap.FollowingCount,
		Languages:    snap.LanguageBreakdown,
	}
	if snap.Profile != nil {
		res.Login = snap.Profile.Login
	}
	if res.Languages == nil {
		res.Languages = []profile.LanguageShare{}
	}
	return res, nil
}

func (s *Server) handleGetLeetCodeStats(ctx context.Context, _ json.RawMessage) (any, error) {
	snap, err := s.snapshot(ctx, profile.SourceLeetCode)
	if err != nil {
		return nil, err
	}
	res := LeetCodeStatsResult{
		Status:    snap.Status,
		Message:   snap.Message,
		FetchedAt: stamp(snap.FetchedAt),
	}
	if snap.Coding != nil {
		res.Stats = *snap.Coding
	}
	return res, nil
}

func (s *Server) handleGetTechStack(ctx context.Context, args json.RawMessage) (any, error) {
	var a listArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	// Tech items degrade to static levels when GitHub is unavailable.
	snap, _ := s.snapshot(ctx, profile.SourceGitHub)
	engine := techstack.FromSnapshot(snap, s.deps.Catalog.Defaults())
	items := catalog.Apply(engine.Items(s.deps.Catalog), catalog.Query{Category: a.Category, Search: a.Query})
	return TechStackResult{Items: items, Summary: techstack.Summarize(items)}, nil
}

func (s *Server) handleSearchProjects(ctx context.Context, args json.RawMessage) (any, error) {
	var a listArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	snap, _ := s.snapshot(ctx, profile.SourceGitHub)
	projects := techstack.Showcase(snap, s.deps.Catalog, s.deps.ShowcaseLimit)
	return ProjectsResult{Projects: catalog.Apply(projects, catalog.Query{Category: a.Category, Search: a.Query})}, nil
}

func (s *Server) handleSearchCertificates(_ context.Context, args json.RawMessage) (any, error) {
	var a listArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return CertificatesResult{
		Certificates: catalog.Apply(s.deps.Catalog.Certificates, catalog.Query{Category: a.Category, Search: a.Query}),
	}, nil
}

func (s *Server) handleGetTimeline(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Type string `json:"type"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return TimelineResult{Entries: s.deps.Catalog.TimelineFor(a.Type)}, nil
}
