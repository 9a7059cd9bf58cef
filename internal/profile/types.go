// Package profile defines the normalized snapshot model shared by the
// provider clients, the aggregator and every consumer of aggregated data.
package profile

import "time"

// Source identifies the provider that produced a snapshot.
type Source string

const (
	// SourceGitHub is the source-control hosting provider.
	SourceGitHub Source = "github"

	// SourceLeetCode is the competitive-programming statistics proxy.
	SourceLeetCode Source = "leetcode"
)

// Sources lists every known source in display order.
var Sources = []Source{SourceGitHub, SourceLeetCode}

// Status describes where a snapshot's data came from.
type Status string

const (
	// StatusLive means the data was fetched from the network this cycle.
	StatusLive Status = "live"

	// StatusFallback means a fixed default table was substituted after a failure.
	StatusFallback Status = "fallback"

	// StatusError means no usable data exists.
	StatusError Status = "error"
)

// Profile holds the public account fields of the source-control provider.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository is a lightweight repository descriptor.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	PrimaryLanguage string    `json:"primary_language,omitempty"`
	Topics          []string  `json:"topics,omitempty"`
	StarCount       int       `json:"star_count"`
	ForkCount       int       `json:"fork_count"`
	WatcherCount    int       `json:"watcher_count"`
	HomepageURL     string    `json:"homepage_url,omitempty"`
	GithubURL       string    `json:"github_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	IsFork          bool      `json:"is_fork"`
}

// LanguageBytes is one entry of a per-repository languages response,
// kept in the order the provider returned it.
type LanguageBytes struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// LanguageShare is a language's rounded share of all sampled bytes.
type LanguageShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Bytes      int64  `json:"bytes"`
}

// CodingStats holds normalized problem-solving statistics.
type CodingStats struct {
	TotalSolved        int     `json:"total_solved"`
	EasySolved         int     `json:"easy_solved"`
	MediumSolved       int     `json:"medium_solved"`
	HardSolved         int     `json:"hard_solved"`
	Ranking            int     `json:"ranking"`
	AcceptanceRate     float64 `json:"acceptance_rate"`
	ContributionPoints int     `json:"contribution_points"`
	Reputation         int     `json:"reputation"`
	Message            string  `json:"message,omitempty"`
}

// ContributionDay is one cell of the contribution heatmap.
type ContributionDay struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Weekday int    `json:"weekday"`
}

// Snapshot is the immutable result of one aggregation cycle for one
// provider. A new fetch produces a new Snapshot; fields are never mutated
// after construction.
type Snapshot struct {
	Source    Source    `json:"source"`
	Status    Status    `json:"status"`
	FetchedAt time.Time `json:"fetched_at"`
	Message   string    `json:"message,omitempty"`

	// Source-control fields.
	Profile           *Profile        `json:"profile,omitempty"`
	RepositoryCount   int             `json:"repository_count"`
	StarCount         int             `json:"star_count"`
	ForkCount         int             `json:"fork_count"`
	FollowerCount     int             `json:"follower_count"`
	FollowingCount    int             `json:"following_count"`
	LanguageBreakdown []LanguageShare `json:"language_breakdown,omitempty"`
	Repositories      []Repository    `json:"repositories,omitempty"`

	// Competitive-programming fields.
	Coding *CodingStats `json:"coding,omitempty"`
}

// IsLive reports whether the snapshot holds data fetched this cycle.
func (s *Snapshot) IsLive() bool {
	return s != nil && s.Status == StatusLive
}
