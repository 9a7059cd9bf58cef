// Package github is the unauthenticated GitHub REST client that produces
// source-control snapshots.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/providers"
)

const (
	DefaultBaseURL        = "https://api.github.com"
	DefaultUserAgent      = "folio/0.1"
	DefaultTimeout        = 10 * time.Second
	DefaultLanguageSample = 10
	DefaultTopLanguages   = 5
	DefaultRepoSort       = "updated"
	DefaultRepoPageSize   = 100
	DefaultEventsPageSize = 100

	// languageConcurrency bounds parallel language requests within a sample.
	languageConcurrency = 4
)

// Options configures a Client. Zero fields take the package defaults.
type Options struct {
	BaseURL        string
	Handle         string
	Timeout        time.Duration
	UserAgent      string
	LanguageSample int
	TopLanguages   int
	RepoSort       string
	RepoPageSize   int
	EventsPageSize int
}

// Client fetches public profile data for one fixed handle.
type Client struct {
	client *http.Client
	opts   Options
	now    func() time.Time
}

// New creates a Client with defaults applied to opts.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.LanguageSample <= 0 {
		opts.LanguageSample = DefaultLanguageSample
	}
	if opts.TopLanguages <= 0 {
		opts.TopLanguages = DefaultTopLanguages
	}
	opts.RepoSort = normalizeSort(opts.RepoSort)
	opts.RepoPageSize = clampPageSize(opts.RepoPageSize, DefaultRepoPageSize)
	opts.EventsPageSize = clampPageSize(opts.EventsPageSize, DefaultEventsPageSize)

	return &Client{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		now:    time.Now,
	}
}

// SetClock replaces the clock used to stamp snapshots.
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Client) Name() string { return "github" }

func (c *Client) Source() profile.Source { return profile.SourceGitHub }

var _ providers.Provider = (*Client)(nil)

type githubUser struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

type githubRepo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	Topics          []string  `json:"topics"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	WatchersCount   int       `json:"watchers_count"`
	Homepage        string    `json:"homepage"`
	HTMLURL         string    `json:"html_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Fork            bool      `json:"fork"`
}

type githubEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Fetch retrieves the profile and repositories concurrently, samples the
// languages of the first repositories and returns a live snapshot. If the
// profile or repository request fails the whole snapshot falls back.
func (c *Client) Fetch(ctx context.Context) profile.Result {
	var (
		user  *profile.Profile
		repos []profile.Repository
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.FetchProfile(gctx)
		if err != nil {
			return fmt.Errorf("github: fetch profile: %w", err)
		}
		user = p
		return nil
	})
	g.Go(func() error {
		r, err := c.FetchRepositories(gctx, c.opts.RepoSort, c.opts.RepoPageSize)
		if err != nil {
			return fmt.Errorf("github: fetch repos: %w", err)
		}
		repos = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return profile.Fallback(c.fallbackSnapshot(), err)
	}

	perRepo := c.sampleLanguages(ctx, repos)
	return profile.Ok(c.normalize(user, repos, perRepo))
}

// normalize builds a live snapshot from decoded provider payloads. It has no
// inputs besides its arguments and the clock.
func (c *Client) normalize(user *profile.Profile, repos []profile.Repository, perRepo [][]profile.LanguageBytes) *profile.Snapshot {
	return &profile.Snapshot{
		Source:            profile.SourceGitHub,
		Status:            profile.StatusLive,
		FetchedAt:         c.now().UTC(),
		Profile:           user,
		RepositoryCount:   len(repos),
		StarCount:         profile.SumStars(repos),
		ForkCount:         profile.SumForks(repos),
		FollowerCount:     user.Followers,
		FollowingCount:    user.Following,
		LanguageBreakdown: profile.BreakdownLanguages(perRepo, c.opts.TopLanguages),
		Repositories:      repos,
	}
}

// sampleLanguages fetches languages for at most LanguageSample repositories.
// Requests run in parallel but results are kept in repository order so the
// breakdown's tie order is stable. A failed request contributes nothing.
func (c *Client) sampleLanguages(ctx context.Context, repos []profile.Repository) [][]profile.LanguageBytes {
	sample := repos[:min(len(repos), c.opts.LanguageSample)]
	results := make([][]profile.LanguageBytes, len(sample))

	var g errgroup.Group
	g.SetLimit(languageConcurrency)
	for i, r := range sample {
		g.Go(func() error {
			langs, err := c.FetchLanguages(ctx, r.Name)
			if err != nil {
				return nil
			}
			results[i] = langs
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// FetchProfile retrieves the public user profile.
func (c *Client) FetchProfile(ctx context.Context) (*profile.Profile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.opts.BaseURL, url.PathEscape(c.opts.Handle))

	body, err := providers.Get(ctx, c.client, endpoint, c.opts.UserAgent)
	if err != nil {
		return nil, err
	}

	var u githubUser
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decode user response: %w: %w", profile.ErrMalformedResponse, err)
	}

	return &profile.Profile{
		Login:       u.Login,
		Name:        pickName(u),
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Followers:   u.Followers,
		Following:   u.Following,
		PublicRepos: u.PublicRepos,
		CreatedAt:   u.CreatedAt,
	}, nil
}

// FetchRepositories lists the handle's repositories. Sort falls back to
// "updated" when not one of updated, created or pushed; perPage is clamped
// to 1..100. Forks and undescribed repositories are kept; see
// profile.Showcase for the gallery filter.
func (c *Client) FetchRepositories(ctx context.Context, sort string, perPage int) ([]profile.Repository, error) {
	q := url.Values{}
	q.Set("sort", normalizeSort(sort))
	q.Set("per_page", fmt.Sprint(clampPageSize(perPage, DefaultRepoPageSize)))
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.opts.BaseURL, url.PathEscape(c.opts.Handle), q.Encode())

	body, err := providers.Get(ctx, c.client, endpoint, c.opts.UserAgent)
	if err != nil {
		return nil, err
	}

	var raw []githubRepo
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode repos response: %w: %w", profile.ErrMalformedResponse, err)
	}

	repos := make([]profile.Repository, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, profile.Repository{
			ID:              r.ID,
			Name:            r.Name,
			Description:     r.Description,
			PrimaryLanguage: r.Language,
			Topics:          r.Topics,
			StarCount:       r.StargazersCount,
			ForkCount:       r.ForksCount,
			WatcherCount:    r.WatchersCount,
			HomepageURL:     r.Homepage,
			GithubURL:       r.HTMLURL,
			CreatedAt:       r.CreatedAt,
			UpdatedAt:       r.UpdatedAt,
			IsFork:          r.Fork,
		})
	}
	return repos, nil
}

// FetchLanguages returns a repository's language byte counts in the order
// the provider lists them.
func (c *Client) FetchLanguages(ctx context.Context, repo string) ([]profile.LanguageBytes, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/languages",
		c.opts.BaseURL, url.PathEscape(c.opts.Handle), url.PathEscape(repo))

	body, err := providers.Get(ctx, c.client, endpoint, c.opts.UserAgent)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("decode languages response: %w", profile.ErrMalformedResponse)
	}

	var langs []profile.LanguageBytes
	parsed.ForEach(func(key, value gjson.Result) bool {
		langs = append(langs, profile.LanguageBytes{Name: key.String(), Bytes: value.Int()})
		return true
	})
	return langs, nil
}

// FetchEvents lists the handle's recent public activity events.
func (c *Client) FetchEvents(ctx context.Context, perPage int) ([]time.Time, error) {
	endpoint := fmt.Sprintf("%s/users/%s/events/public?per_page=%d",
		c.opts.BaseURL, url.PathEscape(c.opts.Handle), clampPageSize(perPage, DefaultEventsPageSize))

	body, err := providers.Get(ctx, c.client, endpoint, c.opts.UserAgent)
	if err != nil {
		return nil, err
	}

	var events []githubEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode events response: %w: %w", profile.ErrMalformedResponse, err)
	}

	stamps := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e.CreatedAt.IsZero() {
			continue
		}
		stamps = append(stamps, e.CreatedAt)
	}
	return stamps, nil
}

// Contributions buckets recent public events per day for the heatmap.
// On failure it returns an empty slice along with the error.
func (c *Client) Contributions(ctx context.Context, days int) ([]profile.ContributionDay, error) {
	stamps, err := c.FetchEvents(ctx, c.opts.EventsPageSize)
	if err != nil {
		return []profile.ContributionDay{}, fmt.Errorf("github: fetch events: %w", err)
	}
	return profile.BucketContributions(stamps, c.now(), days), nil
}

func pickName(u githubUser) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

func normalizeSort(sort string) string {
	switch sort {
	case "updated", "created", "pushed":
		return sort
	default:
		return DefaultRepoSort
	}
}

func clampPageSize(n, def int) int {
	if n <= 0 {
		return def
	}
	return min(n, 100)
}
