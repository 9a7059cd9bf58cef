package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanbv/folio/internal/profile"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const userJSON = `{
	"login": "octo",
	"name": "Octo Cat",
	"bio": "builds things",
	"avatar_url": "https://example.com/a.png",
	"followers": 12,
	"following": 3,
	"public_repos": 3,
	"created_at": "2020-01-02T03:04:05Z"
}`

const reposJSON = `[
	{"id": 1, "name": "alpha", "description": "first", "language": "Go", "topics": ["cli"],
	 "stargazers_count": 5, "forks_count": 1, "watchers_count": 5, "html_url": "https://github.com/octo/alpha",
	 "created_at": "2024-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z", "fork": false},
	{"id": 2, "name": "beta", "description": null, "language": "Python", "topics": [],
	 "stargazers_count": 0, "forks_count": 0, "watchers_count": 0, "html_url": "https://github.com/octo/beta",
	 "fork": false},
	{"id": 3, "name": "gamma", "description": "forked", "language": "Go",
	 "stargazers_count": 2, "forks_count": 4, "watchers_count": 2, "html_url": "https://github.com/octo/gamma",
	 "fork": true}
]`

// stubGitHub serves a minimal GitHub API for handle "octo".
type stubGitHub struct {
	userStatus  int
	reposStatus int
	languages   map[string]string
	events      string
	hits        atomic.Int32
}

func newStub() *stubGitHub {
	return &stubGitHub{
		userStatus:  http.StatusOK,
		reposStatus: http.StatusOK,
		languages: map[string]string{
			"alpha": `{"Go": 7000, "Shell": 1000}`,
			"beta":  `{"Python": 2000}`,
			"gamma": `{"Go": 0}`,
		},
		events: `[]`,
	}
}

func (s *stubGitHub) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		w.WriteHeader(s.userStatus)
		_, _ = fmt.Fprint(w, userJSON)
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.WriteHeader(s.reposStatus)
		_, _ = fmt.Fprint(w, reposJSON)
	})
	mux.HandleFunc("/users/octo/events/public", func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		_, _ = fmt.Fprint(w, s.events)
	})
	mux.HandleFunc("/repos/octo/{repo}/languages", func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		body, ok := s.languages[r.PathValue("repo")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, body)
	})
	return mux
}

func newTestClient(t *testing.T, stub *stubGitHub) *Client {
	t.Helper()
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	c := New(Options{BaseURL: srv.URL, Handle: "octo", Timeout: 2 * time.Second})
	c.SetClock(func() time.Time { return fixedNow })
	return c
}

func TestFetch_Live(t *testing.T) {
	c := newTestClient(t, newStub())

	res := c.Fetch(context.Background())
	require.Equal(t, profile.KindOk, res.Kind, "reason: %v", res.Reason)

	s := res.Snapshot
	assert.Equal(t, profile.SourceGitHub, s.Source)
	assert.Equal(t, profile.StatusLive, s.Status)
	assert.Equal(t, fixedNow, s.FetchedAt)
	assert.Equal(t, 3, s.RepositoryCount)
	assert.Equal(t, 7, s.StarCount)
	assert.Equal(t, 5, s.ForkCount)
	assert.Equal(t, 12, s.FollowerCount)
	assert.Equal(t, 3, s.FollowingCount)
	require.NotNil(t, s.Profile)
	assert.Equal(t, "Octo Cat", s.Profile.Name)

	require.Len(t, s.LanguageBreakdown, 3)
	assert.Equal(t, profile.LanguageShare{Name: "Go", Percentage: 70, Bytes: 7000}, s.LanguageBreakdown[0])
	assert.Equal(t, "Python", s.LanguageBreakdown[1].Name)
	assert.Equal(t, 20, s.LanguageBreakdown[1].Percentage)
	assert.Equal(t, "Shell", s.LanguageBreakdown[2].Name)

	// The tech-stats list keeps forks and undescribed repositories.
	require.Len(t, s.Repositories, 3)
	assert.True(t, s.Repositories[2].IsFork)
	assert.Empty(t, s.Repositories[1].Description)
}

func TestFetch_ZeroStarsStayLive(t *testing.T) {
	stub := newStub()
	c := newTestClient(t, stub)

	repos, err := c.FetchRepositories(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, repos[1].StarCount)
}

func TestFetch_Idempotent(t *testing.T) {
	c := newTestClient(t, newStub())

	first := c.Fetch(context.Background())
	second := c.Fetch(context.Background())
	require.Equal(t, profile.KindOk, first.Kind)
	assert.Equal(t, first.Snapshot, second.Snapshot)
}

func TestFetch_FallbackOnProfileFailure(t *testing.T) {
	stub := newStub()
	stub.userStatus = http.StatusForbidden
	c := newTestClient(t, stub)

	res := c.Fetch(context.Background())
	require.Equal(t, profile.KindFallback, res.Kind)
	assert.ErrorIs(t, res.Reason, profile.ErrNonSuccessStatus)

	s := res.Snapshot
	assert.Equal(t, profile.StatusFallback, s.Status)
	assert.Equal(t, FallbackRepositories, s.RepositoryCount)
	assert.Equal(t, FallbackStars, s.StarCount)
	assert.Equal(t, FallbackForks, s.ForkCount)
	assert.Equal(t, FallbackFollowers, s.FollowerCount)
	assert.Equal(t, FallbackFollowing, s.FollowingCount)
	assert.Equal(t, FallbackLanguages, s.LanguageBreakdown)
	assert.Nil(t, s.Profile, "fallback must not carry live fields")
	assert.Empty(t, s.Repositories)
	assert.Equal(t, FallbackMessage, s.Message)
}

func TestFetch_FallbackOnMalformedRepos(t *testing.T) {
	stub := newStub()
	c := newTestClient(t, stub)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/octo" {
			_, _ = fmt.Fprint(w, userJSON)
			return
		}
		_, _ = fmt.Fprint(w, `{"not":"a list"`)
	}))
	t.Cleanup(srv.Close)
	c.opts.BaseURL = srv.URL

	res := c.Fetch(context.Background())
	require.Equal(t, profile.KindFallback, res.Kind)
	assert.ErrorIs(t, res.Reason, profile.ErrMalformedResponse)
}

func TestFetch_FallbackOnNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(Options{BaseURL: base, Handle: "octo", Timeout: time.Second})
	res := c.Fetch(context.Background())
	require.Equal(t, profile.KindFallback, res.Kind)
	assert.ErrorIs(t, res.Reason, profile.ErrNetworkUnavailable)
}

func TestFetch_LanguageFailureContributesNothing(t *testing.T) {
	stub := newStub()
	delete(stub.languages, "beta")
	c := newTestClient(t, stub)

	res := c.Fetch(context.Background())
	require.Equal(t, profile.KindOk, res.Kind)
	require.Len(t, res.Snapshot.LanguageBreakdown, 2)
	assert.Equal(t, "Go", res.Snapshot.LanguageBreakdown[0].Name)
	assert.Equal(t, 88, res.Snapshot.LanguageBreakdown[0].Percentage)
}

func TestSampleLanguages_Bounded(t *testing.T) {
	stub := newStub()
	c := newTestClient(t, stub)
	c.opts.LanguageSample = 2

	repos := make([]profile.Repository, 15)
	for i := range repos {
		repos[i].Name = "alpha"
	}

	before := stub.hits.Load()
	perRepo := c.sampleLanguages(context.Background(), repos)
	assert.Len(t, perRepo, 2)
	assert.Equal(t, int32(2), stub.hits.Load()-before)
}

func TestFetchLanguages_PreservesOrder(t *testing.T) {
	stub := newStub()
	stub.languages["alpha"] = `{"TypeScript": 10, "CSS": 30, "HTML": 20}`
	c := newTestClient(t, stub)

	langs, err := c.FetchLanguages(context.Background(), "alpha")
	require.NoError(t, err)
	require.Len(t, langs, 3)
	assert.Equal(t, "TypeScript", langs[0].Name)
	assert.Equal(t, "CSS", langs[1].Name)
	assert.Equal(t, "HTML", langs[2].Name)
}

func TestFetchRepositories_Params(t *testing.T) {
	var gotSort, gotPer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort")
		gotPer = r.URL.Query().Get("per_page")
		_, _ = fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(srv.Close)
	c := New(Options{BaseURL: srv.URL, Handle: "octo"})

	_, err := c.FetchRepositories(context.Background(), "pushed", 500)
	require.NoError(t, err)
	assert.Equal(t, "pushed", gotSort)
	assert.Equal(t, "100", gotPer)

	_, err = c.FetchRepositories(context.Background(), "stars", 6)
	require.NoError(t, err)
	assert.Equal(t, "updated", gotSort)
	assert.Equal(t, "6", gotPer)
}

func TestContributions(t *testing.T) {
	stub := newStub()
	stub.events = `[
		{"type": "PushEvent", "created_at": "2026-03-10T08:00:00Z"},
		{"type": "PushEvent", "created_at": "2026-03-10T09:00:00Z"},
		{"type": "IssuesEvent", "created_at": "2026-03-09T09:00:00Z"},
		{"type": "PushEvent", "created_at": "2026-03-08T01:00:00Z"},
		{"type": "PushEvent", "created_at": "2026-03-08T02:00:00Z"},
		{"type": "PushEvent", "created_at": "2026-03-08T03:00:00Z"},
		{"type": "PushEvent", "created_at": "2026-03-08T04:00:00Z"},
		{"type": "PushEvent", "created_at": "2026-03-08T05:00:00Z"}
	]`
	c := newTestClient(t, stub)

	days, err := c.Contributions(context.Background(), 365)
	require.NoError(t, err)
	require.Len(t, days, 365)

	last := days[len(days)-1]
	assert.Equal(t, "2026-03-10", last.Date)
	assert.Equal(t, 2, last.Count)
	assert.Equal(t, int(time.Tuesday), last.Weekday)
	assert.Equal(t, 1, days[len(days)-2].Count)
	assert.Equal(t, profile.MaxContributionLevel, days[len(days)-3].Count)
	assert.Equal(t, 0, days[0].Count)
}

func TestContributions_FailureIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := New(Options{BaseURL: srv.URL, Handle: "octo"})

	days, err := c.Contributions(context.Background(), 30)
	require.Error(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}
