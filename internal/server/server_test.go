package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanbv/folio/internal/aggregate"
	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubContributions struct {
	days    []profile.ContributionDay
	err     error
	gotDays int
}

func (s *stubContributions) Contributions(_ context.Context, days int) ([]profile.ContributionDay, error) {
	s.gotDays = days
	return s.days, s.err
}

type stubStore struct {
	saved []string
	err   error
}

func (s *stubStore) InsertContactMessage(name, email, message string) (*store.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.saved = append(s.saved, name+"|"+email+"|"+message)
	return &store.ContactMessage{ID: "id-1", Name: name, Email: email, Message: message}, nil
}

func liveGitHub() *profile.Snapshot {
	return &profile.Snapshot{
		Source:    profile.SourceGitHub,
		Status:    profile.StatusLive,
		FetchedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StarCount: 12,
		LanguageBreakdown: []profile.LanguageShare{
			{Name: "Python", Bytes: 800, Percentage: 80},
			{Name: "Go", Bytes: 200, Percentage: 20},
		},
		Repositories: []profile.Repository{
			{Name: "vision-lab", Description: "Image models", PrimaryLanguage: "Python", Topics: []string{"pytorch"}, GithubURL: "https://github.com/u/vision-lab"},
			{Name: "site", Description: "Personal site", PrimaryLanguage: "TypeScript", GithubURL: "https://github.com/u/site"},
			{Name: "fork", Description: "Forked", IsFork: true, GithubURL: "https://github.com/u/fork"},
			{Name: "scratch", PrimaryLanguage: "Go", GithubURL: "https://github.com/u/scratch"},
		},
	}
}

func newTestEngine(t *testing.T, deps Deps) (*gin.Engine, *aggregate.Aggregator) {
	t.Helper()
	agg := aggregate.New(aggregate.NewBoard(), nil)
	deps.Aggregator = agg
	return New(deps), agg
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestHealth(t *testing.T) {
	r, agg := newTestEngine(t, Deps{})
	w, body := get(t, r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["ready"])
	assert.Equal(t, map[string]any{"github": "loading", "leetcode": "loading"}, body["providers"])

	agg.Board().Store(liveGitHub())
	_, body = get(t, r, "/healthz")
	assert.Equal(t, false, body["ready"], "leetcode has not resolved")

	agg.Board().Store(&profile.Snapshot{Source: profile.SourceLeetCode, Status: profile.StatusFallback})
	_, body = get(t, r, "/healthz")
	assert.Equal(t, true, body["ready"])
	assert.Equal(t, map[string]any{"github": "live", "leetcode": "fallback"}, body["providers"])
}

func TestSnapshot_LoadingUntilStored(t *testing.T) {
	r, agg := newTestEngine(t, Deps{})

	w, body := get(t, r, "/api/github")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "loading", body["status"])

	agg.Board().Store(liveGitHub())
	w, body = get(t, r, "/api/github")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", body["status"])
	assert.EqualValues(t, 12, body["star_count"])

	w, _ = get(t, r, "/api/leetcode")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestProjects_CuratedThenLive(t *testing.T) {
	r, agg := newTestEngine(t, Deps{ShowcaseLimit: 1})

	_, body := get(t, r, "/api/projects")
	curated := len(catalog.Default().Projects)
	assert.Len(t, body["projects"], curated)

	agg.Board().Store(liveGitHub())
	_, body = get(t, r, "/api/projects")
	projects := body["projects"].([]any)
	require.Len(t, projects, curated+1)
	last := projects[curated].(map[string]any)
	assert.Equal(t, "vision-lab", last["title"])
	assert.Equal(t, "ai", last["category"])
}

func TestProjects_Filter(t *testing.T) {
	r, _ := newTestEngine(t, Deps{})

	_, body := get(t, r, "/api/projects?category=featured")
	for _, p := range body["projects"].([]any) {
		assert.Equal(t, true, p.(map[string]any)["featured"])
	}

	_, body = get(t, r, "/api/projects?q=no-such-project-anywhere")
	assert.Empty(t, body["projects"])
	assert.NotNil(t, body["projects"], "empty list, not null")
}

func TestRepositories(t *testing.T) {
	r, agg := newTestEngine(t, Deps{})

	_, body := get(t, r, "/api/repositories")
	assert.Empty(t, body["repositories"])
	assert.NotNil(t, body["repositories"])

	agg.Board().Store(liveGitHub())
	_, body = get(t, r, "/api/repositories")
	repos := body["repositories"].([]any)
	require.Len(t, repos, 2, "forks and undescribed repositories are hidden")
	assert.Equal(t, "vision-lab", repos[0].(map[string]any)["name"])
}

func TestRepositories_FallbackIsHidden(t *testing.T) {
	r, agg := newTestEngine(t, Deps{})
	snap := liveGitHub()
	snap.Status = profile.StatusFallback
	agg.Board().Store(snap)

	_, body := get(t, r, "/api/repositories")
	assert.Empty(t, body["repositories"])
}

func TestTech(t *testing.T) {
	r, agg := newTestEngine(t, Deps{})
	agg.Board().Store(liveGitHub())

	_, body := get(t, r, "/api/tech?category=languages&q=python")
	items := body["items"].([]any)
	require.Len(t, items, 1)

	python := items[0].(map[string]any)
	assert.Equal(t, "Python", python["name"])
	assert.EqualValues(t, 100, python["proficiency"])
	icon := python["icon"].(map[string]any)
	assert.Equal(t, "fa:python", icon["id"])

	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["total"])
	assert.NotEmpty(t, body["categories"])
}

func TestCertificates(t *testing.T) {
	r, _ := newTestEngine(t, Deps{})

	_, body := get(t, r, "/api/certificates")
	assert.Len(t, body["certificates"], len(catalog.Default().Certificates))

	_, body = get(t, r, "/api/certificates?category=featured")
	for _, c := range body["certificates"].([]any) {
		assert.Equal(t, true, c.(map[string]any)["featured"])
	}
}

func TestTimeline(t *testing.T) {
	r, _ := newTestEngine(t, Deps{})

	_, body := get(t, r, "/api/timeline")
	assert.Len(t, body["entries"], len(catalog.Default().Timeline))
	assert.Len(t, body["tabs"], len(catalog.TimelineTabs))

	_, body = get(t, r, "/api/timeline?type="+catalog.EntryEducation)
	for _, e := range body["entries"].([]any) {
		assert.Equal(t, catalog.EntryEducation, e.(map[string]any)["type"])
	}
}

func TestPlatforms_Static(t *testing.T) {
	r, _ := newTestEngine(t, Deps{})

	w, body := get(t, r, "/api/platforms")
	assert.Equal(t, http.StatusOK, w.Code)
	platforms := body["platforms"].([]any)
	require.Len(t, platforms, 1)
	gfg := platforms[0].(map[string]any)
	assert.Equal(t, "GeeksforGeeks", gfg["name"])
	assert.Equal(t, "#2F8D46", gfg["color"])
	assert.NotContains(t, gfg, "status")
	assert.Len(t, gfg["stats"], 7)
}

func TestContributions(t *testing.T) {
	days := []profile.ContributionDay{{Date: "2026-03-10", Count: 3, Weekday: 2}}

	tests := []struct {
		name     string
		query    string
		code     int
		wantDays int
	}{
		{"default window", "", http.StatusOK, defaultContributionDays},
		{"explicit", "?days=30", http.StatusOK, 30},
		{"capped", "?days=9999", http.StatusOK, profile.MaxContributionDays},
		{"zero", "?days=0", http.StatusBadRequest, 0},
		{"not a number", "?days=abc", http.StatusBadRequest, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &stubContributions{days: days}
			r, _ := newTestEngine(t, Deps{Contributions: src})

			w, body := get(t, r, "/api/contributions"+tc.query)
			require.Equal(t, tc.code, w.Code)
			if tc.code != http.StatusOK {
				assert.Contains(t, body, "error")
				return
			}
			assert.Equal(t, tc.wantDays, src.gotDays)
			assert.Len(t, body["contributions"], 1)
		})
	}
}

func TestContributions_FailureIsEmpty(t *testing.T) {
	src := &stubContributions{err: profile.ErrNetworkUnavailable}
	var logs bytes.Buffer
	r, _ := newTestEngine(t, Deps{Contributions: src, Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	w, body := get(t, r, "/api/contributions")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["contributions"])
	assert.NotNil(t, body["contributions"])
	assert.Contains(t, logs.String(), "kind=network_unavailable")
}

func TestContact_JSON(t *testing.T) {
	st := &stubStore{}
	r, _ := newTestEngine(t, Deps{Store: st})

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	w, body := do(t, r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, ContactAck, body["message"])
	assert.Equal(t, []string{"Ada|ada@example.com|Hello"}, st.saved)
}

func TestContact_Form(t *testing.T) {
	st := &stubStore{}
	r, _ := newTestEngine(t, Deps{Store: st})

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w, _ := do(t, r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, st.saved, 1)
}

func TestContact_Invalid(t *testing.T) {
	bodies := map[string]string{
		"missing name":  `{"email":"ada@example.com","message":"Hello"}`,
		"bad email":     `{"name":"Ada","email":"not-an-email","message":"Hello"}`,
		"empty message": `{"name":"Ada","email":"ada@example.com","message":""}`,
		"not json":      `{`,
	}

	for name, raw := range bodies {
		t.Run(name, func(t *testing.T) {
			st := &stubStore{}
			r, _ := newTestEngine(t, Deps{Store: st})

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")

			w, body := do(t, r, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, body, "error")
			assert.Empty(t, st.saved)
		})
	}
}

func TestContact_StoreFailureStillAcknowledged(t *testing.T) {
	st := &stubStore{err: errors.New("disk full")}
	var logs bytes.Buffer
	r, _ := newTestEngine(t, Deps{Store: st, Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	w, body := do(t, r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, logs.String(), "disk full")
}

func TestContact_WithSQLiteStore(t *testing.T) {
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r, _ := newTestEngine(t, Deps{Store: db})
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	w, _ := do(t, r, req)
	require.Equal(t, http.StatusOK, w.Code)

	msgs, err := db.ListContactMessages(10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ada", msgs[0].Name)
	assert.NotEmpty(t, msgs[0].ID)
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	r, _ := newTestEngine(t, Deps{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	get(t, r, "/healthz")
	assert.Contains(t, logs.String(), "path=/healthz")
	assert.Contains(t, logs.String(), "status=200")
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "127.0.0.1:0", http.NotFoundHandler(), slog.New(slog.DiscardHandler))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
