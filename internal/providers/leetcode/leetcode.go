// Package leetcode is the client for the public LeetCode statistics proxy.
package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/providers"
)

const (
	DefaultBaseURL   = "https://leetcode-stats-api.herokuapp.com"
	DefaultUserAgent = "folio/0.1"
	DefaultTimeout   = 10 * time.Second
)

// FallbackMessage marks fallback statistics as not live.
const FallbackMessage = "Using cached data"

// FallbackStats is returned verbatim whenever the proxy cannot be used.
var FallbackStats = profile.CodingStats{
	TotalSolved:        180,
	EasySolved:         85,
	MediumSolved:       60,
	HardSolved:         35,
	Ranking:            50234,
	AcceptanceRate:     65.5,
	ContributionPoints: 0,
	Reputation:         0,
	Message:            FallbackMessage,
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Handle    string
	Timeout   time.Duration
	UserAgent string
}

// Client fetches aggregate problem-solving statistics for one handle.
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

func (c *Client) Name() string { return "leetcode" }

func (c *Client) Source() profile.Source { return profile.SourceLeetCode }

var _ providers.Provider = (*Client)(nil)

// Fetch retrieves the statistics. Any failure, including a 2xx body with
// status "error", yields a fallback snapshot carrying FallbackStats.
func (c *Client) Fetch(ctx context.Context) profile.Result {
	stats, err := c.FetchStats(ctx)
	if err != nil {
		fallback := FallbackStats
		return profile.Fallback(&profile.Snapshot{
			Source:    profile.SourceLeetCode,
			Status:    profile.StatusFallback,
			FetchedAt: c.now().UTC(),
			Message:   FallbackMessage,
			Coding:    &fallback,
		}, fmt.Errorf("leetcode: fetch stats: %w", err))
	}

	return profile.Ok(&profile.Snapshot{
		Source:    profile.SourceLeetCode,
		Status:    profile.StatusLive,
		FetchedAt: c.now().UTC(),
		Coding:    stats,
	})
}

// FetchStats issues the request and decodes the body. Missing fields decode
// as zero; a present zero is kept as zero.
func (c *Client) FetchStats(ctx context.Context) (*profile.CodingStats, error) {
	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.opts.BaseURL, "/"), url.PathEscape(c.opts.Handle))

	body, err := providers.Get(ctx, c.client, endpoint, c.opts.UserAgent)
	if err != nil {
		return nil, err
	}
	return decodeStats(body)
}

func decodeStats(body []byte) (*profile.CodingStats, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode stats response: %w", profile.ErrMalformedResponse)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("decode stats response: %w", profile.ErrMalformedResponse)
	}

	if strings.EqualFold(doc.Get("status").String(), "error") {
		return nil, &profile.ProviderError{Message: doc.Get("message").String()}
	}

	return &profile.CodingStats{
		TotalSolved:        int(doc.Get("totalSolved").Int()),
		EasySolved:         int(doc.Get("easySolved").Int()),
		MediumSolved:       int(doc.Get("mediumSolved").Int()),
		HardSolved:         int(doc.Get("hardSolved").Int()),
		Ranking:            int(doc.Get("ranking").Int()),
		AcceptanceRate:     doc.Get("acceptanceRate").Float(),
		ContributionPoints: int(doc.Get("contributionPoints").Int()),
		Reputation:         int(doc.Get("reputation").Int()),
	}, nil
}
