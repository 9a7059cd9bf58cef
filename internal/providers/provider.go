// Package providers holds the contract shared by the external profile
// clients and the HTTP plumbing they use.
package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aryanbv/folio/internal/profile"
)

// Provider fetches one source's data and always reports a tagged result.
type Provider interface {
	Name() string
	Source() profile.Source
	Fetch(ctx context.Context) profile.Result
}

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 8 << 20

// Get issues a single unauthenticated GET and returns the body of a 2xx
// response. Failures wrap the profile error taxonomy: transport errors wrap
// ErrNetworkUnavailable and other statuses return a *profile.HTTPStatusError.
func Get(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("do request: %w", ctxErr)
		}
		return nil, fmt.Errorf("do request: %w: %w", profile.ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &profile.HTTPStatusError{Code: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w: %w", profile.ErrNetworkUnavailable, err)
	}
	return body, nil
}
