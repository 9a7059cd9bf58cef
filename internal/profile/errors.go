package profile

import (
	"context"
	"errors"
	"fmt"
)

// Failure taxonomy for provider requests. Every provider error wraps exactly
// one of these so callers can use errors.Is.
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrNonSuccessStatus   = errors.New("non-success status")
	ErrProviderReported   = errors.New("provider reported error")
	ErrMalformedResponse  = errors.New("malformed response")
)

// HTTPStatusError is returned when a provider answers outside the 2xx range.
type HTTPStatusError struct {
	Code int
	URL  string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

func (e *HTTPStatusError) Unwrap() error { return ErrNonSuccessStatus }

// ProviderError is returned when a 2xx body reports a logical failure.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return ErrProviderReported.Error()
	}
	return fmt.Sprintf("%s: %s", ErrProviderReported, e.Message)
}

func (e *ProviderError) Unwrap() error { return ErrProviderReported }

// Classify returns the taxonomy name of err for logs and metrics.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrNonSuccessStatus):
		return "non_success_status"
	case errors.Is(err, ErrProviderReported):
		return "provider_reported"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrNetworkUnavailable):
		return "network_unavailable"
	default:
		return "unknown"
	}
}
