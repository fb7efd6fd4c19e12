package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the upstream credentials are missing. Surfaced on
	// the first token request, not at startup.
	ErrNotConfigured = errors.New("amadeus: api key or secret not configured")

	// ErrUnauthorized means the upstream rejected our credential. The token
	// cache has already been invalidated; the failure is not retried.
	ErrUnauthorized = errors.New("amadeus: authentication failed")
)

// UpstreamError is a non-auth upstream HTTP failure. Detail carries the first
// upstream-provided error detail when one could be decoded.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream %d", e.StatusCode)
}

// SearchError is the terminal search failure: the primary query failed and no
// fallback tier recovered. Detail is the best available upstream message.
type SearchError struct {
	Detail string
}

func (e *SearchError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "hotel search failed"
}
