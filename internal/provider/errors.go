package provider

import "fmt"

// NetworkError wraps a transport-level failure reaching the map API.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RateLimitError reports that the provider refused the request because of
// rate or bandwidth limiting (HTTP 429 or 509).
type RateLimitError struct {
	Status string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("provider rate limited the request: %s", e.Status)
}

// StatusError reports any other non-200 provider response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned %s", e.Status)
}

// ParseError reports a malformed or empty map payload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed map payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
