package domain

import "fmt"

// AuthenticationError indicates that credentials were missing, blank, or
// otherwise unusable at connect time. Credential rejection by the remote
// service is deferred to the first real request and surfaces as a
// RequestError with status 401 or 403.
type AuthenticationError struct {
	Reason string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// RequestError indicates a failed query: a non-2xx HTTP response or a
// transport-level failure (connection refused, DNS failure, malformed
// response body). It carries enough context to diagnose the failure and is
// always propagated to the caller unchanged - never retried or swallowed.
type RequestError struct {
	URL        string // the full request URL
	StatusCode int    // HTTP status, or 0 for transport/decode failures
	Body       string // response body excerpt, if any
	Err        error  // underlying cause, if any
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed (status %d): %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("request failed: %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// ArgumentError indicates an invalid caller-supplied argument (an
// unrecognized return type, an empty JQL query, an empty issue id).
// It is raised before any network call is made.
type ArgumentError struct {
	Name   string // the offending argument
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}
