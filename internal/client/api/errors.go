package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: no response was
	// received at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps 404 responses.
	ErrNotFound = errors.New("not found")
)

// Error is the normalized non-success response: a human-readable message
// (taken from the response body when parseable) plus the HTTP status for
// callers that need status-code-specific handling.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}
