package interview

import "errors"

var (
	// ErrValidation reports malformed or missing required input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound reports an unknown session id.
	ErrNotFound = errors.New("interview not found")
	// ErrInvalidState reports an operation that is not valid for the
	// session's current status.
	ErrInvalidState = errors.New("invalid interview state")
	// ErrModelUnavailable reports a failed model gateway call (transport,
	// auth, quota, timeout). Retryable by the caller; the session is left
	// at its last consistent state.
	ErrModelUnavailable = errors.New("model unavailable")
)
