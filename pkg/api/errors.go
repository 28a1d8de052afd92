package api

import (
	"errors"
	"fmt"
)

// The backend error taxonomy. Every error here is non-fatal to the
// client session: the caller can retry, cancel, or navigate away.

// ConnectionError means the backend could not be reached at all.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ServerError is a 5xx response.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (HTTP %d)", e.Status)
}

// ValidationError is a 4xx response carrying a message that is shown to
// the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrDuplicate is the conflict response from the best-effort single-item
// label calls. Callers swallow it: the bulk section save is the source
// of truth.
var ErrDuplicate = errors.New("already exists")

// IsDuplicate reports whether the error is the swallowable conflict.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
