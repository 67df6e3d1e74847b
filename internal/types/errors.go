package types

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by handlers and controllers. Handlers translate these
// to HTTP statuses; everything unrecognized becomes a 500.
var (
	ErrUnauthorized  = errors.New("authentication required")
	ErrAccessDenied  = errors.New("operator access required")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoAccessToken = errors.New("no provider access token")
)

// ProviderError carries a non-success status from the Spotify API through to
// the caller unchanged, so a provider-side 404 stays a 404.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Status, e.Message)
}

// WriteFailedError is the coarse signal surfaced for any store or provider
// failure inside a write operation. The underlying cause is logged server-side
// and deliberately not exposed.
type WriteFailedError struct {
	Operation string
	cause     error
}

func NewWriteFailed(operation string, cause error) *WriteFailedError {
	return &WriteFailedError{Operation: operation, cause: cause}
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("write failed: %s", e.Operation)
}

func (e *WriteFailedError) Unwrap() error {
	return e.cause
}
