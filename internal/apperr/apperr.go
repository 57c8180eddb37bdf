// Package apperr defines the error taxonomy shared by trackers, repositories and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation marks missing or invalid caller input.
	ErrValidation = errors.New("validation error")
	// ErrStoreUnavailable marks a failed read or write against the persistent store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrExternalService marks a failure of the text generation service.
	ErrExternalService = errors.New("external service error")
	// ErrNotFound marks a missing user, plan or note.
	ErrNotFound = errors.New("not found")
)

// Error carries the HTTP status and a machine readable code for an error.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error.
func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation wraps a formatted message with ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps a formatted message with ErrNotFound.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Unavailable wraps a store failure with ErrStoreUnavailable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// FromError maps err onto an Error with the matching HTTP status.
func FromError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, ErrValidation):
		return New(http.StatusBadRequest, "validation_error", err)
	case errors.Is(err, ErrNotFound):
		return New(http.StatusNotFound, "not_found", err)
	case errors.Is(err, ErrStoreUnavailable):
		return New(http.StatusInternalServerError, "store_unavailable", err)
	case errors.Is(err, ErrExternalService):
		return New(http.StatusBadGateway, "external_service_error", err)
	default:
		return New(http.StatusInternalServerError, "internal_error", err)
	}
}
