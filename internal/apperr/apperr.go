// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the resource id did not resolve.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden means the resource exists but its ownership chain does
	// not end at the caller.
	ErrForbidden = errors.New("access denied")
	// ErrInvalidState means the operation was attempted against a terminal
	// or not-yet-ready interview.
	ErrInvalidState = errors.New("invalid interview state")
	// ErrConflict means a concurrent writer won the version check; the
	// caller should re-read and retry.
	ErrConflict = errors.New("concurrent update conflict")
)

// ValidationError carries enough detail for the client to re-prompt the same
// question or form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validation builds a *ValidationError.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError wraps a failure from the generation provider. The interview
// state it interrupted is left untouched, so the call is retryable.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream wraps err as an UpstreamError for the named operation.
func Upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
