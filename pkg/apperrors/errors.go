package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to map it to a transport
// status or a retry decision.
type Kind string

const (
	KindNotFound      Kind = "NOT_FOUND"
	KindValidation    Kind = "VALIDATION_FAILED"
	KindUnavailable   Kind = "STORE_UNAVAILABLE"
	KindPartialResult Kind = "PARTIAL_RESULT"
	KindConflict      Kind = "CONFLICT"
	KindInternal      Kind = "INTERNAL"
)

// AppError carries an error kind alongside a human-readable message and an
// optional underlying cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that an entity is absent in its authoritative store.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s %q not found", resource, id),
	}
}

// Validation reports rejected input, e.g. an empty update payload.
func Validation(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
	}
}

// ValidationErr wraps a validator error.
func ValidationErr(message string, err error) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
		Err:     err,
	}
}

// Unavailable reports a failed or timed-out store call.
func Unavailable(store string, err error) *AppError {
	return &AppError{
		Kind:    KindUnavailable,
		Message: fmt.Sprintf("%s is unavailable", store),
		Err:     err,
	}
}

// Partial reports a composite read that succeeded against the authoritative
// store but failed on a dependent one.
func Partial(message string, err error) *AppError {
	return &AppError{
		Kind:    KindPartialResult,
		Message: message,
		Err:     err,
	}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
	}
}

// Internal wraps an unexpected error.
func Internal(message string, err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the kind from err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsUnavailable reports whether err is a store-unavailable error.
func IsUnavailable(err error) bool {
	return KindOf(err) == KindUnavailable
}
