package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind string

const (
	// KindNotFound indicates a requested aggregate or resource does not exist
	KindNotFound Kind = "NOT_FOUND"
	// KindValidation indicates the caller supplied invalid input
	KindValidation Kind = "VALIDATION"
	// KindConflict indicates a concurrent modification was detected
	KindConflict Kind = "CONFLICT"
	// KindInternal indicates an unexpected internal failure
	KindInternal Kind = "INTERNAL"
)

// AppError is the error type carried across use-case boundaries. Message is
// stable and safe to surface to callers; Err keeps the original cause for
// internal logging and errors.Is/As chains.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error.
func New(kind Kind, message string) error {
	return &AppError{Kind: kind, Message: message}
}

// Wrap creates a new application error keeping err as the cause.
func Wrap(kind Kind, message string, err error) error {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NotFound creates a not found error.
func NotFound(message string) error {
	return New(KindNotFound, message)
}

// NotFoundf creates a not found error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Validation creates a validation error.
func Validation(message string) error {
	return New(KindValidation, message)
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Conflict creates a conflict error.
func Conflict(message string) error {
	return New(KindConflict, message)
}

// Internal creates an internal error.
func Internal(message string) error {
	return New(KindInternal, message)
}

func isKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsNotFound reports whether err is a not found error.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return isKind(err, KindConflict)
}

// IsInternal reports whether err is an internal error.
func IsInternal(err error) bool {
	return isKind(err, KindInternal)
}
