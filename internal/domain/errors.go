package domain

import (
	"errors"
	"fmt"
)

// Kind classifies domain errors
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindUnauthorized   Kind = "UNAUTHORIZED"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindDuplicateEmail Kind = "DUPLICATE_EMAIL"
	KindLookupFailed   Kind = "LOOKUP_FAILED"
)

// Error is a domain error with a kind, message and optional cause
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is
var (
	ErrValidation     = &Error{Kind: KindValidation, Message: "validation error"}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrNotFound       = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict       = &Error{Kind: KindConflict, Message: "conflict"}
	ErrDuplicateEmail = &Error{Kind: KindDuplicateEmail, Message: "this email is already in use"}
	ErrLookupFailed   = &Error{Kind: KindLookupFailed, Message: "word lookup failed"}
)

// Validation creates a validation error
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Unauthorized creates an unauthorized error
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// NotFound creates a not found error
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict creates a conflict error
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// LookupFailed wraps a dictionary lookup failure
func LookupFailed(cause error) *Error {
	return &Error{Kind: KindLookupFailed, Message: "meaning could not be fetched or word not found", cause: cause}
}

// KindOf returns the kind of err, or "" when err is not a domain error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
