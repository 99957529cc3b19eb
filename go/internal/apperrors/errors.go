// Package apperrors classifies failures so callers can tell rejected input,
// missing records, business conflicts and retryable store failures apart.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind identifies the error category.
type Kind string

const (
	// KindValidation marks malformed input rejected before any write.
	KindValidation Kind = "VALIDATION"

	// KindNotFound marks a referenced league, episode, castaway or user that does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict marks a request the current state rejects: league full, draft already run,
	// episode finalized, castaway already taken.
	KindConflict Kind = "CONFLICT"

	// KindTransaction marks a store failure mid-write. No partial state is left behind and
	// the call may be retried.
	KindTransaction Kind = "TRANSACTION"
)

// Error is a classified failure.
type Error struct {
	Kind Kind

	// Field names the offending input for validation errors.
	Field string

	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the operation unchanged.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransaction
}

// Validation creates a validation error for field.
func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not-found error for a kind of entity, e.g. NotFound("league", id).
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

// Conflict creates a conflict error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Transaction wraps a store failure.
func Transaction(op string, err error) *Error {
	return &Error{Kind: KindTransaction, Message: op, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool  { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool    { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool    { return KindOf(err) == KindConflict }
func IsTransaction(err error) bool { return KindOf(err) == KindTransaction }

// FieldOf returns the offending field of a validation error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
