// Package errors provides structured error types for graph edits.
//
// Two kinds of failure leave the graph untouched:
//   - Validation errors reject an edit outright (bad index, self-loop,
//     sub-1 weight, non-numeric input).
//   - No-op warnings report that an edit had nothing to act on (removing
//     an edge that does not exist). They are not failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfRange, "node indices must be 0 – %d", n-1)
//	if errors.IsValidation(err) {
//	    // reject the edit
//	}
//	if errors.IsNoOp(err) {
//	    // nothing changed
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for edit validation.
const (
	// Validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"
	ErrCodeSelfLoop      Code = "SELF_LOOP"
	ErrCodeInvalidWeight Code = "INVALID_WEIGHT"

	// No-op warnings
	ErrCodeNoEdge Code = "NO_EDGE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsValidation reports whether err rejected an edit.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeOutOfRange, ErrCodeSelfLoop, ErrCodeInvalidWeight:
		return true
	}
	return false
}

// IsNoOp reports whether err is a warning that the edit changed nothing.
func IsNoOp(err error) bool {
	return Is(err, ErrCodeNoEdge)
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
