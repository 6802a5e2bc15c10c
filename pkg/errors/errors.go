// Package errors provides structured error types for the regroup solver.
//
// Error codes separate the two rejection classes of the solve boundary:
// parameter validation (INVALID_PARAMETER) and conflict-graph construction
// (MALFORMED_GRAPH). Both are detected synchronously before any search work
// starts; the search itself never produces recoverable errors.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "minimum group size must be at least 2, got %d", k)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeInvalidParameter covers rejected n/k combinations: n < k,
	// k < 2 or a negative entity count.
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"

	// ErrCodeMalformedGraph covers broken conflict specifications:
	// out-of-range vertex indices, self-pairs and duplicate pairs.
	ErrCodeMalformedGraph Code = "MALFORMED_GRAPH"

	// ErrCodeInvalidInput covers unreadable or undecodable instance files.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInternal covers unexpected failures outside the solve contract.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
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

// Is reports whether err carries the given error code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns an empty code if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
