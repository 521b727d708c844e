// Package errors provides structured error types for skilltree.
//
// Local editor operations are forgiving: the calling layer decides whether a
// NOT_FOUND should surface to the user or be logged and ignored. Structural
// violations such as dependency cycles are always returned to the caller.
//
// # Error Codes
//
//   - NOT_FOUND: an operation referenced a node or tree id that does not exist
//   - CYCLIC_DEPENDENCY: the dependency graph contains a cycle
//   - INVALID_RANGE: a progress value lies outside [0, 100]
//   - DUPLICATE_ID: an id is already in use within the tree
//   - INVALID_INPUT / INVALID_FORMAT: malformed user input or files
//   - INTERNAL_ERROR: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "node %q not found", id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // log and ignore
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidRange  Code = "INVALID_RANGE"
	ErrCodeDuplicateID   Code = "DUPLICATE_ID"

	// Structural errors
	ErrCodeNotFound           Code = "NOT_FOUND"
	ErrCodeCyclicDependency   Code = "CYCLIC_DEPENDENCY"
	ErrCodeTemplateNotFound   Code = "TEMPLATE_NOT_FOUND"
	ErrCodeLibrarySkillAbsent Code = "LIBRARY_SKILL_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// NotFound is shorthand for a NOT_FOUND error about a node id.
func NotFound(kind, id string) *Error {
	return New(ErrCodeNotFound, "%s %q not found", kind, id)
}

// CycleError carries the offending dependency cycle.
// The path starts and ends with the same id, e.g. [a b c a].
type CycleError struct {
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return "dependency cycle"
	}
	return fmt.Sprintf("dependency cycle: %v", e.Path)
}

// Code returns the error code for this error type.
func (e *CycleError) Code() Code {
	return ErrCodeCyclicDependency
}

// Cyclic wraps a cycle path as a CYCLIC_DEPENDENCY error.
func Cyclic(path []string) *Error {
	return Wrap(ErrCodeCyclicDependency, &CycleError{Path: path}, "dependencies must not form a cycle")
}
