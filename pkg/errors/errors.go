// Package errors provides structured error types for the vizier library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and render service
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes map 1:1 to the failure classes of the engine boundary:
//   - *_CREATION_FAILED / *_REMOVAL_FAILED: entity table mutations
//   - LAYOUT_* / RENDER_*: engine calls that returned a failure status
//   - ATTRIBUTE_*: attribute subsystem failures
//   - INVALID_*: caller-supplied values with no defined mapping or encoding
//   - NULL_POINTER: invariant violations (a handle was expected and missing)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidEngine) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "render %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Entity construction errors
	ErrCodeGraphCreationFailed Code = "GRAPH_CREATION_FAILED"
	ErrCodeNodeCreationFailed  Code = "NODE_CREATION_FAILED"
	ErrCodeEdgeCreationFailed  Code = "EDGE_CREATION_FAILED"

	// Entity removal errors
	ErrCodeNodeRemovalFailed Code = "NODE_REMOVAL_FAILED"
	ErrCodeEdgeRemovalFailed Code = "EDGE_REMOVAL_FAILED"

	// Engine call errors
	ErrCodeLayoutFailed     Code = "LAYOUT_FAILED"
	ErrCodeRenderFailed     Code = "RENDER_FAILED"
	ErrCodeFreeLayoutFailed Code = "FREE_LAYOUT_FAILED"

	// Attribute subsystem errors
	ErrCodeAttributeSetFailed Code = "ATTRIBUTE_SET_FAILED"
	ErrCodeAttributeGetFailed Code = "ATTRIBUTE_GET_FAILED"

	// String encoding errors
	ErrCodeInvalidString Code = "INVALID_STRING"
	ErrCodeInvalidUTF8   Code = "INVALID_UTF8"

	// Invariant violations
	ErrCodeNullPointer Code = "NULL_POINTER"

	// Engine runtime lifecycle errors
	ErrCodeContextCreationFailed Code = "CONTEXT_CREATION_FAILED"
	ErrCodeInitializationFailed  Code = "INITIALIZATION_FAILED"
	ErrCodeCleanupFailed         Code = "CLEANUP_FAILED"

	// Identifier mapping errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidEngine Code = "INVALID_ENGINE"

	// Filesystem errors
	ErrCodeIO Code = "IO_ERROR"
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

// NullPointer creates an invariant-violation error naming the handle that was
// expected but missing or no longer valid.
func NullPointer(what string) *Error {
	return New(ErrCodeNullPointer, "null pointer: %s", what)
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

// Has reports whether any error in err's chain carries the given code.
// Unlike [Is], it keeps unwrapping past the first *Error, so a wrapped
// cause code remains observable.
func Has(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
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
