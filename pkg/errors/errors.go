// Package errors provides structured error types for the depline application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Data errors (EMPTY_INPUT, NO_VALID_LISTINGS, DUPLICATE_LIBRARY,
// SELF_DEPENDENCY) are raised by the core pipeline and map to HTTP 400.
// INVALID_INPUT covers shell-level validation failures (bad form fields,
// empty uploads). INTERNAL_ERROR covers everything unexpected.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateLibrary, "library %q is defined more than once", name)
//	if errors.Is(err, errors.ErrCodeDuplicateLibrary) {
//	    // Handle duplicate definition
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "read upload")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Dependency data errors raised by the core pipeline.
	ErrCodeEmptyInput       Code = "EMPTY_INPUT"
	ErrCodeNoValidListings  Code = "NO_VALID_LISTINGS"
	ErrCodeDuplicateLibrary Code = "DUPLICATE_LIBRARY"
	ErrCodeSelfDependency   Code = "SELF_DEPENDENCY"

	// Shell-level validation errors.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsDataError reports whether err is one of the four dependency data
// errors raised by the core pipeline. The HTTP API maps these to 400
// responses; anything else becomes a 500.
func IsDataError(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptyInput, ErrCodeNoValidListings, ErrCodeDuplicateLibrary, ErrCodeSelfDependency:
		return true
	}
	return false
}
