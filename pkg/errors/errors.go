// Package errors provides structured error types for poscode.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (codes, permutations, values, config)
//   - SIZE_MISMATCH: A reusable workspace disagrees with the input size
//   - NETWORK_ERROR: Remote backend failures
//   - INTERNAL_* / UNSUPPORTED: Unexpected or platform-specific failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidEncoding, "C[%d] = %d exceeds bound %d", i, c[i], i)
//	if errors.Is(err, errors.ErrCodeInvalidEncoding) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Core validation errors
	ErrCodeInvalidEncoding    Code = "INVALID_ENCODING"
	ErrCodeInvalidPermutation Code = "INVALID_PERMUTATION"
	ErrCodeInvalidValue       Code = "INVALID_VALUE"
	ErrCodeSizeMismatch       Code = "SIZE_MISMATCH"

	// Surface validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Storage errors
	ErrCodeNetwork Code = "NETWORK_ERROR"

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

// IsValidation reports whether err carries one of the input validation codes.
// The HTTP API maps these to 400 responses.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidEncoding, ErrCodeInvalidPermutation, ErrCodeInvalidValue,
		ErrCodeSizeMismatch, ErrCodeInvalidInput, ErrCodeInvalidFormat:
		return true
	}
	return false
}
