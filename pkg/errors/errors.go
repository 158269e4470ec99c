// Package errors provides structured error types for the scene generator.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages that embed the active filter state
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes mirror the generation pipeline stages:
//   - NO_SELECTION / INVALID_*: request validation failures, reported before
//     any filtering or placement work
//   - EMPTY_POOL: filters matched zero items for a required lexical class
//   - NOTHING_PLACED: no item or sentence group fit on the canvas
//   - ASSET_LOAD: an image could not be loaded (non-fatal, placeholder fallback)
//   - LEXICON_LOAD / MANIFEST_LOAD: startup data files missing or malformed (fatal)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyPool, "no matching NOUNS for %s", summary)
//	if errors.Is(err, errors.ErrCodeEmptyPool) {
//	    // Handle empty-pool error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeLexiconLoad, origErr, "reading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Request validation errors
	ErrCodeNoSelection   Code = "NO_SELECTION"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeInvalidCount  Code = "INVALID_COUNT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Generation errors
	ErrCodeEmptyPool     Code = "EMPTY_POOL"
	ErrCodeNothingPlaced Code = "NOTHING_PLACED"

	// Asset errors (non-fatal; resolve to placeholder rendering)
	ErrCodeAssetLoad Code = "ASSET_LOAD"

	// Startup data errors (fatal)
	ErrCodeLexiconLoad  Code = "LEXICON_LOAD"
	ErrCodeManifestLoad Code = "MANIFEST_LOAD"

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
