// Package errors provides structured error types for floorplan.
//
// Every failure of the layout engine is a configuration error: it is detected
// before any geometry is produced and carries a machine-readable [Code] that
// names the violated invariant, plus a message with the offending values.
//
// # Error Codes
//
// Configuration errors (the caller's building spec or render settings):
//   - INVALID_SPAN: a width, length, margin or scale is <= 0 or non-finite
//   - INCONSISTENT_PARTITION: column or row spans do not add up to the building
//   - STAIR_OUT_OF_BOUNDS: the stair footprint does not fit inside the hall
//   - INVALID_TREAD_COUNT: fewer than one tread
//
// Surface errors (CLI and API inputs):
//   - INVALID_INPUT, INVALID_FORMAT, INVALID_STYLE, INVALID_VIZ_TYPE
//   - FILE_NOT_FOUND, INTERNAL_ERROR, UNSUPPORTED
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSpan, "hall width must be > 0, got %g", w)
//	if errors.Is(err, errors.ErrCodeInvalidSpan) {
//	    // reject the spec
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "rasterize %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors raised by the layout and annotation engine
	ErrCodeInvalidSpan           Code = "INVALID_SPAN"
	ErrCodeInconsistentPartition Code = "INCONSISTENT_PARTITION"
	ErrCodeStairOutOfBounds      Code = "STAIR_OUT_OF_BOUNDS"
	ErrCodeInvalidTreadCount     Code = "INVALID_TREAD_COUNT"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle   Code = "INVALID_STYLE"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// configCodes are the codes produced by the geometric core.
var configCodes = map[Code]bool{
	ErrCodeInvalidSpan:           true,
	ErrCodeInconsistentPartition: true,
	ErrCodeStairOutOfBounds:      true,
	ErrCodeInvalidTreadCount:     true,
}

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

// IsConfiguration reports whether err is one of the configuration errors
// raised by the layout engine, the annotators or option validation.
func IsConfiguration(err error) bool {
	return configCodes[GetCode(err)]
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
