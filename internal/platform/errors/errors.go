// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode defines supported error codes used across services
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient errors where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeInvalidArgument is for bad input parameters, including the
	// empty-year analysis precondition
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for validation failures (input data)
	ErrorCodeValidation

	// ErrorCodeJSON is for JSON parsing errors
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeConflict is for editing conflicts
	ErrorCodeConflict

	// ErrorCodeDB is for general database errors
	ErrorCodeDB
)

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeDB, ErrorCodePanic, ErrorCodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrNotFound is a sentinel not found error for convenience
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// op is an optional operation tag; orig is the wrapped cause
type Error struct {
	orig error
	msg  string
	code ErrorCode
	op   string
}

// Wire is the JSON-serializable form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode {
	if e == nil {
		return ErrorCodeUnknown
	}
	return e.code
}

// Op returns the operation tag
func (e *Error) Op() string { return e.op }

// WithOp returns a copy tagged with the operation name
func (e *Error) WithOp(op string) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.op = op
	return &cp
}

// New creates a new Error with a code and message
func New(code ErrorCode, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Newf creates a new Error with a code and formatted message
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message
func Wrap(orig error, code ErrorCode, msg string) *Error {
	return &Error{orig: orig, code: code, msg: msg}
}

// Wrapf wraps an existing error with a code and formatted message
func Wrapf(orig error, code ErrorCode, format string, args ...any) *Error {
	return &Error{orig: orig, code: code, msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrorCode from any error, Unknown when untyped
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrs.As(err, &e) {
		return e.Code()
	}
	return ErrorCodeUnknown
}

// HTTPStatus maps any error to an http status via its code
func HTTPStatus(err error) int {
	return HTTPStatusCode(CodeOf(err))
}

// WireFrom builds the wire form of any error
func WireFrom(err error) Wire {
	var e *Error
	if stderrs.As(err, &e) {
		return Wire{Code: e.Code(), Message: e.msg}
	}
	return Wire{Code: ErrorCodeUnknown, Message: "internal error"}
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// Is re-exports stdlib errors.Is so callers need one import
func Is(err, target error) bool { return stderrs.Is(err, target) }

// As re-exports stdlib errors.As so callers need one import
func As(err error, target any) bool { return stderrs.As(err, target) }
