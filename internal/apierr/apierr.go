// Package apierr holds the error kinds the HTTP layer knows how to render.
package apierr

import (
	"fmt"
	"net/http"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrInvalidReq is returned when a request body is missing required fields or is malformed.
	ErrInvalidReq = New(http.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = New(http.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrConflict is returned when a write would clash with existing state.
	ErrConflict = New(http.StatusConflict, CodeConflict, "request conflicts with existing data")

	// ErrInternalError is returned for storage and other unexpected failures.
	ErrInternalError = New(http.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     Extras

	cause error
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy with a formatted message; the receiver is left untouched.
func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = extras
	return &e
}

// Wrap returns a copy that remembers the underlying failure.
func (e Error) Wrap(cause error) *Error {
	e.cause = cause
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	return ErrInvalidReq.WithExtras(Extras{
		"violations": violations,
	})
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.ErrorCode, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}
