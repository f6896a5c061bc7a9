package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a service-level failure with a fixed HTTP mapping. Anything
// that is not an *Error surfaces as an internal server error at the
// boundary.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Status: status, Message: msg}
}

func BadRequest(msg string, args ...any) *Error {
	return New(http.StatusBadRequest, msg, args...)
}

func Unauthorized(msg string, args ...any) *Error {
	return New(http.StatusUnauthorized, msg, args...)
}

func NotFound(msg string, args ...any) *Error {
	return New(http.StatusNotFound, msg, args...)
}

func Conflict(msg string, args ...any) *Error {
	return New(http.StatusConflict, msg, args...)
}

func Internal(msg string, args ...any) *Error {
	return New(http.StatusInternalServerError, msg, args...)
}

// From extracts the typed error from err, or wraps it as internal.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("internal server error")
}
