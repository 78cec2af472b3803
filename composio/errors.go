package composio

import (
	"errors"
	"fmt"
)

// ErrorCode classifies SDK errors.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "validation_error"
	ErrCodeNotFound   ErrorCode = "not_found"
	ErrCodeTimeout    ErrorCode = "timeout"
	ErrCodeAPI        ErrorCode = "api_error"
)

// Error is the unified error type returned by every SDK method. It carries
// the failing method name so callers can diagnose without inspecting
// internals.
type Error struct {
	Code       ErrorCode
	Method     string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("composio: %s: [%d] %s: %s", e.Method, e.StatusCode, e.Code, e.Message)
	}
	if e.Method != "" {
		return fmt.Sprintf("composio: %s: %s: %s", e.Method, e.Code, e.Message)
	}
	return fmt.Sprintf("composio: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsValidation returns true if the error is an input validation failure.
func IsValidation(err error) bool {
	return codeOf(err) == ErrCodeValidation
}

// IsNotFound returns true if the error reports an absent entity.
func IsNotFound(err error) bool {
	return codeOf(err) == ErrCodeNotFound
}

// IsTimeout returns true if the error is a polling deadline expiry.
func IsTimeout(err error) bool {
	return codeOf(err) == ErrCodeTimeout
}

// IsAPIError returns true if the error wraps a transport or server failure.
func IsAPIError(err error) bool {
	return codeOf(err) == ErrCodeAPI
}

func codeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func newValidationError(method, format string, args ...any) *Error {
	return &Error{Code: ErrCodeValidation, Method: method, Message: fmt.Sprintf(format, args...)}
}

func newNotFoundError(method, format string, args ...any) *Error {
	return &Error{Code: ErrCodeNotFound, Method: method, Message: fmt.Sprintf(format, args...)}
}

func newTimeoutError(method, format string, args ...any) *Error {
	return &Error{Code: ErrCodeTimeout, Method: method, Message: fmt.Sprintf(format, args...)}
}

// normalizeError is the single normalization step every public method passes
// its failures through. Errors already carrying an SDK code keep it and gain
// the method name if they have none; anything else becomes an api_error
// wrapping the cause.
func normalizeError(method string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Method == "" {
			e.Method = method
		}
		return e
	}
	return &Error{Code: ErrCodeAPI, Method: method, Message: err.Error(), Cause: err}
}
