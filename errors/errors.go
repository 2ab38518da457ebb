// Package errors provides the unified error type returned by every SDK
// operation. Errors carry a machine-readable code, the HTTP status that
// produced them (when one exists), and a retryable flag so callers can
// distinguish transient transport failures from hard API rejections.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified SDK error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the API status code that produced this error (0 if none).
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Retryable: IsRetryableCode(code)}
}

// --- Common constructors ---

// NotFound creates an error for a resource unknown to the authenticated account.
func NotFound(resource, id string) *AppError {
	e := &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("the requested %s was not found", resource),
		HTTPStatus: 404, Retryable: false,
		Details: map[string]any{"resource": resource},
	}
	if id != "" {
		e.Details["id"] = id
	}
	return e
}

// Unauthorized creates an error for a missing or rejected API token.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "the API rejected the provided token"
	}
	return &AppError{Code: ErrCodeUnauthorized, Message: reason, HTTPStatus: 401, Retryable: false}
}

// MissingAPIKey creates an error for an unresolvable API key.
func MissingAPIKey() *AppError {
	return &AppError{
		Code:      ErrCodeMissingAPIKey,
		Message:   "API key not found: set WORDCAB_API_KEY or run `wordcab login`",
		Retryable: false,
	}
}

// InvalidInput creates an error for an invalid parameter or source object.
func InvalidInput(field, reason string) *AppError {
	e := &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		HTTPStatus: 400, Retryable: false,
	}
	if field != "" {
		e = e.WithDetail("field", field)
	}
	return e
}

// Validation creates an error carrying a pre-formatted validation message.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message, HTTPStatus: 400, Retryable: false}
}

// NotSupported creates an error for a source kind the API does not accept yet.
func NotSupported(what string) *AppError {
	return &AppError{
		Code: ErrCodeNotSupported, Message: fmt.Sprintf("%s is not supported yet", what),
		Retryable: false,
	}
}

// RateLimited creates an error for too many requests.
func RateLimited() *AppError {
	return &AppError{
		Code: ErrCodeRateLimited, Message: "too many requests, slow down and try again",
		HTTPStatus: 429, Retryable: true,
	}
}

// Timeout creates an error for a request that ran out of time.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		Retryable: true,
	}
}

// ConnectionFailed creates an error for an unreachable API endpoint.
func ConnectionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: "unable to reach the API",
		Retryable: true, Cause: cause,
	}
}

// Server creates an error for a 5xx API response.
func Server(status int, body string) *AppError {
	return &AppError{
		Code: ErrCodeServer, Message: fmt.Sprintf("the API returned HTTP %d", status),
		HTTPStatus: status, Retryable: true,
		Details: map[string]any{"body": body},
	}
}

// --- Inspection helpers ---

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var e *AppError
	ok := errors.As(err, &e)
	return e, ok
}

// HasCode checks whether an error chain contains an AppError with the code.
func HasCode(err error, code ErrorCode) bool {
	e, ok := AsAppError(err)
	return ok && e.Code == code
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return HasCode(err, ErrCodeNotFound) }

// IsUnauthorized checks if an error is an authentication error.
func IsUnauthorized(err error) bool {
	return HasCode(err, ErrCodeUnauthorized) || HasCode(err, ErrCodeMissingAPIKey)
}

// IsInvalidInput checks if an error is a validation error.
func IsInvalidInput(err error) bool { return HasCode(err, ErrCodeInvalidInput) }

// IsRateLimited checks if an error is a rate-limit error.
func IsRateLimited(err error) bool { return HasCode(err, ErrCodeRateLimited) }

// IsRetryable checks if an error is marked retryable.
func IsRetryable(err error) bool {
	e, ok := AsAppError(err)
	return ok && e.Retryable
}
