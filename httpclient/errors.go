package httpclient

import (
	"strings"

	"github.com/kbukum/wordcab-go/errors"
)

// ClassifyStatusCode converts an HTTP status code into a typed SDK error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *errors.AppError {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == 401 || statusCode == 403:
		return errors.Unauthorized(bodyMessage(body)).WithDetail("status", statusCode)
	case statusCode == 404:
		return errors.NotFound("resource", "").WithDetail("body", string(body))
	case statusCode == 429:
		return errors.RateLimited()
	case statusCode >= 400 && statusCode < 500:
		return errors.Validation(bodyMessage(body)).WithDetail("status", statusCode)
	default:
		return errors.Server(statusCode, string(body))
	}
}

// IsRetryable reports whether the transport should retry the request.
func IsRetryable(err error) bool {
	return errors.IsRetryable(err)
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsAuth checks if an error is an authentication failure.
func IsAuth(err error) bool {
	return errors.IsUnauthorized(err)
}

// bodyMessage extracts a short human-readable message from an error body.
func bodyMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return ""
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
