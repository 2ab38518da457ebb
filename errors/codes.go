package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Transport errors (retryable).
const (
	// ErrCodeConnectionFailed indicates the API could not be reached.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates the account is sending too many requests.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeServer indicates the API returned a 5xx response.
	ErrCodeServer ErrorCode = "SERVER_ERROR"
)

// Resource errors.
const (
	// ErrCodeNotFound indicates the identifier is unknown or not accessible
	// to the authenticated account.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Input errors.
const (
	// ErrCodeInvalidInput indicates a request parameter or source object is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotSupported indicates a source kind the API does not accept yet.
	ErrCodeNotSupported ErrorCode = "NOT_SUPPORTED"
)

// Authentication errors.
const (
	// ErrCodeUnauthorized indicates a missing or rejected API token.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeMissingAPIKey indicates no API key could be resolved from
	// options, environment, or the credential store.
	ErrCodeMissingAPIKey ErrorCode = "MISSING_API_KEY"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeRateLimited:      true,
	ErrCodeServer:           true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
