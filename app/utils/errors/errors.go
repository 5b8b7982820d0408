package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"
	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeRetryable          ErrorCode = "RETRY_REQUIRED"

	// Verification errors
	ErrCodeVerificationPending  ErrorCode = "VERIFICATION_PENDING"
	ErrCodeNotVerificationLink  ErrorCode = "NOT_VERIFICATION_LINK"
	ErrCodeLinkConsumptionError ErrorCode = "LINK_CONSUMPTION_FAILED"
	ErrCodeResendCooldown       ErrorCode = "RESEND_COOLDOWN"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeStoreError    ErrorCode = "STORE_ERROR"
	ErrCodeProviderError ErrorCode = "PROVIDER_ERROR"
	ErrCodeConfigError   ErrorCode = "CONFIG_ERROR"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest         ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeConflict           ErrorCode = "CONFLICT"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// Wrapf wraps an existing error with AppError and formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials, ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case ErrCodeAccountDisabled, ErrCodeVerificationPending:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeMissingField,
		ErrCodeNotVerificationLink, ErrCodeLinkConsumptionError, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded, ErrCodeResendCooldown:
		return http.StatusTooManyRequests
	case ErrCodeServiceUnavailable, ErrCodeProviderError, ErrCodeRetryable:
		return http.StatusServiceUnavailable
	case ErrCodeInternalError, ErrCodeStoreError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

// Authentication errors
var (
	ErrUnauthorized       = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "invalid credentials")
	ErrAccountDisabled    = New(ErrCodeAccountDisabled, "account is disabled")
	ErrSessionNotFound    = New(ErrCodeSessionNotFound, "no active session")
	ErrRetryable          = New(ErrCodeRetryable, "temporary failure, please try again")
)

// Verification errors
var (
	ErrVerificationPending = New(ErrCodeVerificationPending, "email verification required")
	ErrNotVerificationLink = New(ErrCodeNotVerificationLink, "not a verification link")
	ErrResendCooldown      = New(ErrCodeResendCooldown, "verification email recently sent")
)

// System errors
var (
	ErrInternalError      = New(ErrCodeInternalError, "internal server error")
	ErrStoreError         = New(ErrCodeStoreError, "profile store error")
	ErrProviderError      = New(ErrCodeProviderError, "identity provider error")
	ErrConfigError        = New(ErrCodeConfigError, "configuration error")
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "service temporarily unavailable")
	ErrRateLimitExceeded  = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// Validation errors
var (
	ErrValidationFailed = New(ErrCodeValidationFailed, "validation failed")
	ErrInvalidInput     = New(ErrCodeInvalidInput, "invalid input")
	ErrMissingField     = New(ErrCodeMissingField, "required field is missing")
)

// Generic errors
var (
	ErrBadRequest = New(ErrCodeBadRequest, "bad request")
	ErrNotFound   = New(ErrCodeNotFound, "resource not found")
	ErrConflict   = New(ErrCodeConflict, "resource conflict")
)

// Helper functions for creating contextual errors

// NewValidationError creates a validation error with details
func NewValidationError(details string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithDetails(details)
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewStoreError creates a profile store error with cause
func NewStoreError(cause error) *AppError {
	return Wrap(ErrCodeStoreError, "profile store operation failed", cause)
}

// NewProviderError creates an identity provider error with cause
func NewProviderError(cause error) *AppError {
	return Wrap(ErrCodeProviderError, "identity provider error", cause)
}
