package domain

import "errors"

// Sentinel errors shared across the subsystem
var (
	// Provider errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrOperationCancelled = errors.New("operation cancelled")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrNoActiveSession    = errors.New("no active session")

	// Store errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")

	// Link errors
	ErrNotVerificationLink = errors.New("not a verification link")

	// Validation errors
	ErrInvalidEmail    = errors.New("invalid email")
	ErrPasswordTooWeak = errors.New("password too weak")

	// Cooldown
	ErrResendCooldown = errors.New("resend cooldown active")
)

// ProviderErrorCode classifies identity provider failures
type ProviderErrorCode string

const (
	ProviderErrInvalidCredentials ProviderErrorCode = "invalid_credentials"
	ProviderErrTooManyRequests    ProviderErrorCode = "too_many_requests"
	ProviderErrNetworkUnavailable ProviderErrorCode = "network_unavailable"
	ProviderErrOperationCancelled ProviderErrorCode = "operation_cancelled"
	ProviderErrAccountDisabled    ProviderErrorCode = "account_disabled"
	ProviderErrNoActiveSession    ProviderErrorCode = "no_active_session"
	ProviderErrUnknown            ProviderErrorCode = "unknown"
)

// ProviderError is a classified identity provider failure
type ProviderError struct {
	Code    ProviderErrorCode
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is transient; callers should surface
// a "please retry" affordance instead of a hard failure.
func (e *ProviderError) Retryable() bool {
	return e.Code == ProviderErrOperationCancelled || e.Code == ProviderErrNetworkUnavailable
}

// NewProviderError creates a classified provider error
func NewProviderError(code ProviderErrorCode, message string, cause error) *ProviderError {
	return &ProviderError{Code: code, Message: message, Cause: cause}
}

// AsProviderError extracts a ProviderError from an error chain
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// StoreError is a profile store failure. These must never crash the
// reconciliation flow; the reconciler recovers them locally.
type StoreError struct {
	Op      string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return "profile store " + e.Op + ": " + e.Message + ": " + e.Cause.Error()
	}
	return "profile store " + e.Op + ": " + e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NewStoreError creates a store error for the named operation
func NewStoreError(op, message string, cause error) *StoreError {
	return &StoreError{Op: op, Message: message, Cause: cause}
}

// IsStoreError reports whether err carries a StoreError
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// LinkErrorCode classifies deep-link failures
type LinkErrorCode string

const (
	LinkErrNotVerification  LinkErrorCode = "not_verification_link"
	LinkErrNoActiveSession  LinkErrorCode = "no_active_session"
	LinkErrConsumptionError LinkErrorCode = "consumption_failed"
)

// LinkError is a deep-link processing failure
type LinkError struct {
	Code    LinkErrorCode
	Message string
	Cause   error
}

func (e *LinkError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *LinkError) Unwrap() error {
	return e.Cause
}

// NewLinkError creates a classified link error
func NewLinkError(code LinkErrorCode, message string, cause error) *LinkError {
	return &LinkError{Code: code, Message: message, Cause: cause}
}

// ValidationError represents validation errors with field-specific details.
// These are raised synchronously before any I/O and propagate directly to
// the caller.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
