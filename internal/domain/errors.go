package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderErrorKind classifies failures of the external LLM provider.
type ProviderErrorKind string

const (
	ProviderErrorKind_QuotaExceeded   ProviderErrorKind = "QUOTA_EXCEEDED"
	ProviderErrorKind_RateLimited     ProviderErrorKind = "RATE_LIMITED"
	ProviderErrorKind_AuthError       ProviderErrorKind = "AUTH_ERROR"
	ProviderErrorKind_InvalidResponse ProviderErrorKind = "INVALID_RESPONSE"
	ProviderErrorKind_NetworkError    ProviderErrorKind = "NETWORK_ERROR"
	ProviderErrorKind_Unknown         ProviderErrorKind = "UNKNOWN_PROVIDER_ERROR"
)

// Sentinels matched by ProviderErr.Is, so callers can use errors.Is(err, ErrRateLimited).
var (
	ErrQuotaExceeded   = errors.New("provider quota exceeded")
	ErrRateLimited     = errors.New("provider rate limited")
	ErrAuth            = errors.New("provider authentication failed")
	ErrInvalidResponse = errors.New("provider returned an invalid response")
	ErrNetwork         = errors.New("provider network error")
	ErrUnknownProvider = errors.New("unknown provider error")
)

var providerSentinels = map[ProviderErrorKind]error{
	ProviderErrorKind_QuotaExceeded:   ErrQuotaExceeded,
	ProviderErrorKind_RateLimited:     ErrRateLimited,
	ProviderErrorKind_AuthError:       ErrAuth,
	ProviderErrorKind_InvalidResponse: ErrInvalidResponse,
	ProviderErrorKind_NetworkError:    ErrNetwork,
	ProviderErrorKind_Unknown:         ErrUnknownProvider,
}

// ProviderErr is returned when a call to the LLM provider fails or is refused.
type ProviderErr struct {
	Kind       ProviderErrorKind
	Message    string
	StatusCode int
	Cause      error
}

// NewProviderErr creates a ProviderErr of the given kind.
func NewProviderErr(kind ProviderErrorKind, message string, cause error) *ProviderErr {
	return &ProviderErr{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Error returns the error message.
func (e *ProviderErr) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ProviderErr) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel error of the same kind.
func (e *ProviderErr) Is(target error) bool {
	sentinel, ok := providerSentinels[e.Kind]
	return ok && sentinel == target
}

// Retryable reports whether repeating the request later may succeed.
func (e *ProviderErr) Retryable() bool {
	return e.Kind == ProviderErrorKind_RateLimited || e.Kind == ProviderErrorKind_NetworkError
}

// ProviderErrorKindOf returns the kind of a ProviderErr in err's chain.
func ProviderErrorKindOf(err error) (ProviderErrorKind, bool) {
	var pe *ProviderErr
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// ProviderErrorGuidance returns an actionable message for administrators.
func ProviderErrorGuidance(kind ProviderErrorKind) string {
	switch kind {
	case ProviderErrorKind_QuotaExceeded:
		return "The AI provider quota is exhausted. Check the billing plan or wait for the quota to reset."
	case ProviderErrorKind_RateLimited:
		return "The AI provider is rate limiting requests. Wait a moment and try again."
	case ProviderErrorKind_AuthError:
		return "The AI provider rejected the credentials. Verify the configured API key."
	case ProviderErrorKind_InvalidResponse:
		return "The AI provider returned an unexpected response. Try again or choose another model."
	case ProviderErrorKind_NetworkError:
		return "The AI provider could not be reached. Check connectivity and try again."
	}
	return "The AI provider failed unexpectedly. Try again later."
}
