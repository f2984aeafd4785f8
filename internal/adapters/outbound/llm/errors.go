package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
)

// classifyProviderError maps a transport or API failure to a *domain.ProviderErr.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	var providerErr *domain.ProviderErr
	if errors.As(err, &providerErr) {
		return providerErr
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return newStatusErr(apiErr.StatusCode, apiErr.Code, apiErr.Type, apiErr.Message, err)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider request timed out", err)
	case errors.Is(err, context.Canceled):
		return domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider request canceled", err)
	case errors.Is(err, errMalformedResponse):
		return domain.NewProviderErr(domain.ProviderErrorKind_InvalidResponse, "provider response could not be decoded", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider could not be reached", err)
	}

	return domain.NewProviderErr(domain.ProviderErrorKind_Unknown, "provider request failed", err)
}

// newStatusErr classifies an error payload by its code, type and HTTP status.
// Quota codes win over 429 since providers report exhausted billing as 429.
func newStatusErr(status int, code, typ, message string, cause error) *domain.ProviderErr {
	kind := statusKind(status, strings.ToLower(code), strings.ToLower(typ))
	if message == "" {
		message = http.StatusText(status)
	}
	pe := domain.NewProviderErr(kind, message, cause)
	pe.StatusCode = status
	return pe
}

func statusKind(status int, code, typ string) domain.ProviderErrorKind {
	switch {
	case code == "invalid_api_key" || typ == "authentication_error":
		return domain.ProviderErrorKind_AuthError
	case code == "insufficient_quota" || typ == "insufficient_quota" ||
		strings.HasPrefix(code, "billing") || status == http.StatusPaymentRequired:
		return domain.ProviderErrorKind_QuotaExceeded
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ProviderErrorKind_AuthError
	case status == http.StatusTooManyRequests:
		return domain.ProviderErrorKind_RateLimited
	}
	return domain.ProviderErrorKind_Unknown
}
