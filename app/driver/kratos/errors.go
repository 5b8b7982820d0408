package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"guide-auth/app/domain"
)

// transformKratosError classifies Kratos API failures into domain provider
// errors. Cancellation and network failures map to retryable codes; callers
// surface those as "please retry", never as account-level failures.
func (a *KratosClientAdapter) transformKratosError(err error, httpResp *http.Response, operation string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderError(domain.ProviderErrOperationCancelled,
			fmt.Sprintf("%s was cancelled", operation), err)
	}

	if isNetworkError(err) {
		return domain.NewProviderError(domain.ProviderErrNetworkUnavailable,
			fmt.Sprintf("%s could not reach the identity provider", operation), err)
	}

	var kratosErr *kratosclient.GenericOpenAPIError
	if errors.As(err, &kratosErr) {
		return a.classifyGenericError(kratosErr, httpResp, operation, err)
	}

	if httpResp != nil {
		return classifyStatus(httpResp.StatusCode, "", operation, err)
	}

	return domain.NewProviderError(domain.ProviderErrUnknown,
		fmt.Sprintf("%s failed", operation), err)
}

// classifyGenericError inspects the Kratos error body for a message before
// falling back to the HTTP status
func (a *KratosClientAdapter) classifyGenericError(kratosErr *kratosclient.GenericOpenAPIError, httpResp *http.Response, operation string, cause error) error {
	message := extractErrorMessage(kratosErr.Body())

	status := 0
	if httpResp != nil {
		status = httpResp.StatusCode
	}

	a.logger.Debug("classifying kratos error",
		"operation", operation,
		"http_status", status,
		"message", message)

	return classifyStatus(status, message, operation, cause)
}

// classifyStatus maps status plus message hints to a provider error code
func classifyStatus(status int, message string, operation string, cause error) error {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "disabled"):
		return domain.NewProviderError(domain.ProviderErrAccountDisabled,
			"account is disabled", cause)
	case strings.Contains(lower, "credentials are invalid"),
		strings.Contains(lower, "invalid credentials"),
		strings.Contains(lower, "4000006"):
		return domain.NewProviderError(domain.ProviderErrInvalidCredentials,
			"the provided credentials are invalid", cause)
	}

	switch status {
	case http.StatusBadRequest:
		// Flow submissions answer credential failures with 400 plus UI messages
		return domain.NewProviderError(domain.ProviderErrInvalidCredentials,
			fmt.Sprintf("%s was rejected", operation), cause)
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewProviderError(domain.ProviderErrNoActiveSession,
			"no active session", cause)
	case http.StatusGone:
		// Expired flow: transient, the caller should retry with a fresh flow
		return domain.NewProviderError(domain.ProviderErrOperationCancelled,
			fmt.Sprintf("%s flow expired", operation), cause)
	case http.StatusTooManyRequests:
		return domain.NewProviderError(domain.ProviderErrTooManyRequests,
			"too many requests", cause)
	}

	if status >= 500 {
		return domain.NewProviderError(domain.ProviderErrNetworkUnavailable,
			"identity provider unavailable", cause)
	}

	return domain.NewProviderError(domain.ProviderErrUnknown,
		fmt.Sprintf("%s failed", operation), cause)
}

// extractErrorMessage pulls the most specific message out of a Kratos error body
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return string(body)
	}

	// UI messages carry the per-field detail (credential errors live here)
	if ui, ok := resp["ui"].(map[string]interface{}); ok {
		if messages, ok := ui["messages"].([]interface{}); ok {
			for _, m := range messages {
				if msg, ok := m.(map[string]interface{}); ok {
					if text, ok := msg["text"].(string); ok && text != "" {
						return text
					}
				}
			}
		}
	}

	if errObj, ok := resp["error"].(map[string]interface{}); ok {
		if reason, ok := errObj["reason"].(string); ok && reason != "" {
			return reason
		}
		if message, ok := errObj["message"].(string); ok && message != "" {
			return message
		}
	}

	if message, ok := resp["message"].(string); ok {
		return message
	}

	return ""
}

// isNetworkError reports transport-level failures
func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
