package kratos

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-auth/app/domain"
	"guide-auth/app/utils/logger"
)

func testAdapter(t *testing.T) *KratosClientAdapter {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return &KratosClientAdapter{logger: log}
}

func TestTransformKratosError_Cancellation(t *testing.T) {
	adapter := testAdapter(t)

	tests := []struct {
		name  string
		cause error
	}{
		{name: "context cancelled", cause: context.Canceled},
		{name: "deadline exceeded", cause: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adapter.transformKratosError(tt.cause, nil, "login")

			pe, ok := domain.AsProviderError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ProviderErrOperationCancelled, pe.Code)
			assert.True(t, pe.Retryable())
		})
	}
}

func TestTransformKratosError_NetworkFailure(t *testing.T) {
	adapter := testAdapter(t)

	cause := &url.Error{Op: "Post", URL: "http://kratos:4433", Err: errors.New("connection refused")}
	err := adapter.transformKratosError(cause, nil, "login")

	pe, ok := domain.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ProviderErrNetworkUnavailable, pe.Code)
	assert.True(t, pe.Retryable())
}

func TestTransformKratosError_HTTPStatusFallback(t *testing.T) {
	adapter := testAdapter(t)

	tests := []struct {
		name     string
		status   int
		wantCode domain.ProviderErrorCode
	}{
		{name: "bad request is a rejected submission", status: http.StatusBadRequest, wantCode: domain.ProviderErrInvalidCredentials},
		{name: "unauthorized means no session", status: http.StatusUnauthorized, wantCode: domain.ProviderErrNoActiveSession},
		{name: "forbidden means no session", status: http.StatusForbidden, wantCode: domain.ProviderErrNoActiveSession},
		{name: "gone flow is retryable", status: http.StatusGone, wantCode: domain.ProviderErrOperationCancelled},
		{name: "too many requests", status: http.StatusTooManyRequests, wantCode: domain.ProviderErrTooManyRequests},
		{name: "server error is unavailable", status: http.StatusBadGateway, wantCode: domain.ProviderErrNetworkUnavailable},
		{name: "teapot is unknown", status: http.StatusTeapot, wantCode: domain.ProviderErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.status}
			err := adapter.transformKratosError(errors.New("kratos call failed"), resp, "login")

			pe, ok := domain.AsProviderError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, pe.Code)
		})
	}
}

func TestTransformKratosError_Unclassified(t *testing.T) {
	adapter := testAdapter(t)

	err := adapter.transformKratosError(errors.New("something odd"), nil, "login")

	pe, ok := domain.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ProviderErrUnknown, pe.Code)
}

func TestClassifyStatus_MessageHints(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		wantCode domain.ProviderErrorCode
	}{
		{
			name:     "disabled account wins over status",
			status:   http.StatusBadRequest,
			message:  "This account was disabled by an administrator",
			wantCode: domain.ProviderErrAccountDisabled,
		},
		{
			name:     "kratos credential message",
			status:   http.StatusOK,
			message:  "The provided credentials are invalid, check for spelling mistakes",
			wantCode: domain.ProviderErrInvalidCredentials,
		},
		{
			name:     "kratos credential message id",
			status:   http.StatusOK,
			message:  "error id 4000006",
			wantCode: domain.ProviderErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.status, tt.message, "login", errors.New("cause"))

			pe, ok := domain.AsProviderError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, pe.Code)
		})
	}
}

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "ui messages carry the credential detail",
			body: `{"ui":{"messages":[{"id":4000006,"text":"The provided credentials are invalid","type":"error"}]}}`,
			want: "The provided credentials are invalid",
		},
		{
			name: "error reason",
			body: `{"error":{"code":400,"reason":"the flow expired","message":"Bad Request"}}`,
			want: "the flow expired",
		},
		{
			name: "error message fallback",
			body: `{"error":{"code":400,"message":"Bad Request"}}`,
			want: "Bad Request",
		},
		{
			name: "top level message",
			body: `{"message":"session inactive"}`,
			want: "session inactive",
		},
		{
			name: "not json",
			body: `upstream timed out`,
			want: "upstream timed out",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractErrorMessage([]byte(tt.body)))
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	assert.True(t, isNetworkError(&url.Error{Op: "Get", URL: "http://kratos:4433", Err: errors.New("refused")}))
	assert.False(t, isNetworkError(errors.New("plain failure")))
	assert.False(t, isNetworkError(nil))
}
