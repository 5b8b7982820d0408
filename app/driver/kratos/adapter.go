package kratos

import (
	"context"
	"log/slog"

	kratosclient "github.com/ory/kratos-client-go"

	"guide-auth/app/domain"
	"guide-auth/app/port"
)

// KratosClientAdapter adapts the Kratos client to implement port.KratosClient.
// It speaks in provider terms (native self-service flows, session tokens);
// classification into domain errors happens in the error transformer.
type KratosClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewKratosClientAdapter creates a new adapter
func NewKratosClientAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &KratosClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// Login runs the native login flow and returns the session plus its token
func (a *KratosClientAdapter) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	a.logger.Info("creating native login flow")

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, "", a.transformKratosError(err, httpResp, "login_flow_create")
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Identifier: email,
		Method:     "password",
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, "", a.transformKratosError(err, httpResp, "login_flow_submit")
	}

	session, err := toDomainSession(&result.Session)
	if err != nil {
		return nil, "", err
	}

	a.logger.Info("login flow completed",
		"flow_id", flow.Id,
		"session_id", result.Session.Id,
		"uid", session.UID)

	return session, stringValue(result.SessionToken), nil
}

// Register runs the native registration flow and returns the fresh session
// plus its token
func (a *KratosClientAdapter) Register(ctx context.Context, email, password string) (*domain.Session, string, error) {
	a.logger.Info("creating native registration flow")

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos registration flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, "", a.transformKratosError(err, httpResp, "registration_flow_create")
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits: map[string]interface{}{
			"email": email,
		},
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos registration flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, "", a.transformKratosError(err, httpResp, "registration_flow_submit")
	}

	var session *domain.Session
	if result.Session != nil {
		session, err = toDomainSession(result.Session)
		if err != nil {
			return nil, "", err
		}
	} else {
		// Kratos can be configured without session-after-registration; fall
		// back to the identity so callers still learn the uid and claim.
		session, err = sessionFromIdentity(&result.Identity)
		if err != nil {
			return nil, "", err
		}
	}

	a.logger.Info("registration flow completed",
		"flow_id", flow.Id,
		"uid", session.UID)

	return session, stringValue(result.SessionToken), nil
}

// Logout terminates the provider session for the token. A missing or already
// revoked session is treated as success, keeping the operation idempotent.
func (a *KratosClientAdapter) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	a.logger.Info("performing native logout")

	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{SessionToken: sessionToken}).
		Execute()
	if err != nil {
		transformed := a.transformKratosError(err, httpResp, "logout")
		if pe, ok := domain.AsProviderError(transformed); ok && pe.Code == domain.ProviderErrNoActiveSession {
			return nil
		}
		a.logger.Error("kratos logout failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return transformed
	}

	return nil
}

// WhoAmI refreshes and returns the session for the token
func (a *KratosClientAdapter) WhoAmI(ctx context.Context, sessionToken string) (*domain.Session, error) {
	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		a.logger.Error("kratos whoami failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformKratosError(err, httpResp, "whoami")
	}

	return toDomainSession(resp)
}

// StartVerification creates a verification flow and submits the email,
// triggering the provider's email dispatch
func (a *KratosClientAdapter) StartVerification(ctx context.Context, sessionToken, email, languageCode string) error {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeVerificationFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos verification flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformKratosError(err, httpResp, "verification_flow_create")
	}

	body := kratosclient.UpdateVerificationFlowWithCodeMethod{
		Method: "code",
		Email:  &email,
	}
	if languageCode != "" {
		body.TransientPayload = map[string]interface{}{
			"language": languageCode,
		}
	}

	_, httpResp, err = a.client.PublicAPI().FrontendAPI.
		UpdateVerificationFlow(ctx).
		Flow(flow.Id).
		UpdateVerificationFlowBody(kratosclient.UpdateVerificationFlowWithCodeMethodAsUpdateVerificationFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos verification dispatch failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformKratosError(err, httpResp, "verification_dispatch")
	}

	a.logger.Info("verification email dispatch requested", "flow_id", flow.Id)
	return nil
}

// CompleteVerification submits the code from a verification link against the
// identified flow. A consumed or expired flow answers 410 Gone; callers
// resolve replays by re-checking the refreshed session claim.
func (a *KratosClientAdapter) CompleteVerification(ctx context.Context, sessionToken, flowID, code string) error {
	body := kratosclient.UpdateVerificationFlowWithCodeMethod{
		Method: "code",
		Code:   &code,
	}

	_, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateVerificationFlow(ctx).
		Flow(flowID).
		UpdateVerificationFlowBody(kratosclient.UpdateVerificationFlowWithCodeMethodAsUpdateVerificationFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("kratos verification completion failed",
			"flow_id", flowID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformKratosError(err, httpResp, "verification_complete")
	}

	a.logger.Info("verification completed", "flow_id", flowID)
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
