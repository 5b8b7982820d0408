package kratos

import (
	"fmt"
	"net/http"

	kratosclient "github.com/ory/kratos-client-go"

	"guide-auth/app/domain"
)

// toDomainSession maps a Kratos session to the domain snapshot. The provider
// claim (ProviderConfirmed) comes from the identity's verifiable email
// address; it is never authoritative on its own.
func toDomainSession(ksess *kratosclient.Session) (*domain.Session, error) {
	if ksess == nil || ksess.Identity == nil {
		return nil, fmt.Errorf("kratos session has no identity")
	}

	email, confirmed := verifiableEmail(ksess.Identity)
	if email == "" {
		email = emailFromTraits(ksess.Identity)
	}

	session, err := domain.NewSession(ksess.Identity.Id, email, ksess.Id, confirmed)
	if err != nil {
		return nil, fmt.Errorf("invalid kratos session: %w", err)
	}

	if ksess.Active != nil {
		session.Active = *ksess.Active
	}
	if ksess.AuthenticatedAt != nil {
		session.AuthenticatedAt = *ksess.AuthenticatedAt
	}
	if ksess.ExpiresAt != nil {
		session.ExpiresAt = *ksess.ExpiresAt
	}

	return session, nil
}

// sessionFromIdentity builds a session snapshot when Kratos returned only an
// identity (registration without session issuance)
func sessionFromIdentity(identity *kratosclient.Identity) (*domain.Session, error) {
	if identity == nil {
		return nil, fmt.Errorf("kratos response has no identity")
	}

	email, confirmed := verifiableEmail(identity)
	if email == "" {
		email = emailFromTraits(identity)
	}

	return domain.NewSession(identity.Id, email, "", confirmed)
}

// verifiableEmail returns the identity's email address and its verified flag
func verifiableEmail(identity *kratosclient.Identity) (string, bool) {
	for _, addr := range identity.VerifiableAddresses {
		if addr.Via == "email" {
			return addr.Value, addr.Verified
		}
	}
	return "", false
}

// emailFromTraits falls back to the identity schema's email trait
func emailFromTraits(identity *kratosclient.Identity) string {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return ""
	}
	if email, ok := traits["email"].(string); ok {
		return email
	}
	return ""
}

// getHTTPStatus safely extracts a status code for logging
func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
