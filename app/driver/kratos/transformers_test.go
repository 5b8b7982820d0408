package kratos

import (
	"testing"
	"time"

	kratosclient "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kratosIdentity(email string, verified bool) *kratosclient.Identity {
	return &kratosclient.Identity{
		Id: "identity-1",
		VerifiableAddresses: []kratosclient.VerifiableIdentityAddress{
			{Via: "email", Value: email, Verified: verified},
		},
		Traits: map[string]interface{}{"email": email},
	}
}

func TestToDomainSession(t *testing.T) {
	active := true
	authenticatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := authenticatedAt.Add(24 * time.Hour)

	ksess := &kratosclient.Session{
		Id:              "session-1",
		Active:          &active,
		AuthenticatedAt: &authenticatedAt,
		ExpiresAt:       &expiresAt,
		Identity:        kratosIdentity("traveler@example.com", true),
	}

	session, err := toDomainSession(ksess)

	require.NoError(t, err)
	assert.Equal(t, "identity-1", session.UID)
	assert.Equal(t, "traveler@example.com", session.Email)
	assert.Equal(t, "session-1", session.ProviderSessionID)
	assert.True(t, session.ProviderConfirmed)
	assert.True(t, session.Active)
	assert.Equal(t, authenticatedAt, session.AuthenticatedAt)
	assert.Equal(t, expiresAt, session.ExpiresAt)
}

func TestToDomainSession_UnverifiedAddress(t *testing.T) {
	ksess := &kratosclient.Session{
		Id:       "session-1",
		Identity: kratosIdentity("traveler@example.com", false),
	}

	session, err := toDomainSession(ksess)

	require.NoError(t, err)
	assert.False(t, session.ProviderConfirmed)
}

func TestToDomainSession_EmailFallsBackToTraits(t *testing.T) {
	ksess := &kratosclient.Session{
		Id: "session-1",
		Identity: &kratosclient.Identity{
			Id:     "identity-1",
			Traits: map[string]interface{}{"email": "traits@example.com"},
		},
	}

	session, err := toDomainSession(ksess)

	require.NoError(t, err)
	assert.Equal(t, "traits@example.com", session.Email)
	assert.False(t, session.ProviderConfirmed)
}

func TestToDomainSession_MissingIdentity(t *testing.T) {
	_, err := toDomainSession(&kratosclient.Session{Id: "session-1"})
	assert.Error(t, err)

	_, err = toDomainSession(nil)
	assert.Error(t, err)
}

func TestSessionFromIdentity(t *testing.T) {
	session, err := sessionFromIdentity(kratosIdentity("traveler@example.com", false))

	require.NoError(t, err)
	assert.Equal(t, "identity-1", session.UID)
	assert.Equal(t, "traveler@example.com", session.Email)
	assert.Empty(t, session.ProviderSessionID)

	_, err = sessionFromIdentity(nil)
	assert.Error(t, err)
}

func TestEmailFromTraits(t *testing.T) {
	identity := &kratosclient.Identity{Traits: map[string]interface{}{"email": "t@example.com"}}
	assert.Equal(t, "t@example.com", emailFromTraits(identity))

	identity = &kratosclient.Identity{Traits: "not-a-map"}
	assert.Empty(t, emailFromTraits(identity))

	identity = &kratosclient.Identity{Traits: map[string]interface{}{"name": "no email"}}
	assert.Empty(t, emailFromTraits(identity))
}
