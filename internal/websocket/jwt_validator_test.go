package websocket

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// mockIdentityLookup is a test double for IdentityLookup
type mockIdentityLookup struct {
	userID uuid.UUID
	err    error
}

func (m *mockIdentityLookup) GetUserIDByAuth0ID(ctx context.Context, auth0ID string) (uuid.UUID, error) {
	return m.userID, m.err
}

func TestIdentityLookup_Interface(t *testing.T) {
	var _ IdentityLookup = (*mockIdentityLookup)(nil)
}

func TestCustomClaims_Validate(t *testing.T) {
	claims := &CustomClaims{}
	err := claims.Validate(context.Background())
	assert.NoError(t, err)
}

func TestNewAuth0JWTValidator_Success(t *testing.T) {
	lookup := &mockIdentityLookup{userID: uuid.New()}

	validator, err := NewAuth0JWTValidator("test.auth0.com", "https://api.relayy.app", lookup)
	assert.NoError(t, err)
	assert.NotNil(t, validator)
	assert.NotNil(t, validator.validator)
	assert.Equal(t, lookup, validator.identities)
}

func TestAuth0JWTValidator_ValidateToken_InvalidJWT(t *testing.T) {
	lookup := &mockIdentityLookup{userID: uuid.New()}

	validator, err := NewAuth0JWTValidator("test.auth0.com", "https://api.relayy.app", lookup)
	assert.NoError(t, err)

	userID, err := validator.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestErrorSentinels(t *testing.T) {
	assert.Equal(t, "invalid token", ErrInvalidToken.Error())
	assert.Equal(t, "unknown identity", ErrUnknownIdentity.Error())
}
