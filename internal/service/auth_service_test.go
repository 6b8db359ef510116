package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLoginAndValidate(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.Login("demo", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.UserID)

	claims, err := svc.ValidateUserToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
}

func TestAuthServiceRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService("test-secret")

	_, err := svc.Login("demo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceRejectsForeignToken(t *testing.T) {
	issuer := NewAuthService("secret-a")
	verifier := NewAuthService("secret-b")

	resp, err := issuer.Login("demo", "password123")
	require.NoError(t, err)

	_, err = verifier.ValidateUserToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = verifier.ValidateUserToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
