package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("testsecret", time.Hour)

	token, err := tokens.Issue(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenService("testsecret", -time.Minute)

	token, err := tokens.Issue(42, "alice@example.com")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("testsecret", time.Hour)
	verifier := NewTokenService("othersecret", time.Hour)

	token, err := issuer.Issue(42, "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	tokens := NewTokenService("testsecret", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
