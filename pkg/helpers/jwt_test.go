package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, exp, err := m.Generate("user-123", "dev@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -1*time.Minute)
	tok, _, err := m.Generate("u1", "u1@example.com")
	require.NoError(t, err)

	_, err = m.Parse(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("right-secret", time.Hour)
	tok, _, err := issuer.Generate("u2", "u2@example.com")
	require.NoError(t, err)

	verifier := NewJWTManager("wrong-secret", time.Hour)
	_, err = verifier.Parse(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", time.Hour)
	_, err := m.Parse("not.a.jwt")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
