package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	fresh := signToken(t, jwt.MapClaims{"sub": "u-1", "exp": float64(now.Add(time.Hour).Unix())})
	assert.False(t, TokenExpired(fresh, now))

	stale := signToken(t, jwt.MapClaims{"sub": "u-1", "exp": float64(now.Add(-time.Hour).Unix())})
	assert.True(t, TokenExpired(stale, now))
}

func TestTokenExpiredWithoutExpClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "u-1"})
	assert.False(t, TokenExpired(token, time.Now()))
}

func TestTokenExpiredOpaqueToken(t *testing.T) {
	// Non-JWT tokens have no readable expiry; the upstream rejects them when
	// it must, the session is not purged locally.
	assert.False(t, TokenExpired("tok-u-1", time.Now()))
	assert.False(t, TokenExpired("", time.Now()))
}

func TestExtractSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "u-42"})
	sub, err := ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", sub)

	_, err = ExtractSubject(signToken(t, jwt.MapClaims{"exp": float64(time.Now().Unix())}))
	assert.Error(t, err)
}
