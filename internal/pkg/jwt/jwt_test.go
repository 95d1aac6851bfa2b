package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "841234567")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(15*time.Minute).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, ok := decoded.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	contact, ok := decoded.Get("contact")
	require.True(t, ok)
	assert.Equal(t, "841234567", contact)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "forever")
	_, _, err := svc.GenerateAccessToken("user-1", "841234567")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")
	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
	assert.False(t, svc.IsTokenRevoked("def"))
}

func TestRevokeToken_HeldUntilTokenExpires(t *testing.T) {
	svc := NewJWTService("test-secret", "72h").(*JWTService)
	token, expiresAt, err := svc.GenerateAccessToken("user-1", "841234567")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.Equal(t, time.Unix(expiresAt, 0).Add(acceptableSkew).Unix(), svc.revokedTokens[token].Unix())

	start := time.Now()
	svc.now = func() time.Time { return start.Add(25 * time.Hour) }
	svc.RevokeToken("other")
	assert.True(t, svc.IsTokenRevoked(token))

	svc.now = func() time.Time { return start.Add(73 * time.Hour) }
	svc.RevokeToken("another")
	assert.False(t, svc.IsTokenRevoked(token))
	assert.True(t, svc.IsTokenRevoked("another"))
}

func TestDecode_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", "15m").GenerateAccessToken("user-1", "841234567")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", "15m").JWTAuth().Decode(token)
	assert.Error(t, err)
}
