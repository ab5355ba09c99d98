package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", DefaultTokenTTL)

	token, err := tokens.Issue("user-123", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenService_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)

	issuer := NewTokenService("test-secret", DefaultTokenTTL)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue("user-123", "ana@example.com")
	require.NoError(t, err)

	verifier := NewTokenService("test-secret", DefaultTokenTTL)

	for i := 0; i < 3; i++ {
		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	}
}

func TestTokenService_Invalid(t *testing.T) {
	tokens := NewTokenService("test-secret", DefaultTokenTTL)

	valid, err := tokens.Issue("user-123", "ana@example.com")
	require.NoError(t, err)

	otherSecret, err := NewTokenService("other-secret", DefaultTokenTTL).Issue("user-123", "ana@example.com")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":    "user-123",
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    "user-123",
		"email": "ana@example.com",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"wrong secret", otherSecret},
		{"tampered payload", tampered},
		{"alg none", unsigned},
		{"missing exp", noExpiry},
		{"missing id", noID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)

			// Same token, same answer.
			_, again := tokens.Verify(tt.token)
			assert.ErrorIs(t, again, ErrInvalidToken)
		})
	}
}
