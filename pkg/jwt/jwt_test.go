package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, "scoops", 42, "ana@scoops.com", "ADMIN", TypeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "ana@scoops.com", claims.Login)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "scoops", claims.Issuer)
}

func TestParseRejects(t *testing.T) {
	valid, err := GenerateToken(secret, "scoops", 1, "a", "USER", TypeAccess, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(secret, "scoops", 1, "a", "USER", TypeAccess, -time.Minute)
	require.NoError(t, err)
	otherType, err := GenerateToken(secret, "scoops", 1, "a", "USER", "refresh", time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Type: TypeAccess})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret []byte
		token  string
	}{
		{"wrong secret", []byte("another-secret-another-secret-xx"), valid},
		{"expired", secret, expired},
		{"wrong type", secret, otherType},
		{"alg none", secret, unsigned},
		{"garbage", secret, "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, TypeAccess, tt.token)
			assert.Error(t, err)
		})
	}
}
