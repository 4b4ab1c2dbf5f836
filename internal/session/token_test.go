package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrovegor/storefront/internal/config"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager(config.Session{Secret: "secret", TTL: time.Hour})

	token, err := m.GenerateToken(Claims{SessionID: "s1", Tenant: "acme"})
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.SessionID)
	assert.Equal(t, "acme", claims.Tenant)

	tests := []struct {
		name  string
		token func() string
	}{
		{name: "garbage", token: func() string { return "not.a.token" }},
		{
			name: "other secret",
			token: func() string {
				tok, _ := NewTokenManager(config.Session{Secret: "other", TTL: time.Hour}).
					GenerateToken(Claims{SessionID: "s1"})
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				tok, _ := NewTokenManager(config.Session{Secret: "secret", TTL: -time.Minute}).
					GenerateToken(Claims{SessionID: "s1"})
				return tok
			},
		},
		{
			name: "missing session id",
			token: func() string {
				tok, _ := m.GenerateToken(Claims{Tenant: "acme"})
				return tok
			},
		},
		{
			name: "unsigned",
			token: func() string {
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, customClaims{Claims: Claims{SessionID: "s1"}}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ParseToken(tt.token())
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
