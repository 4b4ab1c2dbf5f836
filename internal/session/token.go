package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vetrovegor/storefront/internal/config"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims identify the session a cookie belongs to and the tenant it is bound to.
type Claims struct {
	SessionID string `json:"sid"`
	Tenant    string `json:"tenant"`
}

type customClaims struct {
	jwt.RegisteredClaims
	Claims
}

type tokenManager struct {
	cfg config.Session
}

func NewTokenManager(cfg config.Session) *tokenManager {
	return &tokenManager{
		cfg: cfg,
	}
}

func (m *tokenManager) GenerateToken(claims Claims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, customClaims{
		jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
		},
		claims,
	})

	return token.SignedString([]byte(m.cfg.Secret))
}

func (m *tokenManager) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &customClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(m.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return &claims.Claims, nil
}
