package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "ACCESS"
	TokenTypeRefresh = "REFRESH"

	issuer = "profit-leak"
)

// Claims are the JWT claims carried by access and refresh tokens.
type Claims struct {
	ClientID  string `json:"client_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates HS256 tokens with a single key.
type TokenManager struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager creates a manager with 15 minute access and 7 day refresh lifetimes.
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &TokenManager{
		key:        []byte(secret),
		accessTTL:  15 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
		now:        time.Now,
	}, nil
}

// GenerateAccessToken creates a short-lived token for API calls.
func (m *TokenManager) GenerateAccessToken(clientID, role string) (string, error) {
	return m.sign(clientID, role, TokenTypeAccess, m.accessTTL)
}

// GenerateRefreshToken creates a long-lived token used to obtain new access tokens.
func (m *TokenManager) GenerateRefreshToken(clientID, role string) (string, error) {
	return m.sign(clientID, role, TokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) sign(clientID, role, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		ClientID:  clientID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateToken parses a token and verifies its signature, expiry and issuer.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
