package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenMissing = errors.New("access token is missing")
)

// TokenConfig defines JWT configuration settings
type TokenConfig struct {
	Secret    string
	ExpiresIn time.Duration
	Issuer    string
}

// Claims carries the user id in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager signs and verifies stateless access tokens.
type TokenManager struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenManager creates a new TokenManager
func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{
		config: config,
		now:    time.Now,
	}
}

// ExpiresIn returns the configured token lifetime.
func (m *TokenManager) ExpiresIn() time.Duration {
	return m.config.ExpiresIn
}

// Issue signs a token for userID that expires after the configured lifetime.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.ExpiresIn)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject user id.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Secret), nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// ExtractBearerToken returns the token part of an "Authorization: Bearer <token>" header.
func ExtractBearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
