package token

import (
	"fmt"
	"time"

	"loginsvc/internal/config"
	"loginsvc/internal/domain/auth"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the type claim. A refresh token is never accepted
// where an access token is required, and vice versa; the claim is checked
// explicitly at every verification site.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims is the user projection carried inside signed tokens
type Claims struct {
	UserID   string        `json:"id"`
	OAuthID  string        `json:"oauthId"`
	Name     string        `json:"name"`
	Provider auth.Provider `json:"provider"`
	Email    *string       `json:"email"`
	Type     string        `json:"type"`
	jwt.RegisteredClaims
}

// Projection converts the claims back to the user view they were minted from
func (c *Claims) Projection() auth.Projection {
	return auth.Projection{
		ID:       c.UserID,
		OAuthID:  c.OAuthID,
		Name:     c.Name,
		Provider: c.Provider,
		Email:    c.Email,
	}
}

// Service mints and verifies the application's own access and refresh
// tokens. Tokens are stateless and self-expiring: there is no server-side
// revocation, and rotating the signing secret invalidates every outstanding
// token at once.
type Service struct {
	cfg *config.TokenConfig
}

// NewService creates a new token service
func NewService(cfg *config.TokenConfig) *Service {
	return &Service{cfg: cfg}
}

// IssueAccessToken signs a short-lived token that authorizes API calls
func (s *Service) IssueAccessToken(u auth.Projection) (string, error) {
	return s.issue(u, TypeAccess, s.cfg.AccessTokenTTL)
}

// IssueRefreshToken signs a long-lived token that only authorizes minting
// a new access token
func (s *Service) IssueRefreshToken(u auth.Projection) (string, error) {
	return s.issue(u, TypeRefresh, s.cfg.RefreshTokenTTL)
}

func (s *Service) issue(u auth.Projection, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   u.ID,
		OAuthID:  u.OAuthID,
		Name:     u.Name,
		Provider: u.Provider,
		Email:    u.Email,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// Verify checks the signature and expiration of a token. Every failure mode
// collapses to ErrInvalidToken; callers never learn which check failed.
// Expiry is strict, with no clock-skew leeway.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}

// VerifyAccess verifies a token and requires it to be of the access kind
func (s *Service) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != TypeAccess {
		return nil, auth.ErrWrongTokenType
	}
	return claims, nil
}

// Refresh verifies a refresh token and mints a fresh access token carrying
// the same identity claims, with the type claim reset to access
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != TypeRefresh {
		return "", auth.ErrWrongTokenType
	}
	return s.IssueAccessToken(claims.Projection())
}
