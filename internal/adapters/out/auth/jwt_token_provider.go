// Package auth implements bearer token issuing and validation for the HTTP
// boundary using HMAC-signed JWTs.
package auth

import (
	"context"
	"time"

	"tracker/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTTokenProvider implements ports.TokenProvider with HS256-signed tokens
// and a single bcrypt-hashed admin credential. Every failure path returns
// ports.ErrAuthentication so callers cannot distinguish a wrong username
// from a wrong password or a tampered token.
type JWTTokenProvider struct {
	secret            []byte
	adminUsername     string
	adminPasswordHash []byte
	tokenTTL          time.Duration
}

// NewJWTTokenProvider creates a provider signing with the given secret.
// adminPasswordHash must be a bcrypt hash; plaintext passwords are never held
// beyond the comparison in Authenticate.
func NewJWTTokenProvider(
	secret string,
	adminUsername string,
	adminPasswordHash string,
	tokenTTL time.Duration,
) *JWTTokenProvider {
	return &JWTTokenProvider{
		secret:            []byte(secret),
		adminUsername:     adminUsername,
		adminPasswordHash: []byte(adminPasswordHash),
		tokenTTL:          tokenTTL,
	}
}

// Authenticate checks the credentials and returns a signed token on success.
func (p *JWTTokenProvider) Authenticate(_ context.Context, username, password string) (string, error) {
	if username != p.adminUsername {
		return "", ports.ErrAuthentication
	}

	if err := bcrypt.CompareHashAndPassword(p.adminPasswordHash, []byte(password)); err != nil {
		return "", ports.ErrAuthentication
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", ports.ErrAuthentication
	}

	return signed, nil
}

// Validate parses and verifies a token, returning the subject it was issued to.
func (p *JWTTokenProvider) Validate(_ context.Context, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(_ *jwt.Token) (interface{}, error) {
			return p.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return "", ports.ErrAuthentication
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ports.ErrAuthentication
	}

	return claims.Subject, nil
}
