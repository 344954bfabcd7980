package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasktracker/internal/api/apperrors"
)

// TokenManager issues and verifies the HS256 access tokens that carry a
// user's identity between requests.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenManager creates a TokenManager signing with secret. Tokens expire
// lifetime after issuance.
func NewTokenManager(secret []byte, lifetime time.Duration) *TokenManager {
	return &TokenManager{
		secret:   secret,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Issue creates a signed token asserting username, valid until the
// configured lifetime elapses.
func (tm *TokenManager) Issue(username string) (string, error) {
	now := tm.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.lifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	return token.SignedString(tm.secret)
}

// Verify checks the token's signature and expiry and returns the username it
// asserts. Every failure mode (bad signature, expired, malformed, wrong
// signing method, missing subject) collapses into apperrors.ErrUnauthorized
// so callers cannot tell tampering from expiry.
func (tm *TokenManager) Verify(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tm.now),
		jwt.WithExpirationRequired(),
	)

	var claims jwt.RegisteredClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}
