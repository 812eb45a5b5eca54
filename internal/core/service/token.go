package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = time.Hour

// TokenIssuer signs HS256 bearer tokens for a single role namespace. The
// admin and user namespaces each get their own issuer with an independent
// secret, so a token minted for one namespace never verifies in the other.
type TokenIssuer struct {
	secret []byte
	role   string
	ttl    time.Duration
}

func NewTokenIssuer(secret, role string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), role: role, ttl: ttl}
}

// Issue returns a signed token with {username, role, exp} claims.
func (i *TokenIssuer) Issue(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     i.role,
		"exp":      time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
