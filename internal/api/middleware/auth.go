package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth verifies the bearer token against the secret bound to the route group
// and injects the decoded claims into the request context. Each role
// namespace mounts its own Auth instance with its own secret.
//
// A missing Authorization header yields 401; every other failure (malformed
// header, bad signature, expired, token signed for the other namespace)
// collapses to 403. Neither carries a body.
func Auth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.NoContent(http.StatusUnauthorized)
			}

			// Only the second whitespace-delimited field matters; the
			// scheme is not validated.
			parts := strings.Fields(authHeader)
			if len(parts) < 2 {
				return c.NoContent(http.StatusForbidden)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !tkn.Valid {
				return c.NoContent(http.StatusForbidden)
			}

			c.Set("username", claims["username"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
