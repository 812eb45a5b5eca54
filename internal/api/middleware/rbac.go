package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole asserts the role claim injected by Auth matches the route's
// scope. The namespace secrets already keep tokens apart; this is a second,
// claims-level check so a route's required role is visible in the route
// table.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get("role").(string)
			if got != role {
				return c.NoContent(http.StatusForbidden)
			}
			return next(c)
		}
	}
}
