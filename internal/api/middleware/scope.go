package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireScope rejects requests whose token lacks the given scope.
// Must run after Auth, which populates "scopes" in context.
func RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes, _ := c.Get("scopes").([]string)
			for _, s := range scopes {
				if s == scope {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient scope"})
		}
	}
}
