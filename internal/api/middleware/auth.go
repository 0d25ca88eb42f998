package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer token and injects the authenticated principal
// into context: email (subject), user_id, first_name, scopes, authorities.
// Expired, malformed, or forged tokens are rejected before any handler runs.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, _ := claims["sub"].(string)
			firstName, _ := claims["userFirstName"].(string)

			c.Set("email", email)
			c.Set("first_name", firstName)
			c.Set("user_id", claimInt64(claims, "id"))
			c.Set("scopes", claimStrings(claims, "scope"))
			c.Set("authorities", claimStrings(claims, "authorities"))

			return next(c)
		}
	}
}

// claimInt64 reads a numeric claim; JSON numbers decode as float64.
func claimInt64(claims jwt.MapClaims, key string) int64 {
	if f, ok := claims[key].(float64); ok {
		return int64(f)
	}
	return 0
}

func claimStrings(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
