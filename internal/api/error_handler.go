package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, validation).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrIntegrityViolation):
		return http.StatusBadRequest, "integrity violation"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidClient):
		return http.StatusUnauthorized, "invalid client credentials"
	case errors.Is(err, domain.ErrUnsupportedGrant):
		return http.StatusBadRequest, "unsupported grant type"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many failed login attempts"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
