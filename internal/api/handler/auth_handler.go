package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dscatalog/catalog-system/internal/api/metrics"
	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// AuthHandler serves the OAuth2 password-grant token endpoint. Unlike the
// resource handlers it speaks the OAuth2 error vocabulary, which is what
// password-grant clients expect on the wire.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type tokenResponse struct {
	AccessToken   string `json:"access_token"`
	TokenType     string `json:"token_type"`
	ExpiresIn     int64  `json:"expires_in"`
	Scope         string `json:"scope"`
	UserFirstName string `json:"userFirstName"`
	ID            int64  `json:"id"`
}

type oauthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Token handles POST /oauth/token (form-encoded password grant). The client
// authenticates via HTTP Basic or the client_id/client_secret form fields.
//
// @Summary      Issue an access token (password grant)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        grant_type     formData  string  true   "Must be password"
// @Param        username       formData  string  true   "User email"
// @Param        password       formData  string  true   "User password"
// @Param        client_id      formData  string  false  "Client id (or HTTP Basic)"
// @Param        client_secret  formData  string  false  "Client secret (or HTTP Basic)"
// @Success      200  {object}  tokenResponse
// @Failure      400  {object}  oauthErrorResponse
// @Failure      401  {object}  oauthErrorResponse
// @Failure      429  {object}  oauthErrorResponse
// @Router       /oauth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	clientID, clientSecret := clientCredentials(c)

	grant := ports.PasswordGrant{
		GrantType:    c.FormValue("grant_type"),
		Username:     c.FormValue("username"),
		Password:     c.FormValue("password"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}

	result, err := h.service.IssueToken(c.Request().Context(), grant)
	if err != nil {
		return tokenError(c, err)
	}

	metrics.TokensIssuedTotal.Inc()
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:   result.AccessToken,
		TokenType:     result.TokenType,
		ExpiresIn:     result.ExpiresIn,
		Scope:         result.Scope,
		UserFirstName: result.UserFirstName,
		ID:            result.UserID,
	})
}

// clientCredentials reads the client identity from HTTP Basic auth, falling
// back to the form fields.
func clientCredentials(c echo.Context) (string, string) {
	if id, secret, ok := c.Request().BasicAuth(); ok {
		return id, secret
	}
	return c.FormValue("client_id"), c.FormValue("client_secret")
}

func tokenError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedGrant):
		return c.JSON(http.StatusBadRequest, oauthErrorResponse{
			Error: "unsupported_grant_type",
		})
	case errors.Is(err, domain.ErrInvalidClient):
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_client").Inc()
		return c.JSON(http.StatusUnauthorized, oauthErrorResponse{
			Error: "invalid_client",
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return c.JSON(http.StatusUnauthorized, oauthErrorResponse{
			Error:            "invalid_grant",
			ErrorDescription: "Bad credentials",
		})
	case errors.Is(err, domain.ErrTooManyAttempts):
		metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
		return c.JSON(http.StatusTooManyRequests, oauthErrorResponse{
			Error:            "access_denied",
			ErrorDescription: "too many failed login attempts",
		})
	default:
		// Unexpected failure: let the central handler log and render 500.
		return err
	}
}
