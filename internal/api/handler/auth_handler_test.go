package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

type stubAuthService struct {
	issueFn func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error)
}

func (s *stubAuthService) IssueToken(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
	return s.issueFn(ctx, grant)
}

func tokenRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func passwordForm() url.Values {
	return url.Values{
		"grant_type":    {"password"},
		"username":      {"maria@example.com"},
		"password":      {"super-secret-1"},
		"client_id":     {"dscatalog"},
		"client_secret": {"dscatalog123"},
	}
}

func TestAuthHandler_Token_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			if grant.GrantType != "password" || grant.Username != "maria@example.com" {
				t.Fatalf("unexpected grant: %+v", grant)
			}
			if grant.ClientID != "dscatalog" || grant.ClientSecret != "dscatalog123" {
				t.Fatalf("client credentials not forwarded: %+v", grant)
			}
			return &ports.TokenResult{
				AccessToken:   "token123",
				TokenType:     "bearer",
				ExpiresIn:     86400,
				Scope:         "read write",
				UserFirstName: "Maria",
				UserID:        7,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(tokenRequest(passwordForm()), rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("access_token: got %v", resp["access_token"])
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("token_type: got %v", resp["token_type"])
	}
	if resp["expires_in"] != float64(86400) {
		t.Fatalf("expires_in: got %v", resp["expires_in"])
	}
	if resp["scope"] != "read write" {
		t.Fatalf("scope: got %v", resp["scope"])
	}
	if resp["userFirstName"] != "Maria" {
		t.Fatalf("userFirstName: got %v", resp["userFirstName"])
	}
	if resp["id"] != float64(7) {
		t.Fatalf("id: got %v", resp["id"])
	}
}

func TestAuthHandler_Token_BasicAuthClient(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			if grant.ClientID != "dscatalog" || grant.ClientSecret != "dscatalog123" {
				t.Fatalf("basic auth credentials not used: %+v", grant)
			}
			return &ports.TokenResult{AccessToken: "t", TokenType: "bearer"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	form := passwordForm()
	form.Del("client_id")
	form.Del("client_secret")
	req := tokenRequest(form)
	req.SetBasicAuth("dscatalog", "dscatalog123")

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Token_UnsupportedGrantType(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			return nil, domain.ErrUnsupportedGrant
		},
	}
	handler := NewAuthHandler(stub)

	form := passwordForm()
	form.Set("grant_type", "client_credentials")
	rec := httptest.NewRecorder()
	c := e.NewContext(tokenRequest(form), rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "unsupported_grant_type" {
		t.Fatalf("expected unsupported_grant_type, got %v", resp["error"])
	}
}

func TestAuthHandler_Token_InvalidClient(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			return nil, domain.ErrInvalidClient
		},
	}
	handler := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(tokenRequest(passwordForm()), rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "invalid_client" {
		t.Fatalf("expected invalid_client, got %v", resp["error"])
	}
}

func TestAuthHandler_Token_BadCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(tokenRequest(passwordForm()), rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "invalid_grant" {
		t.Fatalf("expected invalid_grant, got %v", resp["error"])
	}
	if resp["error_description"] != "Bad credentials" {
		t.Fatalf("expected Bad credentials, got %v", resp["error_description"])
	}
}

func TestAuthHandler_Token_Throttled(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			return nil, domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(tokenRequest(passwordForm()), rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Token_UnexpectedErrorPropagates(t *testing.T) {
	e := echo.New()
	boom := context.DeadlineExceeded
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, grant ports.PasswordGrant) (*ports.TokenResult, error) {
			return nil, boom
		},
	}
	handler := NewAuthHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(tokenRequest(passwordForm()), rec)

	if err := handler.Token(c); err != boom {
		t.Fatalf("expected unexpected error to propagate, got %v", err)
	}
}
