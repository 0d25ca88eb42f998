package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func scopeContext(t *testing.T, scopes []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if scopes != nil {
		c.Set("scopes", scopes)
	}
	return c, rec
}

func TestRequireScope_Allowed(t *testing.T) {
	c, rec := scopeContext(t, []string{"read", "write"})

	called := false
	handler := RequireScope("write")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireScope_MissingScope(t *testing.T) {
	c, rec := scopeContext(t, []string{"read"})

	handler := RequireScope("write")(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireScope_NoScopesInContext(t *testing.T) {
	c, rec := scopeContext(t, nil)

	handler := RequireScope("read")(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
