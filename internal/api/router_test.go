package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dscatalog/catalog-system/internal/pkg/config"
)

// The liveness route touches neither Postgres nor Redis, so the router can
// be built with nil connections here.
func TestRouter_RequestsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	cfg := &config.Config{
		Port:      "8080",
		Env:       "test",
		JWTSecret: "secret",
		TokenTTL:  time.Hour,
		Client:    config.ClientConfig{ID: "dscatalog", Secret: "dscatalog123"},
	}

	e := NewRouter(nil, nil, cfg, log)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	line := buf.String()
	if line == "" {
		t.Fatal("expected an access-log line, got none")
	}
	if !strings.Contains(line, `"uri":"/health"`) {
		t.Errorf("access log missing uri: %s", line)
	}
	if !strings.Contains(line, `"status":200`) {
		t.Errorf("access log missing status: %s", line)
	}
	if !strings.Contains(line, `"method":"GET"`) {
		t.Errorf("access log missing method: %s", line)
	}
}
