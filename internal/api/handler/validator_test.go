package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func assertValidationFails(t *testing.T, req any) {
	t.Helper()
	err := NewValidator().Validate(req)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestValidator_WhitespaceOnlyNamesRejected(t *testing.T) {
	assertValidationFails(t, &categoryRequest{Name: "   "})
	assertValidationFails(t, &productRequest{Name: "\t\n", Description: "desc", Price: 10})
	assertValidationFails(t, &productRequest{Name: "PC Gamer", Description: "   ", Price: 10})
	assertValidationFails(t, &createUserRequest{
		FirstName: "  ",
		Email:     "maria@example.com",
		Password:  "super-secret-1",
	})
	assertValidationFails(t, &updateUserRequest{FirstName: " ", Email: "maria@example.com"})
}

func TestValidator_TrimmedValuesAccepted(t *testing.T) {
	if err := NewValidator().Validate(&categoryRequest{Name: "Books"}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if err := NewValidator().Validate(&productRequest{Name: "PC Gamer", Description: "desc", Price: 10}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}
