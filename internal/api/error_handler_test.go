package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		verbose    bool
		wantCode   int
		wantError  string
		wantDetail bool
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), false, http.StatusBadRequest, "invalid payload", false},
		{"sign-in failure", &domain.SignInFailure{Type: domain.AuthErrConfiguration}, false, http.StatusUnauthorized, "Authentication failed: Configuration", false},
		{"auth error", domain.NewAuthError(domain.AuthErrAccessDenied, errors.New("denied")), false, http.StatusUnauthorized, "Authentication failed: AccessDenied", false},
		{"identity not found", fmt.Errorf("set role: %w", domain.ErrIdentityNotFound), false, http.StatusNotFound, "identity not found", false},
		{"invalid role", domain.ErrInvalidRole, false, http.StatusBadRequest, "invalid role", false},
		{"unknown field", fmt.Errorf("%w: severity", domain.ErrUnknownField), false, http.StatusBadRequest, "unknown field: severity", false},
		{"unexpected", errors.New("mongo exploded"), false, http.StatusInternalServerError, "internal server error", false},
		{"unexpected verbose", errors.New("mongo exploded"), true, http.StatusInternalServerError, "internal server error", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop(), tt.verbose)(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Fatalf("expected %q, got %q", tt.wantError, resp.Error)
			}
			if (resp.Detail != "") != tt.wantDetail {
				t.Fatalf("unexpected detail %q", resp.Detail)
			}
		})
	}
}

func TestHTTPErrorHandler_Redirect(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/auth/signin/google", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop(), false)(&domain.Redirect{Location: "https://accounts.example.com/auth"}, c)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "https://accounts.example.com/auth" {
		t.Fatalf("unexpected location %q", loc)
	}
}
