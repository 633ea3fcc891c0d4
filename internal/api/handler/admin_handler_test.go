package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hellostack/portal/internal/core/domain"
)

func TestAdminHandler_SetRole(t *testing.T) {
	e := newTestEcho()
	var gotID string
	var gotRole domain.Role
	stub := &stubAuthService{
		setRoleFn: func(_ context.Context, id string, role domain.Role) error {
			gotID, gotRole = id, role
			return nil
		},
	}
	h := NewAdminHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/admin/identities/id-1/role", `{"role":"ADMIN"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.SetRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "id-1" || gotRole != domain.RoleAdmin {
		t.Fatalf("unexpected call: %s %s", gotID, gotRole)
	}
}

func TestAdminHandler_SetRole_RejectsUnknownRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		setRoleFn: func(context.Context, string, domain.Role) error {
			t.Fatalf("service must not be called")
			return nil
		},
	}
	h := NewAdminHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/admin/identities/id-1/role", `{"role":"ROOT"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.SetRole(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_Identity(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		identityFn: func(_ context.Context, id string) (*domain.Identity, error) {
			return &domain.Identity{ID: id, Name: "Kim", Role: domain.RoleUser}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/identities/id-1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := NewAdminHandler(stub).Identity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
