package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/api/middleware"
	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
	"github.com/hellostack/portal/internal/core/service"
	"github.com/hellostack/portal/internal/infrastructure/http/handlers"
)

// fakeAuth accepts the cookie value "admin" or "user" as a session.
type fakeAuth struct {
	roles map[string]domain.Role
	set   map[string]domain.Role
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{
		roles: map[string]domain.Role{"admin": domain.RoleAdmin, "user": domain.RoleUser},
		set:   make(map[string]domain.Role),
	}
}

func (f *fakeAuth) BeginSignIn(_ context.Context, provider, redirectTo string) error {
	if provider != "google" {
		return domain.NewAuthError(domain.AuthErrConfiguration, nil)
	}
	return &domain.Redirect{Location: "https://accounts.example.com/auth?redirect=" + url.QueryEscape(redirectTo)}
}

func (f *fakeAuth) CompleteSignIn(context.Context, string, string, string) (*ports.SignInResult, error) {
	return &ports.SignInResult{Token: "user", RedirectTo: "/features/login"}, nil
}

func (f *fakeAuth) Session(_ context.Context, raw string) (*domain.Session, error) {
	role, ok := f.roles[raw]
	if !ok {
		return nil, nil
	}
	return &domain.Session{User: domain.SessionUser{Name: "Kim", Role: &role}}, nil
}

func (f *fakeAuth) Providers() []ports.ProviderInfo {
	return []ports.ProviderInfo{{ID: "google", Name: "Google"}}
}

func (f *fakeAuth) Identity(_ context.Context, id string) (*domain.Identity, error) {
	return &domain.Identity{ID: id}, nil
}

func (f *fakeAuth) SetRole(_ context.Context, id string, role domain.Role) error {
	f.set[id] = role
	return nil
}

func newTestRouter(t *testing.T, auth *fakeAuth) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewRouter(Deps{
		Auth:        auth,
		Submissions: service.NewSubmissionService(nil, zerolog.Nop()),
		Checks:      map[string]handlers.CheckFunc{"stub": func(context.Context) error { return nil }},
		Guard:       middleware.DefaultGuardConfig(),
		Log:         zerolog.Nop(),
		Registerer:  reg,
		Gatherer:    reg,
	})
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_GuardRedirectsLoginWithoutSession(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())

	rec := do(h, httptest.NewRequest(http.MethodGet, "/features/login", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/features/login?callbackUrl=%2Ffeatures%2Flogin" {
		t.Fatalf("unexpected location %q", loc)
	}

	// Following the redirect renders the login page instead of looping.
	rec = do(h, httptest.NewRequest(http.MethodGet, "/features/login?callbackUrl=%2Ffeatures%2Flogin", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on redirected request, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"providers"`) {
		t.Fatalf("expected providers on signed-out login page, got %s", rec.Body.String())
	}
}

func TestRouter_LoginWithSession(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	req := httptest.NewRequest(http.MethodGet, "/features/login", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "user"})

	rec := do(h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "환영합니다, Kim님") {
		t.Fatalf("expected greeting, got %s", rec.Body.String())
	}
}

func TestRouter_PublicPages(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	for _, path := range []string{"/", "/features/form"} {
		if rec := do(h, httptest.NewRequest(http.MethodGet, path, nil)); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_SignInRedirectsToProvider(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin/google", strings.NewReader("callbackUrl=%2Ffeatures%2Flogin"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := do(h, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "https://accounts.example.com/auth") {
		t.Fatalf("unexpected location %q", loc)
	}
}

func TestRouter_SignInUnknownProvider(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	rec := do(h, httptest.NewRequest(http.MethodPost, "/api/auth/signin/github", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication failed: Configuration") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRouter_SessionNullWithoutCookie(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	rec := do(h, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected 200 null, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_BugReport(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	req := httptest.NewRequest(http.MethodPost, "/api/bug-report", strings.NewReader(`{"title":"Valid bug title","description":"A valid description"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := do(h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "버그 리포트가 성공적으로 제출되었습니다!") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRouter_AdminRequiresAdminRole(t *testing.T) {
	auth := newFakeAuth()
	h := newTestRouter(t, auth)

	send := func(cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/identities/id-7/role", strings.NewReader(`{"role":"ADMIN"}`))
		req.Header.Set("Content-Type", "application/json")
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
		}
		return do(h, req)
	}

	if rec := send(""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}
	if rec := send("user"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for USER, got %d", rec.Code)
	}
	if rec := send("admin"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for ADMIN, got %d", rec.Code)
	}
	if auth.set["id-7"] != domain.RoleAdmin {
		t.Fatalf("expected role to be assigned")
	}
}

func TestRouter_OpsEndpoints(t *testing.T) {
	h := newTestRouter(t, newFakeAuth())
	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		rec := do(h, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
