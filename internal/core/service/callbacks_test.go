package service

import (
	"testing"
	"time"

	"github.com/hellostack/portal/internal/core/domain"
)

func TestProfileToIdentity(t *testing.T) {
	got := ProfileToIdentity(domain.Profile{
		Subject: "google-sub-1",
		Name:    "Kim",
		Email:   "kim@example.com",
		Picture: "https://cdn.example.com/kim.png",
	})

	if got.ID != "" {
		t.Fatalf("provider subject must not become the identity id, got %q", got.ID)
	}
	if got.Name != "Kim" || got.Email != "kim@example.com" || got.Image != "https://cdn.example.com/kim.png" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.DisplayName != "Kim's 표시이름" {
		t.Fatalf("unexpected display name %q", got.DisplayName)
	}
	if got.Role != domain.RoleUser {
		t.Fatalf("expected USER role, got %q", got.Role)
	}
}

func TestJWTCallback_CopiesFromIdentity(t *testing.T) {
	identity := &domain.Identity{ID: "id-1", Role: domain.RoleAdmin, DisplayName: "Boss"}
	got := JWTCallback(domain.Token{Subject: "id-1"}, identity)

	if got.Role == nil || *got.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN role on token, got %v", got.Role)
	}
	if got.DisplayName == nil || *got.DisplayName != "Boss" {
		t.Fatalf("expected display name on token, got %v", got.DisplayName)
	}

	identity.Role = domain.RoleUser
	if *got.Role != domain.RoleAdmin {
		t.Fatalf("token must not alias the identity")
	}
}

func TestJWTCallback_NoIdentityLeavesTokenUnchanged(t *testing.T) {
	role := domain.RoleUser
	in := domain.Token{Subject: "id-1", Role: &role}
	got := JWTCallback(in, nil)
	if got.Role != in.Role || got.DisplayName != nil {
		t.Fatalf("expected token unchanged, got %+v", got)
	}
}

func TestJWTCallback_EmptyIdentityFieldsStayAbsent(t *testing.T) {
	got := JWTCallback(domain.Token{Subject: "id-1"}, &domain.Identity{ID: "id-1"})
	if got.Role != nil || got.DisplayName != nil {
		t.Fatalf("expected absent role and display name, got %+v", got)
	}
}

func TestSessionCallback(t *testing.T) {
	admin := domain.RoleAdmin
	bogus := domain.Role("ROOT")
	name := "Kim's 표시이름"

	tests := []struct {
		name            string
		token           domain.Token
		wantRole        *domain.Role
		wantDisplayName *string
	}{
		{"both present", domain.Token{Role: &admin, DisplayName: &name}, &admin, &name},
		{"both absent", domain.Token{}, nil, nil},
		{"unknown role dropped", domain.Token{Role: &bogus}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stale := domain.RoleUser
			got := SessionCallback(domain.Session{User: domain.SessionUser{Role: &stale}}, tt.token)

			if (got.User.Role == nil) != (tt.wantRole == nil) {
				t.Fatalf("role presence mismatch: got %v", got.User.Role)
			}
			if tt.wantRole != nil && *got.User.Role != *tt.wantRole {
				t.Fatalf("expected role %q, got %q", *tt.wantRole, *got.User.Role)
			}
			if (got.User.DisplayName == nil) != (tt.wantDisplayName == nil) {
				t.Fatalf("display name presence mismatch: got %v", got.User.DisplayName)
			}
			if tt.wantDisplayName != nil && *got.User.DisplayName != *tt.wantDisplayName {
				t.Fatalf("expected display name %q, got %q", *tt.wantDisplayName, *got.User.DisplayName)
			}
		})
	}
}

func TestBaseSession(t *testing.T) {
	exp := time.Date(2026, 1, 8, 0, 0, 0, 500_000_000, time.UTC)
	got := baseSession(domain.Token{Name: "Kim", Email: "kim@example.com", Picture: "p.png", ExpiresAt: exp})

	if got.User.Name != "Kim" || got.User.Email != "kim@example.com" || got.User.Image != "p.png" {
		t.Fatalf("unexpected user %+v", got.User)
	}
	if !got.Expires.Equal(exp.Truncate(time.Second)) {
		t.Fatalf("unexpected expiry %v", got.Expires)
	}
}
