package ports

import (
	"context"

	"github.com/hellostack/portal/internal/core/domain"
)

// SignInResult carries the minted session cookie value and where to send
// the browser afterwards.
type SignInResult struct {
	Token      string
	RedirectTo string
	Identity   *domain.Identity
	IsNewUser  bool
}

// ProviderInfo describes a configured provider for the login page.
type ProviderInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthService is the session issuer as seen by the transport layer.
type AuthService interface {
	// BeginSignIn always fails: on success the error is a *domain.Redirect
	// to the provider consent page.
	BeginSignIn(ctx context.Context, provider, redirectTo string) error
	CompleteSignIn(ctx context.Context, provider, state, code string) (*SignInResult, error)
	// Session decodes a raw token. An absent, invalid or expired token
	// yields (nil, nil).
	Session(ctx context.Context, rawToken string) (*domain.Session, error)
	Providers() []ProviderInfo
	Identity(ctx context.Context, identityID string) (*domain.Identity, error)
	SetRole(ctx context.Context, identityID string, role domain.Role) error
}
