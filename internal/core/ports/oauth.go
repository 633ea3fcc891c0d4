package ports

import (
	"context"
	"time"

	"github.com/hellostack/portal/internal/core/domain"
)

// OAuthProvider is a third-party identity provider.
type OAuthProvider interface {
	ID() string
	Name() string
	// AuthCodeURL builds the consent URL for state and the PKCE verifier.
	AuthCodeURL(state, verifier string) string
	// Exchange trades an authorization code for the provider profile.
	Exchange(ctx context.Context, code, verifier string) (*domain.Profile, error)
}

// PendingSignIn is the server-side half of an OAuth round trip.
type PendingSignIn struct {
	Provider   string `json:"provider"`
	Verifier   string `json:"verifier"`
	RedirectTo string `json:"redirect_to"`
}

// StateStore keeps pending sign-ins between the redirect and the callback.
type StateStore interface {
	Save(ctx context.Context, state string, p PendingSignIn, ttl time.Duration) error
	// Consume returns and deletes the pending sign-in. A missing state yields
	// (nil, nil).
	Consume(ctx context.Context, state string) (*PendingSignIn, error)
}
