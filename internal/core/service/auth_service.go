package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
)

const defaultStateTTL = 10 * time.Minute

// AuthService runs the OAuth sign-in flow and materializes sessions.
type AuthService struct {
	providers map[string]ports.OAuthProvider
	infos     []ports.ProviderInfo
	repo      ports.IdentityRepository
	states    ports.StateStore
	issuer    *SessionIssuer
	events    ports.EventDispatcher
	log       zerolog.Logger
	stateTTL  time.Duration
}

func NewAuthService(
	repo ports.IdentityRepository,
	states ports.StateStore,
	issuer *SessionIssuer,
	events ports.EventDispatcher,
	log zerolog.Logger,
	providers ...ports.OAuthProvider,
) *AuthService {
	s := &AuthService{
		providers: make(map[string]ports.OAuthProvider, len(providers)),
		repo:      repo,
		states:    states,
		issuer:    issuer,
		events:    events,
		log:       log,
		stateTTL:  defaultStateTTL,
	}
	for _, p := range providers {
		s.providers[p.ID()] = p
		s.infos = append(s.infos, ports.ProviderInfo{ID: p.ID(), Name: p.Name()})
	}
	return s
}

// Providers lists the configured providers in registration order.
func (s *AuthService) Providers() []ports.ProviderInfo {
	out := make([]ports.ProviderInfo, len(s.infos))
	copy(out, s.infos)
	return out
}

// BeginSignIn stores a pending sign-in and returns a *domain.Redirect to the
// provider consent page.
func (s *AuthService) BeginSignIn(ctx context.Context, provider, redirectTo string) error {
	p, ok := s.providers[provider]
	if !ok {
		return domain.NewAuthError(domain.AuthErrConfiguration, fmt.Errorf("unknown provider %q", provider))
	}

	state, err := randomToken(16)
	if err != nil {
		return fmt.Errorf("begin sign-in: state: %w", err)
	}
	verifier, err := randomToken(32)
	if err != nil {
		return fmt.Errorf("begin sign-in: verifier: %w", err)
	}

	pending := ports.PendingSignIn{
		Provider:   provider,
		Verifier:   verifier,
		RedirectTo: SafeRedirect(redirectTo),
	}
	if err := s.states.Save(ctx, state, pending, s.stateTTL); err != nil {
		return fmt.Errorf("begin sign-in: save state: %w", err)
	}

	return &domain.Redirect{Location: p.AuthCodeURL(state, verifier)}
}

// CompleteSignIn handles the provider callback: it checks the state,
// exchanges the code, links or creates the identity and mints a session.
func (s *AuthService) CompleteSignIn(ctx context.Context, provider, state, code string) (*ports.SignInResult, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, domain.NewAuthError(domain.AuthErrConfiguration, fmt.Errorf("unknown provider %q", provider))
	}
	if state == "" {
		return nil, domain.NewAuthError(domain.AuthErrInvalidCheck, errors.New("missing state"))
	}

	pending, err := s.states.Consume(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("complete sign-in: load state: %w", err)
	}
	if pending == nil || pending.Provider != provider {
		return nil, domain.NewAuthError(domain.AuthErrInvalidCheck, errors.New("state mismatch"))
	}
	if code == "" {
		return nil, domain.NewAuthError(domain.AuthErrCallback, errors.New("missing authorization code"))
	}

	profile, err := p.Exchange(ctx, code, pending.Verifier)
	if err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			return nil, err
		}
		return nil, domain.NewAuthError(domain.AuthErrCallback, err)
	}
	if profile.Subject == "" {
		return nil, domain.NewAuthError(domain.AuthErrCallback, errors.New("profile without subject"))
	}

	candidate := ProfileToIdentity(*profile)
	identity, isNew, err := s.repo.LinkOrCreate(ctx, provider, profile.Subject, &candidate)
	if err != nil {
		return nil, fmt.Errorf("complete sign-in: link identity: %w", err)
	}

	raw, _, err := s.issuer.Mint(identity)
	if err != nil {
		return nil, fmt.Errorf("complete sign-in: %w", err)
	}

	s.emitSignIn(domain.SignInEvent{
		IdentityID: identity.ID,
		IsNewUser:  isNew,
		Provider:   provider,
		At:         time.Now().UTC(),
	})

	return &ports.SignInResult{
		Token:      raw,
		RedirectTo: pending.RedirectTo,
		Identity:   identity,
		IsNewUser:  isNew,
	}, nil
}

// Session decodes rawToken into the outward-facing session. Absent, invalid
// and expired tokens all yield (nil, nil).
func (s *AuthService) Session(_ context.Context, rawToken string) (*domain.Session, error) {
	if rawToken == "" {
		return nil, nil
	}

	token, err := s.issuer.Decode(rawToken)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrInvalidSession) {
			s.log.Debug().Err(err).Msg("session token rejected")
			return nil, nil
		}
		return nil, err
	}

	enriched := JWTCallback(*token, nil)
	session := SessionCallback(baseSession(enriched), enriched)
	return &session, nil
}

// Identity loads a persisted identity.
func (s *AuthService) Identity(ctx context.Context, identityID string) (*domain.Identity, error) {
	identity, err := s.repo.FindByID(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return identity, nil
}

// SetRole assigns role to the identity. Existing tokens keep their role
// until the next sign-in.
func (s *AuthService) SetRole(ctx context.Context, identityID string, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if err := s.repo.SetRole(ctx, identityID, role); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	s.log.Info().Str("identity_id", identityID).Str("role", string(role)).Msg("role assigned")
	return nil
}

// emitSignIn hands the event to the background dispatcher. A panic in the
// dispatcher is contained here so the sign-in itself still succeeds.
func (s *AuthService) emitSignIn(ev domain.SignInEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("identity_id", ev.IdentityID).Msg("sign-in event dropped")
		}
	}()
	if s.events == nil {
		return
	}
	s.events.Enqueue(ports.Event{Key: ev.IdentityID, SignIn: &ev})
}

// SafeRedirect keeps only same-origin relative paths.
func SafeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
