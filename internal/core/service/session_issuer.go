package service

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	"github.com/hellostack/portal/internal/core/domain"
)

const (
	signingKeyInfo = "portal session signing key"
	minSecretLen   = 32
)

// sessionClaims is the wire form of domain.Token.
type sessionClaims struct {
	Name        string       `json:"name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Picture     string       `json:"picture,omitempty"`
	Role        *domain.Role `json:"role,omitempty"`
	DisplayName *string      `json:"displayName,omitempty"`
	jwt.RegisteredClaims
}

// SessionIssuer mints and verifies session tokens.
type SessionIssuer struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewSessionIssuer derives the HMAC key from secret. maxAge <= 0 falls back
// to domain.SessionMaxAge.
func NewSessionIssuer(secret string, maxAge time.Duration) (*SessionIssuer, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("session issuer: secret must be at least %d characters", minSecretLen)
	}
	if maxAge <= 0 {
		maxAge = domain.SessionMaxAge
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("session issuer: derive key: %w", err)
	}

	return &SessionIssuer{key: key, maxAge: maxAge, now: time.Now}, nil
}

// MaxAge returns the token lifetime.
func (s *SessionIssuer) MaxAge() time.Duration { return s.maxAge }

// Mint issues a signed token for identity.
func (s *SessionIssuer) Mint(identity *domain.Identity) (string, *domain.Token, error) {
	if identity == nil || identity.ID == "" {
		return "", nil, fmt.Errorf("mint session: %w", domain.ErrIdentityNotFound)
	}

	now := s.now().UTC().Truncate(time.Second)
	token := JWTCallback(domain.Token{
		Subject:   identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		Picture:   identity.Image,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.maxAge),
	}, identity)

	claims := sessionClaims{
		Name:        token.Name,
		Email:       token.Email,
		Picture:     token.Picture,
		Role:        token.Role,
		DisplayName: token.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   token.Subject,
			IssuedAt:  jwt.NewNumericDate(token.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(token.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", nil, fmt.Errorf("mint session: %w", err)
	}
	return signed, &token, nil
}

// Decode verifies raw and returns its token. Expired tokens yield
// domain.ErrSessionExpired, anything else unverifiable
// domain.ErrInvalidSession.
func (s *SessionIssuer) Decode(raw string) (*domain.Token, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidSession
	}

	token := domain.Token{
		Subject:     claims.Subject,
		Name:        claims.Name,
		Email:       claims.Email,
		Picture:     claims.Picture,
		Role:        claims.Role,
		DisplayName: claims.DisplayName,
		ExpiresAt:   claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	return &token, nil
}
