package service

import (
	"time"

	"github.com/hellostack/portal/internal/core/domain"
)

const displayNameSuffix = "표시이름"

// ProfileToIdentity maps provider claims onto a new identity. Only the
// allow-listed fields are copied; the identity id is left for the adapter
// to generate and the provider subject stays on the account link.
func ProfileToIdentity(p domain.Profile) domain.Identity {
	return domain.Identity{
		Name:        p.Name,
		Email:       p.Email,
		Image:       p.Picture,
		DisplayName: p.Name + "'s " + displayNameSuffix,
		Role:        domain.RoleUser,
	}
}

// JWTCallback enriches a token from the identity it was issued for. On
// decode there is no identity and the token is returned as is, so role and
// display name only ever come from the stored identity.
func JWTCallback(token domain.Token, identity *domain.Identity) domain.Token {
	if identity == nil {
		return token
	}
	if identity.Role != "" {
		role := identity.Role
		token.Role = &role
	}
	if identity.DisplayName != "" {
		name := identity.DisplayName
		token.DisplayName = &name
	}
	return token
}

// SessionCallback copies role and display name from the token onto the
// session. Missing values stay unset.
func SessionCallback(session domain.Session, token domain.Token) domain.Session {
	session.User.Role = nil
	session.User.DisplayName = nil
	if token.Role != nil && token.Role.Valid() {
		role := *token.Role
		session.User.Role = &role
	}
	if token.DisplayName != nil {
		name := *token.DisplayName
		session.User.DisplayName = &name
	}
	return session
}

// baseSession is the session every token materializes to before callbacks.
func baseSession(token domain.Token) domain.Session {
	return domain.Session{
		User: domain.SessionUser{
			Name:  token.Name,
			Email: token.Email,
			Image: token.Picture,
		},
		Expires: token.ExpiresAt.UTC().Truncate(time.Second),
	}
}
