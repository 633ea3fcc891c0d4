package domain

import "time"

// SessionMaxAge is the lifetime of a session token. There is no sliding
// renewal: a token is absent once ExpiresAt has passed.
const SessionMaxAge = 7 * 24 * time.Hour

// Profile is the subset of provider claims the sign-in flow reads.
type Profile struct {
	Subject string
	Name    string
	Email   string
	Picture string
}

// Token is the decoded content of the session cookie.
// Role and DisplayName are nil when the token never carried them.
type Token struct {
	Subject     string
	Name        string
	Email       string
	Picture     string
	Role        *Role
	DisplayName *string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// SessionUser is the outward-facing user view of a session.
type SessionUser struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Image       string  `json:"image,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Role        *Role   `json:"role,omitempty"`
}

// Session is what the UI layer consumes.
type Session struct {
	User    SessionUser `json:"user"`
	Expires time.Time   `json:"expires"`
}

// SignInEvent is emitted after every successful sign-in.
type SignInEvent struct {
	IdentityID string
	IsNewUser  bool
	Provider   string
	At         time.Time
}
