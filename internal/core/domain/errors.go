package domain

import (
	"errors"
	"fmt"
)

// AuthErrorType classifies authentication failures.
type AuthErrorType string

const (
	AuthErrCallback      AuthErrorType = "OAuthCallbackError"
	AuthErrSignIn        AuthErrorType = "OAuthSignInError"
	AuthErrAccessDenied  AuthErrorType = "AccessDenied"
	AuthErrInvalidCheck  AuthErrorType = "InvalidCheck"
	AuthErrConfiguration AuthErrorType = "Configuration"
)

// AuthError is a typed authentication failure coming from the provider
// exchange or the sign-in checks.
type AuthError struct {
	Type AuthErrorType
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "auth: " + string(e.Type)
	}
	return fmt.Sprintf("auth: %s: %v", e.Type, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError wraps err as an AuthError of type t.
func NewAuthError(t AuthErrorType, err error) *AuthError {
	return &AuthError{Type: t, Err: err}
}

// Redirect is the signal used by the sign-in flow to hand control to the
// HTTP layer. It must travel up the call stack untouched.
type Redirect struct {
	Location string
}

func (r *Redirect) Error() string { return "redirect to " + r.Location }

// IsRedirect reports whether err carries a redirect signal.
func IsRedirect(err error) bool {
	var r *Redirect
	return errors.As(err, &r)
}

// ErrAuthenticationFailed is what a sign-in action reports for any AuthError.
var ErrAuthenticationFailed = errors.New("authentication failed")

// SignInFailure is the caller-facing form of an AuthError.
type SignInFailure struct {
	Type AuthErrorType
}

func (f *SignInFailure) Error() string {
	return "Authentication failed: " + string(f.Type)
}

func (f *SignInFailure) Unwrap() error { return ErrAuthenticationFailed }

var ErrSessionExpired = errors.New("session expired")
var ErrInvalidSession = errors.New("invalid session token")
