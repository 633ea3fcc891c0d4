package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/domain"
)

// SessionCookie carries the signed session token.
const SessionCookie = "portal.session-token"

const sessionKey = "session"

// SessionToken returns the raw session cookie value, or "" when absent.
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie writes the session cookie. maxAge <= 0 clears it.
func SetSessionCookie(c echo.Context, token string, maxAge time.Duration, secure bool) {
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge / time.Second)
		cookie.Expires = time.Now().Add(maxAge)
	} else {
		cookie.Value = ""
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	}
	c.SetCookie(cookie)
}

// LoadSession resolves the session cookie and stores the result on the
// context. Requests without a valid session pass through with no session.
func LoadSession(sessions SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := SessionToken(c)
			if raw != "" {
				session, err := sessions.Session(c.Request().Context(), raw)
				if err != nil {
					log.Warn().Err(err).Msg("session lookup failed")
				}
				if session != nil {
					c.Set(sessionKey, session)
				}
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session stored by LoadSession, or nil.
func CurrentSession(c echo.Context) *domain.Session {
	s, _ := c.Get(sessionKey).(*domain.Session)
	return s
}
