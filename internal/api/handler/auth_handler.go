package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/api/metrics"
	"github.com/hellostack/portal/internal/api/middleware"
	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
	"github.com/hellostack/portal/internal/core/service"
)

// CookieOptions controls how the session cookie is written.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieOptions
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookie CookieOptions, log zerolog.Logger) *AuthHandler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = domain.SessionMaxAge
	}
	return &AuthHandler{authService: authService, cookie: cookie, log: log}
}

// SignIn starts the OAuth flow for a provider.
//
// @Summary      Start sign-in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        provider     path      string  true   "Provider id"  example(google)
// @Param        callbackUrl  formData  string  false  "Where to return after sign-in"
// @Success      302
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/signin/{provider} [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	callbackURL := c.FormValue("callbackUrl")
	if callbackURL == "" {
		callbackURL = "/"
	}

	err := h.authService.BeginSignIn(c.Request().Context(), c.Param("provider"), callbackURL)
	return signInError(err)
}

// signInError converts an AuthError into the caller-facing failure. Every
// other error, the redirect signal included, is returned untouched.
func signInError(err error) error {
	if err == nil || domain.IsRedirect(err) {
		return err
	}
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return &domain.SignInFailure{Type: authErr.Type}
	}
	return err
}

// Callback finishes the OAuth flow, sets the session cookie and sends the
// browser back to where sign-in started.
//
// @Summary      OAuth callback
// @Tags         auth
// @Param        provider  path   string  true   "Provider id"
// @Param        state     query  string  false  "OAuth state"
// @Param        code      query  string  false  "Authorization code"
// @Param        error     query  string  false  "Provider error"
// @Success      302
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/callback/{provider} [get]
func (h *AuthHandler) Callback(c echo.Context) error {
	provider := c.Param("provider")

	if providerErr := c.QueryParam("error"); providerErr != "" {
		t := domain.AuthErrCallback
		if providerErr == "access_denied" {
			t = domain.AuthErrAccessDenied
		}
		metrics.SignInErrorsTotal.WithLabelValues(string(t)).Inc()
		return domain.NewAuthError(t, errors.New(providerErr))
	}

	res, err := h.authService.CompleteSignIn(c.Request().Context(), provider, c.QueryParam("state"), c.QueryParam("code"))
	if err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			metrics.SignInErrorsTotal.WithLabelValues(string(authErr.Type)).Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues(provider, strconv.FormatBool(res.IsNewUser)).Inc()
	middleware.SetSessionCookie(c, res.Token, h.cookie.MaxAge, h.cookie.Secure)
	return c.Redirect(http.StatusFound, res.RedirectTo)
}

// SignOut clears the session cookie. The token itself stays valid until it
// expires.
//
// @Summary      Sign out
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        callbackUrl  formData  string  false  "Where to go after sign-out"
// @Success      302
// @Router       /api/auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	middleware.SetSessionCookie(c, "", 0, h.cookie.Secure)
	return c.Redirect(http.StatusFound, service.SafeRedirect(c.FormValue("callbackUrl")))
}

// Session returns the current session, or null.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Session
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := h.authService.Session(c.Request().Context(), middleware.SessionToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// Providers lists the configured sign-in providers keyed by id.
//
// @Summary      Sign-in providers
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]providerResponse
// @Router       /api/auth/providers [get]
func (h *AuthHandler) Providers(c echo.Context) error {
	infos := h.authService.Providers()
	out := make(map[string]providerResponse, len(infos))
	for _, p := range infos {
		out[p.ID] = toProviderResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}
