package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Completes redirect signals raised by the sign-in flow.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client,
//     unless verbose is set (development).
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, verbose bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var redirect *domain.Redirect
		if errors.As(err, &redirect) {
			_ = c.Redirect(http.StatusFound, redirect.Location)
			return
		}

		code, msg := resolveError(err, log, c)
		resp := errorResponse{Error: msg}
		if verbose && code == http.StatusInternalServerError {
			resp.Detail = err.Error()
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var failure *domain.SignInFailure
	if errors.As(err, &failure) {
		return http.StatusUnauthorized, failure.Error()
	}
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		log.Warn().Err(err).Str("type", string(authErr.Type)).Msg("authentication failed")
		return http.StatusUnauthorized, (&domain.SignInFailure{Type: authErr.Type}).Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, "identity not found"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrUnknownField):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrInvalidSession):
		return http.StatusUnauthorized, "invalid session"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
