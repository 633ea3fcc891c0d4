package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/api/metrics"
	"github.com/hellostack/portal/internal/core/domain"
)

// RequestTimeHeader is stamped on every guarded request that is let through.
const RequestTimeHeader = "x-request-time"

// requestTimeLayout is ISO-8601 UTC with millisecond precision.
const requestTimeLayout = "2006-01-02T15:04:05.000Z"

// SessionResolver turns a raw cookie value into a session. Absent, invalid
// and expired tokens resolve to (nil, nil).
type SessionResolver interface {
	Session(ctx context.Context, rawToken string) (*domain.Session, error)
}

// GuardConfig lists the paths the route guard knows about. Public and
// protected routes are exact matches. Excluded entries are raw prefixes of
// the path after its leading slash; OpsPaths must match whole segments.
type GuardConfig struct {
	PublicRoutes    []string
	ProtectedRoutes []string
	LoginPath       string
	Excluded        []string
	OpsPaths        []string
	Now             func() time.Time
}

// DefaultGuardConfig returns the portal route table.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		PublicRoutes:    []string{"/", "/features/form"},
		ProtectedRoutes: []string{"/features/login"},
		LoginPath:       "/features/login",
		Excluded:        []string{"api", "static", "_next/static", "_next/image", "favicon.ico", "public"},
		OpsPaths:        []string{"health", "metrics", "swagger"},
		Now:             time.Now,
	}
}

// Decision is the outcome of evaluating one request path.
type Decision string

const (
	DecisionSkip     Decision = "skip"
	DecisionPublic   Decision = "public"
	DecisionAllow    Decision = "allow"
	DecisionRedirect Decision = "redirect"
)

type routeGuard struct {
	public    map[string]struct{}
	protected map[string]struct{}
	cfg       GuardConfig
	sessions  SessionResolver
	log       zerolog.Logger
}

// Guard returns the route guard. Register it with e.Pre so it sees the raw
// path before routing.
func Guard(cfg GuardConfig, sessions SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	g := &routeGuard{
		public:    toSet(cfg.PublicRoutes),
		protected: toSet(cfg.ProtectedRoutes),
		cfg:       cfg,
		sessions:  sessions,
		log:       log,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			decision := g.decide(c)
			metrics.GuardDecisionsTotal.WithLabelValues(string(decision)).Inc()

			switch decision {
			case DecisionRedirect:
				q := url.Values{"callbackUrl": {req.URL.Path}}
				return c.Redirect(http.StatusFound, g.cfg.LoginPath+"?"+q.Encode())
			case DecisionAllow:
				req.Header.Set(RequestTimeHeader, g.cfg.Now().UTC().Format(requestTimeLayout))
			}
			return next(c)
		}
	}
}

func (g *routeGuard) decide(c echo.Context) Decision {
	req := c.Request()
	path := req.URL.Path

	if g.excluded(path) {
		return DecisionSkip
	}
	if _, ok := g.public[path]; ok {
		return DecisionPublic
	}
	if _, ok := g.protected[path]; !ok {
		return DecisionAllow
	}

	session, err := g.sessions.Session(req.Context(), SessionToken(c))
	if err != nil {
		g.log.Warn().Err(err).Str("path", path).Msg("session lookup failed")
	}
	if session != nil {
		return DecisionAllow
	}
	// The login page is itself protected; once the browser is already on it
	// with a callback target, let it render the sign-in state.
	if path == g.cfg.LoginPath && req.URL.Query().Has("callbackUrl") {
		return DecisionAllow
	}
	return DecisionRedirect
}

func (g *routeGuard) excluded(path string) bool {
	rest := strings.TrimPrefix(path, "/")
	for _, prefix := range g.cfg.Excluded {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	for _, seg := range g.cfg.OpsPaths {
		if rest == seg || strings.HasPrefix(rest, seg+"/") {
			return true
		}
	}
	return false
}

func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}
