package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hellostack/portal/docs"
	"github.com/hellostack/portal/internal/api/handler"
	"github.com/hellostack/portal/internal/api/middleware"
	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
	"github.com/hellostack/portal/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Auth        ports.AuthService
	Submissions ports.SubmissionService
	Checks      map[string]handlers.CheckFunc
	Guard       middleware.GuardConfig
	Cookie      handler.CookieOptions
	Log         zerolog.Logger
	Verbose     bool
	// Registerer and Gatherer back the HTTP metrics. Nil means the default
	// Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Verbose)

	// --- Route guard runs before routing on the raw path ---
	e.Pre(middleware.Guard(d.Guard, d.Auth, d.Log))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "portal",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Cookie, d.Log)
	bugReportHandler := handler.NewBugReportHandler(d.Submissions)
	pageHandler := handler.NewPageHandler(d.Auth)
	vitalsHandler := handler.NewVitalsHandler(d.Log)
	adminHandler := handler.NewAdminHandler(d.Auth)

	// --- Pages ---
	e.GET("/", pageHandler.Home)
	e.GET("/features/form", pageHandler.Form)
	e.GET("/features/login", pageHandler.Login)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signin/:provider", authHandler.SignIn)
	authGroup.GET("/callback/:provider", authHandler.Callback)
	authGroup.POST("/signout", authHandler.SignOut)
	authGroup.GET("/session", authHandler.Session)
	authGroup.GET("/providers", authHandler.Providers)

	// --- Bug report ---
	e.POST("/api/bug-report", bugReportHandler.Submit)
	e.POST("/api/bug-report/validate", bugReportHandler.ValidateField)

	// --- Web vitals ---
	e.POST("/api/vitals", vitalsHandler.Receive)

	// --- Admin (session + ADMIN role required) ---
	admin := e.Group("/api/admin",
		middleware.LoadSession(d.Auth, d.Log),
		middleware.RBAC(domain.RoleAdmin),
	)
	admin.GET("/identities/:id", adminHandler.Identity)
	admin.PUT("/identities/:id/role", adminHandler.SetRole)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one structured access log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
