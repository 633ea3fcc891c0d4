// @title        Portal API
// @version      1.0
// @description  Session, bug report and web vitals endpoints of the portal boilerplate.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hellostack/portal/internal/api"
	"github.com/hellostack/portal/internal/api/handler"
	"github.com/hellostack/portal/internal/api/metrics"
	"github.com/hellostack/portal/internal/api/middleware"
	"github.com/hellostack/portal/internal/core/service"
	mongodb "github.com/hellostack/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/hellostack/portal/internal/infrastructure/db/redis"
	"github.com/hellostack/portal/internal/infrastructure/http/handlers"
	"github.com/hellostack/portal/internal/infrastructure/oauth"
	"github.com/hellostack/portal/internal/infrastructure/queue"
	"github.com/hellostack/portal/internal/pkg/config"
	"github.com/hellostack/portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Env:     cfg.Env,
		Service: "portal",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.DatabaseURL,
		Database:    cfg.Mongo.Database,
		LogCommands: cfg.IsDevelopment(),
		Logger:      log.With().Str("component", "mongo").Logger(),
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	identities := mongodb.NewIdentityRepository(db)
	if err := identities.EnsureIndexes(ctx); err != nil {
		return err
	}

	issuer, err := service.NewSessionIssuer(cfg.Auth.Secret, 0)
	if err != nil {
		return err
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Events.Workers, service.NewEventService(log), log)
	dispatcher.OnDrop(metrics.EventsDroppedTotal.Inc)
	dispatcher.Start(workerCtx)
	defer func() {
		cancelWorkers()
		dispatcher.Wait()
	}()

	google := oauth.NewGoogleProvider(oauth.GoogleConfig{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL(),
	})

	authService := service.NewAuthService(identities, redisdb.NewStateStore(rdb), issuer, dispatcher, log, google)
	submissionService := service.NewSubmissionService(dispatcher, log)

	e := api.NewRouter(api.Deps{
		Auth:        authService,
		Submissions: submissionService,
		Checks: map[string]handlers.CheckFunc{
			"mongodb": handlers.MongoCheck(db),
			"redis":   handlers.RedisCheck(rdb),
		},
		Guard: middleware.DefaultGuardConfig(),
		Cookie: handler.CookieOptions{
			Secure: cfg.Auth.CookieSecure || cfg.IsProduction(),
			MaxAge: issuer.MaxAge(),
		},
		Log:     log,
		Verbose: cfg.IsDevelopment(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down")
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	return nil
}
