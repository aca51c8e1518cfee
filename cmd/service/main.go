// Package main is the entry point for the NovaMuse site.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/c3devs/novamuse/internal/adapters/clients"
	"github.com/c3devs/novamuse/internal/adapters/clients/acl"
	"github.com/c3devs/novamuse/internal/adapters/http"
	"github.com/c3devs/novamuse/internal/adapters/http/handlers"
	"github.com/c3devs/novamuse/internal/adapters/http/middleware"
	"github.com/c3devs/novamuse/internal/adapters/oidc"
	"github.com/c3devs/novamuse/internal/adapters/sqlite"
	"github.com/c3devs/novamuse/internal/app"
	"github.com/c3devs/novamuse/internal/platform/config"
	"github.com/c3devs/novamuse/internal/platform/database"
	"github.com/c3devs/novamuse/internal/platform/logging"
	"github.com/c3devs/novamuse/internal/platform/telemetry"
	"github.com/c3devs/novamuse/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the site.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting novamuse",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry()

	// 5. Session database
	db, err := database.Open(ctx, database.Config{
		Path:         cfg.Database.Path,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	}, logger)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}

	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("session database close error", slog.Any("error", closeErr))
		}
	}()

	sessionStore := sqlite.NewSessionStore(db)
	if err := healthRegistry.Register(sessionStore); err != nil {
		return fmt.Errorf("registering session store health check: %w", err)
	}

	// 6. Quote API client (ACL pattern). Pages render without it, so its
	// check only degrades readiness.
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating quote API client: %w", err)
	}

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{
		Client: httpClient,
		Logger: logger,
	})

	if err := healthRegistry.RegisterOptional(quoteClient); err != nil {
		return fmt.Errorf("registering quote client health check: %w", err)
	}

	// 7. Application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		QuoteClient: quoteClient,
		Logger:      logger,
	})

	authService := app.NewAuthService(app.AuthServiceConfig{
		Store:          sessionStore,
		Identity:       oidc.New(&cfg.Auth),
		Logger:         logger,
		SessionTTL:     cfg.Auth.SessionTTL,
		AuthRequestTTL: cfg.Auth.AuthRequestTTL,
	})

	// 8. HTTP server and routes
	cookie := middleware.SessionCookie{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		Pages:         handlers.NewPageHandler(quoteService),
		Auth: handlers.NewAuthHandler(handlers.AuthHandlerConfig{
			Auth:         authService,
			Cookie:       cookie,
			PublicOrigin: cfg.Auth.PublicOrigin,
		}),
		Sessions: authService,
		Cookie:   cookie,
		Timeout:  http.DefaultRequestTimeout,
	})

	// 9. Serve until a signal arrives or the listener fails; the janitor
	// stops with the server.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	g.Go(func() error {
		authService.RunJanitor(gctx, cfg.Database.PurgeInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
