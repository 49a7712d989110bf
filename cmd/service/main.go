// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"notekeeper/internal/adapters/http"
	"notekeeper/internal/adapters/http/handlers"
	"notekeeper/internal/adapters/storage/failover"
	"notekeeper/internal/adapters/storage/memory"
	"notekeeper/internal/adapters/storage/mongodb"
	"notekeeper/internal/app"
	"notekeeper/internal/platform/config"
	"notekeeper/internal/platform/logging"
	"notekeeper/internal/platform/telemetry"
	"notekeeper/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
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
	ctx := context.Background()

	// A .env file is a convenience for local development only.
	_ = godotenv.Load()

	// 1. Determine profile from environment
	profile := resolveProfile()

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
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

	logger.Info("starting service",
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
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Connect to MongoDB. A failed connection is not fatal: the
	// service starts on the in-memory store and keeps serving.
	itemRepo, feedbackRepo, mongoClient := buildStores(ctx, cfg, logger)
	if mongoClient != nil {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("mongodb disconnect error", slog.Any("error", err))
			}
		}()

		if err := healthRegistry.Register(mongoClient); err != nil {
			return fmt.Errorf("registering mongodb health check: %w", err)
		}
	}

	// 7. Create application services
	itemService := app.NewItemService(app.ItemServiceConfig{
		Repo:   itemRepo,
		Logger: logger,
	})
	feedbackService := app.NewFeedbackService(app.FeedbackServiceConfig{
		Repo:   feedbackRepo,
		Logger: logger,
	})

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	// 9. Create HTTP server and routes
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:    logger,
		AppConfig: &cfg.App,
		Pages:     handlers.NewPageHandler(itemService, feedbackService),
		Items:     handlers.NewItemHandler(itemService),
		Feedback:  handlers.NewFeedbackHandler(feedbackService),
		Clock:     handlers.NewClockHandler(time.Now(), nil),
		Health:    handlers.NewHealthHandler(healthRegistry, buildInfo),
		Timeout:   http.DefaultRequestTimeout,
	})

	// 10. Start server (non-blocking)
	serverErr := server.Start()

	// 11. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// buildStores wires the repositories. With a configured and reachable
// MongoDB the stores are the mongo collections wrapped in the failover
// decorator; otherwise everything runs on memory and a warning says so.
func buildStores(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (ports.ItemRepository, ports.FeedbackRepository, *mongodb.Client) {
	memItems := memory.NewItemStore()
	memFeedback := memory.NewFeedbackStore()

	if cfg.Mongo.URI == "" {
		logger.Warn("no MongoDB URI configured, using in-memory store")

		return failover.NewItemRepository(nil, memItems, logger),
			failover.NewFeedbackRepository(nil, memFeedback, logger),
			nil
	}

	client, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		logger.Warn("MongoDB unreachable at startup, falling back to in-memory store",
			slog.Any("error", err),
		)

		return failover.NewItemRepository(nil, memItems, logger),
			failover.NewFeedbackRepository(nil, memFeedback, logger),
			nil
	}

	logger.Info("connected to MongoDB", slog.String("database", cfg.Mongo.Database))

	return failover.NewItemRepository(client.Items(), memItems, logger),
		failover.NewFeedbackRepository(client.Feedback(), memFeedback, logger),
		client
}

// resolveProfile picks the configuration profile. APP_ENVIRONMENT wins;
// NODE_ENV is honored for deployments that still set it.
func resolveProfile() string {
	if profile := os.Getenv("APP_ENVIRONMENT"); profile != "" {
		return profile
	}

	switch os.Getenv("NODE_ENV") {
	case "production":
		return "prod"
	case "development":
		return "dev"
	case "test":
		return "test"
	}

	return "local"
}

// waitForShutdown blocks until a shutdown signal arrives or the server
// fails, then drains in-flight requests within the timeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
