// Package main is the entry point for the quote quiz service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quote-quiz/internal/adapters/http"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/memory"
	"github.com/jsamuelsen/quote-quiz/internal/app"
	"github.com/jsamuelsen/quote-quiz/internal/platform/clock"
	"github.com/jsamuelsen/quote-quiz/internal/platform/config"
	"github.com/jsamuelsen/quote-quiz/internal/platform/logging"
	"github.com/jsamuelsen/quote-quiz/internal/platform/metrics"
	"github.com/jsamuelsen/quote-quiz/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-quiz/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
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

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("timezone", cfg.Quiz.Timezone),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Build the in-memory quiz state
	clk, err := clock.New(cfg.Quiz.Timezone)
	if err != nil {
		return fmt.Errorf("creating clock: %w", err)
	}

	catalog, err := memory.NewQuoteCatalog(cfg.Quiz.FeaturedQuoteID, cfg.Quiz.DomainQuotes()...)
	if err != nil {
		return fmt.Errorf("creating quote catalog: %w", err)
	}

	locks := memory.NewLockRegistry()
	quizMetrics := metrics.NewQuiz(prometheus.DefaultRegisterer)

	// 6. Register health checks
	healthRegistry := ports.NewHealthRegistry(ports.WithCheckTimeout(cfg.Server.RequestTimeout))
	if err := healthRegistry.Register(catalog); err != nil {
		return fmt.Errorf("registering catalog health check: %w", err)
	}

	// 7. Create the quiz service (application layer)
	quizService := app.NewQuizService(app.QuizServiceConfig{
		Quotes:      catalog,
		Submissions: memory.NewSubmissionStore(memory.SubmissionStoreConfig{Now: clk.Now}),
		Locks:       locks,
		Clock:       clk,
		Metrics:     quizMetrics,
		Logger:      logger,
	})

	// 8. Create handlers, server and routes
	healthHandler := handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime))
	quizHandler := handlers.NewQuizHandler(quizService)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewRouterConfig(logger, cfg, healthHandler, quizHandler))

	var sweeper *app.LockSweeper
	if cfg.Quiz.LockEviction.Enabled {
		sweeper, err = app.NewLockSweeper(app.LockSweeperConfig{
			Locks:    locks,
			Clock:    clk,
			Schedule: cfg.Quiz.LockEviction.Schedule,
			Location: clk.Location(),
			Metrics:  quizMetrics,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("creating lock sweeper: %w", err)
		}
	}

	// 9. Run the server and the lock sweeper until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	if sweeper != nil {
		g.Go(func() error {
			return sweeper.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("service stopped: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
