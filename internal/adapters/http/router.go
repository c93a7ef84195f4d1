package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-quiz/internal/platform/config"
	"github.com/jsamuelsen/quote-quiz/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names spans and HTTP metrics.
	ServiceName string

	// DeviceHeader names the header carrying the device id.
	// Empty means middleware.DefaultDeviceHeader.
	DeviceHeader string

	// HealthHandler serves /health and the /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// QuizHandler serves the quiz API. Optional.
	QuizHandler *handlers.QuizHandler

	// Timeout is the per-request deadline for quiz routes. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - generate/extract correlation ID
//  4. OpenTelemetry - spans, HTTP metrics and the X-Trace-ID header
//  5. Logging - request logging (skips /-/ and /health)
//
// Quiz routes additionally get the request timeout and device identity.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger, "/health"),
	)

	// Probes bypass the request timeout.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.QuizHandler != nil {
		api := engine.Group("")
		api.Use(middleware.Timeout(cfg.Timeout))

		cfg.QuizHandler.RegisterQuizRoutes(api, cfg.DeviceHeader)
	}
}

// NewRouterConfig builds a RouterConfig from application configuration.
func NewRouterConfig(
	logger *slog.Logger,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	quizHandler *handlers.QuizHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		DeviceHeader:  cfg.Quiz.DeviceHeader,
		HealthHandler: healthHandler,
		QuizHandler:   quizHandler,
		Timeout:       cfg.Server.RequestTimeout,
	}
}
