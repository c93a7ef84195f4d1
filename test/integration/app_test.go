//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quote-quiz/internal/adapters/http"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/memory"
	"github.com/jsamuelsen/quote-quiz/internal/app"
	"github.com/jsamuelsen/quote-quiz/internal/platform/clock"
	"github.com/jsamuelsen/quote-quiz/internal/platform/config"
	"github.com/jsamuelsen/quote-quiz/internal/platform/metrics"
	"github.com/jsamuelsen/quote-quiz/internal/ports"
)

// quizApp is the service wired as in cmd/service, served by httptest with
// a manual clock.
type quizApp struct {
	server *httptest.Server
	clock  *clock.Manual
	locks  *memory.LockRegistry
}

// startQuizApp builds a fresh service from the default configuration.
// newID, when non-nil, replaces the UUIDv7 submission id generator.
func startQuizApp(newID memory.IDFunc) (*quizApp, error) {
	cfg, err := config.Load("test")
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	loc, err := time.LoadLocation(cfg.Quiz.Timezone)
	if err != nil {
		return nil, err
	}

	clk := clock.NewManual(time.Date(2025, 9, 8, 9, 0, 0, 0, loc))

	catalog, err := memory.NewQuoteCatalog(cfg.Quiz.FeaturedQuoteID, cfg.Quiz.DomainQuotes()...)
	if err != nil {
		return nil, err
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(catalog); err != nil {
		return nil, err
	}

	locks := memory.NewLockRegistry()

	service := app.NewQuizService(app.QuizServiceConfig{
		Quotes:      catalog,
		Submissions: memory.NewSubmissionStore(memory.SubmissionStoreConfig{NewID: newID, Now: clk.Now}),
		Locks:       locks,
		Clock:       clk,
		Metrics:     metrics.NewQuiz(prometheus.NewRegistry()),
		Logger:      logger,
	})

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewRouterConfig(
		logger,
		cfg,
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "test", "test")),
		handlers.NewQuizHandler(service),
	))

	return &quizApp{
		server: httptest.NewServer(engine),
		clock:  clk,
		locks:  locks,
	}, nil
}

func (a *quizApp) close() {
	a.server.Close()
}
