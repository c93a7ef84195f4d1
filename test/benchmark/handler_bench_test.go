package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/quote-quiz/internal/adapters/http"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-quiz/internal/adapters/memory"
	"github.com/jsamuelsen/quote-quiz/internal/app"
	"github.com/jsamuelsen/quote-quiz/internal/domain"
	"github.com/jsamuelsen/quote-quiz/internal/platform/clock"
	"github.com/jsamuelsen/quote-quiz/internal/ports"
)

const benchQuoteID = "2025-09-08"

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2025-09-08T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo)
}

// setupQuizRouter wires the full router over in-memory adapters.
func setupQuizRouter(b *testing.B) *gin.Engine {
	b.Helper()

	catalog, err := memory.NewQuoteCatalog(benchQuoteID, domain.Quote{
		ID:       benchQuoteID,
		Template: "Stay {A}, stay {B}.",
		Author:   "Steve Jobs",
		AnswerA:  "hungry",
		AnswerB:  "foolish",
	})
	if err != nil {
		b.Fatal(err)
	}

	clk := clock.NewManual(time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := app.NewQuizService(app.QuizServiceConfig{
		Quotes:      catalog,
		Submissions: memory.NewSubmissionStore(memory.SubmissionStoreConfig{Now: clk.Now}),
		Locks:       memory.NewLockRegistry(),
		Clock:       clk,
		Logger:      logger,
	})

	router := gin.New()
	httpadapter.SetupRouter(router, httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "quote-quiz",
		DeviceHeader:  "X-Device-Id",
		HealthHandler: setupHealthHandler(),
		QuizHandler:   handlers.NewQuizHandler(service),
	})

	return router
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithChecks measures readiness with registered checks.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	registry := ports.NewHealthRegistry()
	for i := range 3 {
		_ = registry.Register(&simpleHealthChecker{name: fmt.Sprintf("checker-%d", i)})
	}

	handler := handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2025-09-08T00:00:00Z"))
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkToday measures GET /quotes/today for an identified device.
func BenchmarkToday(b *testing.B) {
	router := setupQuizRouter(b)

	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodGet, "/quotes/today", http.NoBody)
		req.Header.Set("X-Device-Id", "bench")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkSubmit measures the submit path with a fresh device per request.
func BenchmarkSubmit(b *testing.B) {
	router := setupQuizRouter(b)
	body := []byte(`{"fillA":"hungry","fillB":"foolish"}`)

	b.ReportAllocs()

	i := 0
	for b.Loop() {
		req := httptest.NewRequest(http.MethodPost, "/quotes/"+benchQuoteID+"/submissions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Device-Id", fmt.Sprintf("bench-%d", i))
		i++

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// BenchmarkRanking measures ranking over a populated quote.
func BenchmarkRanking(b *testing.B) {
	router := setupQuizRouter(b)
	body := []byte(`{"fillA":"a","fillB":"b"}`)

	for i := range 500 {
		req := httptest.NewRequest(http.MethodPost, "/quotes/"+benchQuoteID+"/submissions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Device-Id", fmt.Sprintf("seed-%d", i))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodGet, "/quotes/"+benchQuoteID+"/ranking", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// simpleHealthChecker is a minimal health checker for benchmarking.
type simpleHealthChecker struct {
	name string
}

func (s *simpleHealthChecker) Name() string {
	return s.name
}

func (s *simpleHealthChecker) Check(_ context.Context) error {
	return nil
}
