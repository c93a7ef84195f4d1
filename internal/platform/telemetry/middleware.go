package telemetry

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-quiz/internal/platform/logging"
)

// TraceIDHeader echoes the request's trace id back to the caller.
const TraceIDHeader = "X-Trace-ID"

// probePrefix marks operational endpoints that are not traced.
const probePrefix = "/-/"

// httpInstruments are the OTel HTTP server instruments.
type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments() (*httpInstruments, error) {
	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, total: total, inFlight: inFlight}, nil
}

// TracingMiddleware starts a server span per request. Probe endpoints
// under /-/ are skipped.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, probePrefix)
		}),
	)
}

// Middleware runs after TracingMiddleware. It echoes the trace id in
// X-Trace-ID, adds it to the request logger and records OTel HTTP metrics.
func Middleware(serviceName string) gin.HandlerFunc {
	instruments, err := newHTTPInstruments()
	if err != nil {
		otel.Handle(err)
	}

	service := attribute.String("service.name", serviceName)

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(TraceIDHeader, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
		}

		if instruments == nil {
			c.Next()
			return
		}

		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		instruments.inFlight.Add(ctx, 1, metric.WithAttributes(service, method, route))
		defer instruments.inFlight.Add(ctx, -1, metric.WithAttributes(service, method, route))

		start := time.Now()

		c.Next()

		attrs := metric.WithAttributes(service, method, route,
			attribute.Int("http.status_code", c.Writer.Status()))
		instruments.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		instruments.total.Add(ctx, 1, attrs)
	}
}
