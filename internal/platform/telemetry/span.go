package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/quote-quiz"

// Span attribute keys for quiz operations.
const (
	AttrQuoteID      = attribute.Key("quiz.quote_id")
	AttrSubmissionID = attribute.Key("quiz.submission_id")
	AttrDay          = attribute.Key("quiz.day")
	AttrOutcome      = attribute.Key("quiz.outcome")
)

// StartSpan starts a child span on the global tracer. With telemetry
// disabled the global provider is a no-op and so is the span.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
