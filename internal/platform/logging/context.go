package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// SetDefault sets the logger returned when a context carries none, and
// installs it as the slog default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or the package default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, nil)
}

// FromContextOr returns the request logger, else fallback, else the
// package default. ctx may be nil.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	if fallback != nil {
		return fallback
	}

	return defaultLogger
}

// WithRequestID tags the context logger with request_id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, "request_id", id)
}

// WithCorrelationID tags the context logger with correlation_id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, "correlation_id", id)
}

// WithTraceID tags the context logger with trace_id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, "trace_id", id)
}

// WithDeviceID tags the context logger with the caller's device_id.
func WithDeviceID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, "device_id", id)
}

func withAttr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}
