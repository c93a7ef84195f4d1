package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-quiz/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics.
// On panic, it:
//   - Logs the error with full stack trace at ERROR level
//   - Returns 500 {"message":"Internal error","code":"INTERNAL_ERROR"}
//   - Includes traceId in the response for debugging
//
// This middleware should be applied first in the chain to catch panics
// from all subsequent handlers and middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			traceID := dto.GetTraceID(c)

			// Context logger has request_id and correlation_id
			logging.FromContextOr(c.Request.Context(), logger).ErrorContext(c.Request.Context(), "panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", traceID),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithErrorCode(c, dto.ErrorCodeInternal, dto.InternalErrorMessage)
		}()

		c.Next()
	}
}
