package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
	"github.com/jsamuelsen/quote-quiz/internal/platform/logging"
)

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var (
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		validation *domain.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, notFound.Error())

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, "not found")

	case errors.As(err, &conflict):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, conflict.Reason)

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, "conflict")

	case errors.As(err, &validation):
		issues := make([]Issue, 0, len(validation.FieldIssues()))
		for _, fi := range validation.FieldIssues() {
			issues = append(issues, Issue{Path: fi.Field, Message: fi.Message})
		}

		return http.StatusBadRequest, NewValidationErrorResponse("request validation failed", issues)

	case domain.IsValidation(err):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, "request validation failed")

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, InternalErrorMessage)
	}
}

// GetTraceID returns the current span's trace ID, or "" without a span.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError maps err to a response and writes it. Internal errors are
// logged with request context; clients only see the generic message.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
			slog.String("trace_id", errResp.TraceID),
		)
	}

	c.JSON(status, errResp)
}

// HandleBindError writes a 400 for a BindAndValidate failure: field issues
// for tag violations, BAD_REQUEST for an unreadable body.
func HandleBindError(c *gin.Context, err error) {
	if IsValidationError(err) {
		c.JSON(http.StatusBadRequest,
			NewValidationErrorResponse("request validation failed", ValidationIssues(err)).WithTraceID(GetTraceID(c)))

		return
	}

	c.JSON(http.StatusBadRequest,
		NewErrorResponse(ErrorCodeBadRequest, "invalid request body").WithTraceID(GetTraceID(c)))
}

// AbortWithError aborts the request chain and writes an error response.
// Use this in middleware when you want to stop further processing.
func AbortWithError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(status, errResp)
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))

	c.AbortWithStatusJSON(HTTPStatusFromCode(code), errResp)
}
