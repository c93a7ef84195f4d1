package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-quiz/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-quiz/internal/domain"
	"github.com/jsamuelsen/quote-quiz/internal/platform/logging"
)

const (
	// DefaultDeviceHeader carries the caller's self-reported device id.
	DefaultDeviceHeader = "X-Device-Id"

	// ContextKeyDeviceID is the gin.Context key for the device id.
	ContextKeyDeviceID = "device_id"

	// maxDeviceIDLength bounds the header value kept per request.
	maxDeviceIDLength = 128
)

// RequireDevice returns middleware that rejects requests without a device
// id header with 400. The id is not authenticated.
func RequireDevice(header string) gin.HandlerFunc {
	header = headerOrDefault(header)

	return func(c *gin.Context) {
		id, ok := readDevice(c, header)
		if !ok {
			msg := "this field is required"
			if id != "" {
				msg = "must be at most 128 characters"
			}

			dto.AbortWithError(c, domain.NewValidationError(header, msg))

			return
		}

		storeDevice(c, id)
		c.Next()
	}
}

// OptionalDevice returns middleware that records the device id when the
// header is present and valid, and passes the request through otherwise.
func OptionalDevice(header string) gin.HandlerFunc {
	header = headerOrDefault(header)

	return func(c *gin.Context) {
		if id, ok := readDevice(c, header); ok {
			storeDevice(c, id)
		}

		c.Next()
	}
}

// GetDeviceID returns the device id stored by RequireDevice or
// OptionalDevice, or "" when the caller sent none.
func GetDeviceID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyDeviceID)
}

func headerOrDefault(header string) string {
	if header == "" {
		return DefaultDeviceHeader
	}

	return header
}

// readDevice returns the trimmed header value and whether it is usable.
func readDevice(c *gin.Context, header string) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(header))
	if id == "" || len(id) > maxDeviceIDLength {
		return id, false
	}

	return id, true
}

func storeDevice(c *gin.Context, id string) {
	c.Set(ContextKeyDeviceID, id)

	ctx := ContextWithDeviceID(c.Request.Context(), id)
	ctx = logging.WithDeviceID(ctx, id)
	c.Request = c.Request.WithContext(ctx)
}
