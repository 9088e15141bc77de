package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestID"

// RequestIDHeader is the header the request id is propagated on.
const RequestIDHeader = "X-Request-Id"

// RequestID attaches a request id to every request, honoring one passed
// in by an upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext returns the request id set by RequestID, or ""
// when the middleware did not run.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
