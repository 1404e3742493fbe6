package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation identifier.
const RequestIDHeader = "X-Request-Id"

// RequestIDContextKey stores the request id inside gin context.
const RequestIDContextKey = "request_id"

// RequestID assigns a correlation id to every request, reusing the
// client-provided header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext extracts the request id assigned by RequestID.
func RequestIDFromContext(c *gin.Context) string {
	val, ok := c.Get(RequestIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
