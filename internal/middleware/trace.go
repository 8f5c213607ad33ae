package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Trace assigns every request a trace id, echoed in the response header
// and available to handlers for error envelopes.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}
