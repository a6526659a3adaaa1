package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/utils"
)

// TraceID returns Gin middleware that assigns every request a trace id.
// An incoming X-Trace-Id wins, then X-Request-Id, otherwise a new UUID is minted.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.Request.Header.Get(pkg.HeaderTraceId)
		if utils.IsEmpty(traceID) {
			traceID = c.Request.Header.Get(pkg.HeaderRequestId)
		}
		if utils.IsEmpty(traceID) {
			traceID = uuid.NewString()
		}
		c.Set(pkg.TraceId, traceID)
		c.Writer.Header().Set(pkg.HeaderTraceId, traceID)
		c.Next()
	}
}
