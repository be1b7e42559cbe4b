package middleware

import (
	"ForumFlare/internal/pkg/logger"
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceMiddleware 透传或生成 trace id
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if traceID == "" || len(traceID) > 64 {
			traceID = uuid.NewString()
		}

		c.Set(logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.TraceIDKey, traceID))
		c.Header(traceHeader, traceID)
		c.Next()
	}
}
