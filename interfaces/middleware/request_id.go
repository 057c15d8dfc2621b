package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bunny-video/infrastructure/logger"
)

const (
	RequestIDKey    = "requestId"
	RequestIDHeader = "X-Request-ID"
)

// RequestID reuses an inbound X-Request-ID or generates one, and logs each finished request.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDKey, id)
		ctx.Header(RequestIDHeader, id)

		ctx.Next()

		logger.GetLogger().WithFields(map[string]interface{}{
			RequestIDKey: id,
			"method":     ctx.Request.Method,
			"path":       ctx.FullPath(),
			"status":     ctx.Writer.Status(),
		}).Debug("Request handled")
	}
}
