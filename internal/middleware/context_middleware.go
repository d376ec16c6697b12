package middleware

import (
	"time"

	"go-emprec/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with the request id into the request
// context so services can log without knowing about gin. It also writes
// one access line per request.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := c.Request.Context()
		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = uuid.New().String()
			ctx = contextutil.WithRequestID(ctx, rid)
			c.Header(HeaderRequestID, rid)
		}

		reqLogger := logger.With(zap.String("request_id", rid))
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
