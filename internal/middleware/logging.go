package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elitebooker/elitebooker-backend/pkg/logger"
)

// ContextKeyRequestID is the gin context key holding the request ID
const ContextKeyRequestID = "request_id"

// RequestID assigns every request an ID, honouring one supplied by the
// proxy, and echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs one structured line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if requestID := c.GetString(ContextKeyRequestID); requestID != "" {
			fields = append(fields, zap.String(ContextKeyRequestID, requestID))
		}
		if principal, ok := CurrentPrincipal(c); ok {
			fields = append(fields, zap.String("admin_id", principal.AdminID))
			if principal.TenantID != "" {
				fields = append(fields, zap.String("tenant_id", principal.TenantID))
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			logger.Error("request completed", fields...)
		} else {
			logger.Info("request completed", fields...)
		}
	}
}
