package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/tracing"
)

const (
	RequestIDKey    string = "request_id"
	RequestIDHeader string = "X-Request-ID"
)

// LoggerMiddleware выдаёт каждому запросу request id (или берёт из заголовка) и логирует начало и конец
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()

		log.Info().
			Str("request_id", requestID).
			Str("trace_id", tracing.TraceID(ctx)).
			Str("layer", "middleware").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request started")

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "middleware").
			Dur("latency", time.Since(start)).
			Int("status", c.Writer.Status()).
			Msg("request completed")
	}
}

// RequestID возвращает request id текущего запроса
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
