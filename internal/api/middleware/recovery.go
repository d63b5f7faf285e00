package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api"
)

// RecoveryMiddleware превращает панику в 500 и отправляет её в Sentry
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetTag("request_id", RequestID(c))
		hub.Scope().SetRequest(c.Request)
		hub.Recover(recovered)

		log.Error().
			Str("request_id", RequestID(c)).
			Str("layer", "middleware").
			Str("panic", fmt.Sprint(recovered)).
			Msg("panic recovered in HTTP request")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			api.NewErrorResponse(api.ErrCodeInternalError, "internal server error"))
	})
}
