package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api"
	"feedbackTracker/internal/api/middleware"
)

// Health отвечает 200, если база доступна
func (h *Handler) Health(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Ping(c.Request.Context()); err != nil {
			log.Error().
				Err(err).
				Str("request_id", middleware.RequestID(c)).
				Str("layer", "handler").
				Msg("database ping failed")
			c.JSON(http.StatusServiceUnavailable,
				api.NewErrorResponse(api.ErrCodeInternalError, "database unavailable"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
