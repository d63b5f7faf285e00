package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api"
	"feedbackTracker/internal/api/middleware"
	"feedbackTracker/internal/domain"
)

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.Status, api.NewErrorResponse(string(domainErr.Code), domainErr.Message))
		return
	}

	log.Error().
		Err(err).
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Msg("unexpected error")

	// Fallback на internal error
	c.JSON(http.StatusInternalServerError,
		api.NewErrorResponse(api.ErrCodeInternalError, "internal server error"))
}

// respondInvalidRequest отвечает 400 на непарсящийся запрос
func respondInvalidRequest(c *gin.Context, message string) {
	log.Warn().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("path", c.FullPath()).
		Msg(message)

	c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.ErrCodeInvalidRequest, message))
}
