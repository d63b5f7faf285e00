package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api/middleware"
)

// Login проверяет учётные данные и открывает сессию
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	if err := middleware.StartSession(c, h.store, sess); err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("username", sess.Username).
		Msg("session started")

	c.JSON(http.StatusOK, gin.H{"user": mapSessionToAPI(sess)})
}

// Logout закрывает сессию
func (h *Handler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := middleware.EndSession(c, h.store); err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("username", sess.Username).
		Msg("session ended")

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// Me возвращает пользователя текущей сессии
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": mapSessionToAPI(middleware.CurrentSession(c))})
}
