package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedbackTracker/internal/api/middleware"
)

// ListTeams возвращает команды, доступные пользователю
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeamMembers возвращает участников команды для формы добавления отзыва
func (h *Handler) GetTeamMembers(c *gin.Context) {
	team := c.Query("team")

	members, err := h.service.GetTeamMembers(c.Request.Context(), middleware.CurrentSession(c), team)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team":    team,
		"members": members,
	})
}
