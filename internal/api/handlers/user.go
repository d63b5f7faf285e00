package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api"
	"feedbackTracker/internal/api/middleware"
	"feedbackTracker/internal/domain"
)

// AddUser обрабатывает создание учётной записи администратором
func (h *Handler) AddUser(c *gin.Context) {
	var req struct {
		Username        string   `json:"username" binding:"required"`
		Password        string   `json:"password" binding:"required"`
		Role            string   `json:"role"`
		Team            string   `json:"team"`
		AssignedMembers []string `json:"assigned_members"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("username", req.Username).
		Str("role", req.Role).
		Msg("creating user")

	input := &domain.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		Role:            req.Role,
		Team:            req.Team,
		AssignedMembers: req.AssignedMembers,
	}

	user, err := h.service.CreateUser(c.Request.Context(), middleware.CurrentSession(c), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": mapUserToAPI(user)})
}

// UpdateUser меняет только переданные поля учётной записи
func (h *Handler) UpdateUser(c *gin.Context) {
	var req struct {
		Username        string    `json:"username" binding:"required"`
		Password        *string   `json:"password"`
		Team            *string   `json:"team"`
		AssignedMembers *[]string `json:"assigned_members"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	input := &domain.UpdateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		Team:            req.Team,
		AssignedMembers: req.AssignedMembers,
	}

	user, err := h.service.UpdateUser(c.Request.Context(), middleware.CurrentSession(c), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": mapUserToAPI(user)})
}

// ListUsers возвращает учётные записи, опционально по роли
func (h *Handler) ListUsers(c *gin.Context) {
	role := domain.Role(c.Query("role"))

	users, err := h.service.ListUsers(c.Request.Context(), middleware.CurrentSession(c), role)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	out := make([]api.User, len(users))
	for i := range users {
		out[i] = mapUserToAPI(&users[i])
	}

	c.JSON(http.StatusOK, gin.H{"users": out})
}

// SetMembers назначает ревьюверу участников команды
func (h *Handler) SetMembers(c *gin.Context) {
	var req struct {
		Username        string   `json:"username" binding:"required"`
		AssignedMembers []string `json:"assigned_members"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	user, err := h.service.SetAssignedMembers(c.Request.Context(), middleware.CurrentSession(c), req.Username, req.AssignedMembers)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": mapUserToAPI(user)})
}

// ClearMembers снимает ограничение по участникам (идемпотентная операция)
func (h *Handler) ClearMembers(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	if err := h.service.ClearAssignedMembers(c.Request.Context(), middleware.CurrentSession(c), req.Username); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": req.Username})
}
