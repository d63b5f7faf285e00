package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api/middleware"
	"feedbackTracker/internal/domain"
)

// AddFeedback обрабатывает создание записи обратной связи
func (h *Handler) AddFeedback(c *gin.Context) {
	var req struct {
		TeamMember string `json:"team_member" binding:"required"`
		Feedback   string `json:"feedback" binding:"required"`
		Team       string `json:"team"`
		Status     string `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("team", req.Team).
		Str("team_member", req.TeamMember).
		Msg("adding feedback")

	input := &domain.AddFeedbackInput{
		TeamMember: req.TeamMember,
		Text:       req.Feedback,
		Team:       req.Team,
		Status:     req.Status,
	}

	entry, err := h.service.AddFeedback(c.Request.Context(), middleware.CurrentSession(c), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": mapFeedbackToAPI(entry)})
}

// ListFeedback возвращает записи по фильтру из query параметров
func (h *Handler) ListFeedback(c *gin.Context) {
	entries, err := h.service.ListFeedback(c.Request.Context(), middleware.CurrentSession(c), feedbackFilter(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": mapFeedbackListToAPI(entries)})
}

// GroupFeedback возвращает количество записей по парам участник/ревьювер
func (h *Handler) GroupFeedback(c *gin.Context) {
	groups, err := h.service.GroupFeedback(c.Request.Context(), middleware.CurrentSession(c), feedbackFilter(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": mapGroupsToAPI(groups)})
}

// UpdateFeedback обрабатывает изменение статуса и текста записи
func (h *Handler) UpdateFeedback(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id" binding:"required"`
		Status   string `json:"status" binding:"required"`
		Feedback string `json:"feedback" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Int64("feedback_id", req.ID).
		Str("status", req.Status).
		Msg("updating feedback")

	input := &domain.UpdateFeedbackInput{
		ID:     req.ID,
		Status: req.Status,
		Text:   req.Feedback,
	}

	entry, err := h.service.UpdateFeedback(c.Request.Context(), middleware.CurrentSession(c), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": mapFeedbackToAPI(entry)})
}

// DeleteFeedback удаляет запись (идемпотентная операция)
func (h *Handler) DeleteFeedback(c *gin.Context) {
	var req struct {
		ID int64 `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	if err := h.service.DeleteFeedback(c.Request.Context(), middleware.CurrentSession(c), req.ID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}

// ExportFeedback отдаёт отфильтрованные записи файлом xlsx или csv
func (h *Handler) ExportFeedback(c *gin.Context) {
	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportFormatXLSX)))

	file, err := h.service.ExportFeedback(c.Request.Context(), middleware.CurrentSession(c), feedbackFilter(c), format)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("file_name", file.FileName).
		Int("bytes", len(file.Data)).
		Msg("sending export")

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func feedbackFilter(c *gin.Context) domain.FeedbackFilter {
	return domain.FeedbackFilter{
		Team:       c.Query("team"),
		Reviewer:   c.Query("reviewer"),
		TeamMember: c.Query("team_member"),
	}
}
