package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/export"
	"feedbackTracker/internal/logger"
	"feedbackTracker/internal/metrics"
	"feedbackTracker/internal/storage"
)

// AddFeedback создаёт запись от имени пользователя сессии.
// Ревьювер пишет только о своей команде и, если список задан, только о назначенных участниках.
func (s *Service) AddFeedback(outerCtx context.Context, sess *domain.Session, input *domain.AddFeedbackInput) (*domain.FeedbackEntry, error) {
	const op = "service.AddFeedback"
	requestID := logger.GetRequestID(outerCtx)
	defer trackDuration("add_feedback")()

	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if input.TeamMember == "" || strings.TrimSpace(input.Text) == "" {
		return nil, domain.InvalidInput("team member and feedback are required")
	}

	status, ok := domain.ParseStatus(input.Status)
	if !ok {
		return nil, domain.InvalidInput("unknown status " + input.Status)
	}

	var entry *domain.FeedbackEntry
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		current, err := currentSession(ctx, tx, sess)
		if err != nil {
			return err
		}

		team := input.Team
		if !current.IsAdmin() {
			if team != "" && team != current.Team {
				return domain.ErrForbidden
			}
			team = current.Team
		}
		if !domain.IsKnownTeam(team) {
			return domain.ErrUnknownTeam
		}
		if !current.CanReview(input.TeamMember) {
			return domain.ErrForbidden
		}

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("reviewer", current.Username).
			Str("team", team).
			Str("team_member", input.TeamMember).
			Msg("adding feedback")

		roster, err := tx.TeamRepo().GetMembers(ctx, team)
		if err != nil {
			return err
		}
		if err := checkRoster(domain.MemberSet{input.TeamMember}, roster); err != nil {
			return err
		}

		e := &domain.FeedbackEntry{
			Reviewer:   current.Username,
			TeamMember: input.TeamMember,
			Text:       input.Text,
			Team:       team,
			Status:     status,
			Date:       s.now(),
		}
		if err := tx.FeedbackRepo().Create(ctx, e); err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.FeedbackCreatedTotal.WithLabelValues(entry.Team, string(status)).Inc()
	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("feedback_id", entry.ID).
		Msg("successfully added feedback")

	return entry, nil
}

// ListFeedback возвращает записи по фильтру. Ревьюверу видны только его собственные записи.
func (s *Service) ListFeedback(outerCtx context.Context, sess *domain.Session, filter domain.FeedbackFilter) ([]domain.FeedbackEntry, error) {
	const op = "service.ListFeedback"

	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if !sess.IsAdmin() {
		filter.Reviewer = sess.Username
	}

	var entries []domain.FeedbackEntry
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		e, err := tx.FeedbackRepo().List(ctx, filter)
		if err != nil {
			return err
		}
		entries = e
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	if entries == nil {
		entries = []domain.FeedbackEntry{}
	}

	log.Debug().
		Str("request_id", logger.GetRequestID(outerCtx)).
		Str("layer", "service").
		Str("team", filter.Team).
		Str("reviewer", filter.Reviewer).
		Int("entries_count", len(entries)).
		Msg("listed feedback")

	return entries, nil
}

// GroupFeedback группирует видимые записи по паре участник/ревьювер
func (s *Service) GroupFeedback(ctx context.Context, sess *domain.Session, filter domain.FeedbackFilter) ([]domain.FeedbackGroup, error) {
	entries, err := s.ListFeedback(ctx, sess, filter)
	if err != nil {
		return nil, err
	}
	return domain.GroupFeedback(entries), nil
}

// UpdateFeedback перезаписывает статус и текст. Администратор меняет любую запись,
// ревьювер - только свою. Дата создания не меняется.
func (s *Service) UpdateFeedback(outerCtx context.Context, sess *domain.Session, input *domain.UpdateFeedbackInput) (*domain.FeedbackEntry, error) {
	const op = "service.UpdateFeedback"
	requestID := logger.GetRequestID(outerCtx)
	defer trackDuration("update_feedback")()

	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if input.Status == "" || strings.TrimSpace(input.Text) == "" {
		return nil, domain.InvalidInput("status and feedback are required")
	}
	status, ok := domain.ParseStatus(input.Status)
	if !ok {
		return nil, domain.InvalidInput("unknown status " + input.Status)
	}

	var entry *domain.FeedbackEntry
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		current, err := currentSession(ctx, tx, sess)
		if err != nil {
			return err
		}

		e, err := tx.FeedbackRepo().GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if !current.IsAdmin() && e.Reviewer != current.Username {
			return domain.ErrForbidden
		}

		if err := tx.FeedbackRepo().Update(ctx, input.ID, status, input.Text); err != nil {
			return err
		}

		e.Status = status
		e.Text = input.Text
		entry = e
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.FeedbackUpdatedTotal.WithLabelValues(string(status)).Inc()
	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("feedback_id", entry.ID).
		Str("status", string(status)).
		Msg("successfully updated feedback")

	return entry, nil
}

// DeleteFeedback физически удаляет запись; отсутствующий id - не ошибка
func (s *Service) DeleteFeedback(outerCtx context.Context, sess *domain.Session, id int64) error {
	const op = "service.DeleteFeedback"
	requestID := logger.GetRequestID(outerCtx)

	if err := requireAdmin(sess); err != nil {
		return err
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.FeedbackRepo().Delete(ctx, id)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	metrics.FeedbackDeletedTotal.Inc()
	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("feedback_id", id).
		Msg("deleted feedback")

	return nil
}

// ExportFeedback выгружает ровно те записи, которые вернул бы ListFeedback с тем же фильтром
func (s *Service) ExportFeedback(outerCtx context.Context, sess *domain.Session, filter domain.FeedbackFilter, format domain.ExportFormat) (*domain.Export, error) {
	const op = "service.ExportFeedback"
	defer trackDuration("export_feedback")()

	if format != domain.ExportFormatXLSX && format != domain.ExportFormatCSV {
		return nil, domain.InvalidInput("format must be xlsx or csv")
	}

	entries, err := s.ListFeedback(outerCtx, sess, filter)
	if err != nil {
		return nil, err
	}

	file, err := export.Encode(entries, format)
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.FeedbackExportsTotal.WithLabelValues(string(format)).Inc()
	log.Info().
		Str("request_id", logger.GetRequestID(outerCtx)).
		Str("layer", "service").
		Str("format", string(format)).
		Int("entries_count", len(entries)).
		Msg("exported feedback")

	return file, nil
}
