package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/metrics"
	"feedbackTracker/internal/storage"
)

// Service реализует domain.FeedbackService используя storage.TxManager
type Service struct {
	txmgr storage.TxManager
	now   func() time.Time
}

// Проверка что Service реализует интерфейс domain.FeedbackService
var _ domain.FeedbackService = (*Service)(nil)

// Option настраивает Service
type Option func(*Service)

// WithClock подменяет источник текущего времени (для даты создания записей)
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New создаёт новый Service с TxManager
func New(txmgr storage.TxManager, opts ...Option) *Service {
	s := &Service{
		txmgr: txmgr,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	var domainErr *domain.Error
	switch {
	case errors.As(err, &domainErr):
		metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()
		return err
	case errors.Is(err, storage.ErrNotFound):
		metrics.DomainErrorsTotal.WithLabelValues(string(domain.ErrorCodeNotFound)).Inc()
		return domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		// Единственная уникальность, которую можно нарушить через API - username
		metrics.DomainErrorsTotal.WithLabelValues(string(domain.ErrorCodeUsernameExists)).Inc()
		return domain.ErrUsernameExists
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().Err(err).Str("operation", op).Msg("operation failed")
		sentry.CaptureException(fmt.Errorf("%s: %w", op, err))
		metrics.DomainErrorsTotal.WithLabelValues(string(domain.ErrorCodeInternalError)).Inc()
		return domain.ErrInternal
	}
}

// trackDuration пишет длительность операции в гистограмму
func trackDuration(op string) func() {
	start := time.Now()
	return func() {
		metrics.ServiceOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

func requireSession(sess *domain.Session) error {
	if sess == nil || sess.Username == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

func requireAdmin(sess *domain.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// currentSession перечитывает пользователя сессии в транзакции.
// Команда и назначенные участники могут измениться после входа, проверки доступа идут по текущей записи.
func currentSession(ctx context.Context, tx storage.Tx, sess *domain.Session) (*domain.Session, error) {
	user, err := tx.UserRepo().GetByUsername(ctx, sess.Username)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return domain.NewSession(user), nil
}

// checkRoster проверяет, что все участники входят в состав команды
func checkRoster(members domain.MemberSet, roster []string) error {
	known := domain.MemberSet(roster)
	for _, m := range members {
		if !known.Contains(m) {
			return domain.InvalidInput("team member " + m + " does not belong to the team")
		}
	}
	return nil
}
