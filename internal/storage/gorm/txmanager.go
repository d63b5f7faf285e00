package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"feedbackTracker/internal/metrics"
	"feedbackTracker/internal/storage"
)

// TxManager реализует storage.TxManager для GORM
type TxManager struct {
	db *gorm.DB
}

var _ storage.TxManager = (*TxManager)(nil)

// NewTxManager создаёт новый менеджер транзакций для GORM
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Do выполняет функцию внутри транзакции с автоматическим commit/rollback
func (tm *TxManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &transaction{db: tx})
	})

	if err != nil {
		metrics.DBTransactionTotal.WithLabelValues("error").Inc()
	} else {
		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
	}
	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())

	return err
}

// Ping проверяет доступность базы
func (tm *TxManager) Ping(ctx context.Context) error {
	sqlDB, err := tm.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// RunMetricsReconciler периодически пересчитывает количество записей по командам и статусам
func (tm *TxManager) RunMetricsReconciler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := tm.reconcileFeedbackCounts(ctx); err != nil {
				log.Error().Err(err).Msg("failed to query feedback counts")
			}
		case <-ctx.Done():
			log.Info().Msg("stopping metrics reconciliation goroutine")
			return
		}
	}
}

func (tm *TxManager) reconcileFeedbackCounts(ctx context.Context) error {
	type countRow struct {
		Team   string
		Status string
		Count  int
	}

	var rows []countRow
	err := tm.db.WithContext(ctx).
		Model(&FeedbackEntry{}).
		Select("team, status, COUNT(*) AS count").
		Group("team, status").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	metrics.FeedbackEntriesCount.Reset()
	for _, row := range rows {
		metrics.FeedbackEntriesCount.WithLabelValues(row.Team, row.Status).Set(float64(row.Count))
	}

	log.Debug().Int("groups", len(rows)).Msg("updated feedback count metrics")
	return nil
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

// FeedbackRepo возвращает репозиторий записей в рамках транзакции
func (t *transaction) FeedbackRepo() storage.FeedbackRepository {
	return NewFeedbackRepository(t.db)
}

// UserRepo возвращает репозиторий пользователей в рамках транзакции
func (t *transaction) UserRepo() storage.UserRepository {
	return NewUserRepository(t.db)
}

// TeamRepo возвращает репозиторий состава команд в рамках транзакции
func (t *transaction) TeamRepo() storage.TeamRepository {
	return NewTeamRepository(t.db)
}
