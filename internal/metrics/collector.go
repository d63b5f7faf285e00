package metrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// StatsSource - источник статистики пула соединений (*sql.DB)
type StatsSource interface {
	Stats() sql.DBStats
}

// CollectDBStats обновляет gauge пула соединений до отмены ctx
func CollectDBStats(ctx context.Context, src StatsSource, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ObserveDBStats(src.Stats())
		case <-ctx.Done():
			log.Info().Msg("stopping db stats collector")
			return
		}
	}
}

// ObserveDBStats записывает один снимок статистики
func ObserveDBStats(stats sql.DBStats) {
	DBConnectionPoolActive.Set(float64(stats.InUse))
	DBConnectionPoolIdle.Set(float64(stats.Idle))

	log.Debug().
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int("max_open", stats.MaxOpenConnections).
		Msg("updated db connection pool metrics")
}
