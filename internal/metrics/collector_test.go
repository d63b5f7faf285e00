package metrics_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"feedbackTracker/internal/metrics"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f fakeStats) Stats() sql.DBStats {
	return f.stats
}

func TestObserveDBStats(t *testing.T) {
	metrics.ObserveDBStats(sql.DBStats{InUse: 3, Idle: 2, MaxOpenConnections: 1})

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.DBConnectionPoolActive))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.DBConnectionPoolIdle))
}

func TestCollectDBStats_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		metrics.CollectDBStats(ctx, fakeStats{stats: sql.DBStats{InUse: 1, Idle: 4}}, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.DBConnectionPoolIdle) == 4
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop after cancel")
	}
}
