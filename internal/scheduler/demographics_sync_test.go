package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/usecases/demographics"
)

// fakeAggregator registra os buckets recebidos e devolve um resumo fixo
type fakeAggregator struct {
	summary     *demographics.RunSummary
	seenBuckets []domain.DemographicBucket
}

func (f *fakeAggregator) Run(_ context.Context, buckets []domain.DemographicBucket) *demographics.RunSummary {
	f.seenBuckets = buckets
	return f.summary
}

func newTestSyncService(aggregator demographics.Aggregator) *DemographicsSyncService {
	return &DemographicsSyncService{
		aggregator: aggregator,
		config: DemographicsSyncConfig{
			CronSchedule: "0 5 * * *",
			Enabled:      true,
		},
	}
}

func TestDemographicsSyncService_RunSync_FullMode(t *testing.T) {
	aggregator := &fakeAggregator{
		summary: &demographics.RunSummary{ProcessedCount: 70, SkippedCount: 11},
	}

	service := newTestSyncService(aggregator)

	summary, err := service.RunSync(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 70, summary.ProcessedCount)
	assert.Len(t, aggregator.seenBuckets, 81)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 70, status["last_processed_count"])
	assert.Equal(t, 11, status["last_skipped_count"])
	assert.Equal(t, 0, status["last_failed_count"])
}

func TestDemographicsSyncService_RunSync_SimplifiedMode(t *testing.T) {
	aggregator := &fakeAggregator{
		summary: &demographics.RunSummary{ProcessedCount: 4},
	}

	service := newTestSyncService(aggregator)

	_, err := service.RunSync(context.Background(), true)
	require.NoError(t, err)

	// O modo simplificado processa apenas os 4 buckets coringa
	assert.Len(t, aggregator.seenBuckets, 4)
}

func TestDemographicsSyncService_RunSync_AlreadyRunning(t *testing.T) {
	aggregator := &fakeAggregator{
		summary: &demographics.RunSummary{},
	}

	service := newTestSyncService(aggregator)

	// Simular uma rodada em andamento
	service.syncMutex.Lock()
	service.syncRunning = true
	service.lastSyncStartedAt = time.Now()
	service.syncMutex.Unlock()

	_, err := service.RunSync(context.Background(), false)
	assert.True(t, errors.Is(err, ErrSyncAlreadyRunning))

	// O agregador não foi acionado
	assert.Nil(t, aggregator.seenBuckets)
}
