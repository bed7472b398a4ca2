package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelytics/insights-api/internal/config"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/scheduler"
	"github.com/swipelytics/insights-api/internal/usecases/demographics"
	"github.com/swipelytics/insights-api/pkg/middleware"
)

// stubAggregator devolve um resumo fixo e registra os buckets recebidos
type stubAggregator struct {
	summary     *demographics.RunSummary
	seenBuckets []domain.DemographicBucket
}

func (s *stubAggregator) Run(_ context.Context, buckets []domain.DemographicBucket) *demographics.RunSummary {
	s.seenBuckets = buckets
	return s.summary
}

func adminRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	claims := &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin, UserActive: true}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func newCronServices(aggregator demographics.Aggregator) CronJobServices {
	cfg := &config.Config{}
	cfg.DemographicsSync.CronSchedule = "0 5 * * *"

	return CronJobServices{
		DemographicsSyncService: scheduler.NewDemographicsSyncService(aggregator, cfg),
	}
}

func TestRunDemographicsSync(t *testing.T) {
	aggregator := &stubAggregator{
		summary: &demographics.RunSummary{ProcessedCount: 60, SkippedCount: 21},
	}

	handler := RunDemographicsSync(newCronServices(aggregator))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, adminRequest(http.MethodPost, "/v1/cron/demographics/run"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response RunDemographicsSyncResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 60, response.ProcessedCount)
	assert.Equal(t, 21, response.SkippedCount)
	assert.Equal(t, 0, response.FailedCount)

	// Sem a query string, a rodada usa os 81 buckets do modo completo
	assert.Len(t, aggregator.seenBuckets, 81)
}

func TestRunDemographicsSync_SimplifiedMode(t *testing.T) {
	aggregator := &stubAggregator{
		summary: &demographics.RunSummary{ProcessedCount: 4},
	}

	handler := RunDemographicsSync(newCronServices(aggregator))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, adminRequest(http.MethodPost, "/v1/cron/demographics/run?simplified=true"))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, aggregator.seenBuckets, 4)
}

func TestRunDemographicsSync_RequiresAdmin(t *testing.T) {
	aggregator := &stubAggregator{summary: &demographics.RunSummary{}}

	handler := RunDemographicsSync(newCronServices(aggregator))

	// Sem claims no contexto: requisição rejeitada antes de tocar o agregador
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/cron/demographics/run", nil))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Nil(t, aggregator.seenBuckets)
}
