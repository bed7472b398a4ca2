// Package metrics expõe os contadores Prometheus da aplicação
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DemographicsSyncRunsTotal conta rodadas do agregador por modo e resultado
	DemographicsSyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demographics_sync_runs_total",
			Help: "Total de rodadas do agregador demográfico",
		},
		[]string{"mode", "outcome"},
	)

	// DemographicsBucketsTotal conta buckets por desfecho (processed, skipped, failed)
	DemographicsBucketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demographics_buckets_total",
			Help: "Total de buckets demográficos por desfecho",
		},
		[]string{"outcome"},
	)

	// DemographicsSyncDuration mede a duração de uma rodada completa
	DemographicsSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "demographics_sync_duration_seconds",
			Help:    "Duração das rodadas do agregador demográfico em segundos",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// ProfilesIngestedTotal conta perfis ingeridos via API
	ProfilesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profiles_ingested_total",
			Help: "Total de perfis ingeridos",
		},
		[]string{"outcome"},
	)
)

// RecordSyncRun registra o resultado consolidado de uma rodada do agregador
func RecordSyncRun(mode string, success bool, duration time.Duration, processed, skipped, failed int) {
	outcome := "success"
	if !success {
		outcome = "partial_failure"
	}

	DemographicsSyncRunsTotal.WithLabelValues(mode, outcome).Inc()
	DemographicsSyncDuration.Observe(duration.Seconds())
	DemographicsBucketsTotal.WithLabelValues("processed").Add(float64(processed))
	DemographicsBucketsTotal.WithLabelValues("skipped").Add(float64(skipped))
	DemographicsBucketsTotal.WithLabelValues("failed").Add(float64(failed))
}
