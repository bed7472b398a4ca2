// Package scheduler contém os serviços de agendamento dos trabalhos em lote
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/swipelytics/insights-api/internal/config"
	"github.com/swipelytics/insights-api/internal/usecases/demographics"
	"github.com/swipelytics/insights-api/pkg/metrics"
)

// ErrSyncAlreadyRunning indica que uma rodada do agregador já está em execução
var ErrSyncAlreadyRunning = errors.New("sincronização demográfica já em execução")

type DemographicsSyncConfig struct {
	CronSchedule string
	Enabled      bool
	Simplified   bool
}

type DemographicsSyncService struct {
	scheduler           *gocron.Scheduler
	aggregator          demographics.Aggregator
	config              DemographicsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *demographics.RunSummary
}

func NewDemographicsSyncService(
	aggregator demographics.Aggregator,
	cfg *config.Config,
) *DemographicsSyncService {
	syncConfig := DemographicsSyncConfig{
		CronSchedule: cfg.DemographicsSync.CronSchedule, // Default: 5h da manhã todos os dias
		Enabled:      cfg.DemographicsSync.Enabled,      // Default: desabilitado
		Simplified:   cfg.DemographicsSync.Simplified,   // Default: modo completo
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"simplified":    syncConfig.Simplified,
	}).Info("Configuração do agendador de demografia carregada")

	return &DemographicsSyncService{
		scheduler:  scheduler,
		aggregator: aggregator,
		config:     syncConfig,
	}
}

func (s *DemographicsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de agregação demográfica desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de agregação demográfica")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunSync(context.Background(), s.config.Simplified); err != nil {
			logrus.WithError(err).Error("Erro na rodada agendada do agregador demográfico")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar agregação demográfica: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de agregação demográfica")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync executa uma rodada completa do agregador. Apenas uma rodada por
// vez: chamadas concorrentes recebem ErrSyncAlreadyRunning.
func (s *DemographicsSyncService) RunSync(ctx context.Context, simplified bool) (*demographics.RunSummary, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização demográfica já está em execução, ignorando solicitação")
		return nil, ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	mode := "full"
	buckets := demographics.FullBuckets()
	if simplified {
		mode = "simplified"
		buckets = demographics.SimplifiedBuckets()
	}

	logrus.WithField("mode", mode).Info("Iniciando rodada do agregador demográfico")

	startTime := time.Now()
	summary := s.aggregator.Run(ctx, buckets)
	duration := time.Since(startTime)

	metrics.RecordSyncRun(mode, summary.Success(), duration, summary.ProcessedCount, summary.SkippedCount, summary.FailedCount)

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"mode":        mode,
		"processed":   summary.ProcessedCount,
		"skipped":     summary.SkippedCount,
		"failed":      summary.FailedCount,
		"duration_ms": duration.Milliseconds(),
	}).Info("Rodada do agregador demográfico finalizada")

	return summary, nil
}

// GetStatus retorna o status atual do agendador
func (s *DemographicsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_simplified":        s.config.Simplified,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSummary != nil {
		status["last_processed_count"] = s.lastSummary.ProcessedCount
		status["last_skipped_count"] = s.lastSummary.SkippedCount
		status["last_failed_count"] = s.lastSummary.FailedCount
	}

	return status
}
