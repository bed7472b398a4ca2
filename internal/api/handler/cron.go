package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/scheduler"
	"github.com/swipelytics/insights-api/pkg/apiErrors"
	"github.com/swipelytics/insights-api/pkg/middleware"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DemographicsSyncService *scheduler.DemographicsSyncService
}

type RunDemographicsSyncResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ProcessedCount int    `json:"processedCount"`
	SkippedCount   int    `json:"skippedCount"`
	FailedCount    int    `json:"failedCount"`
	DurationMs     int64  `json:"durationMs"`
	Timestamp      string `json:"timestamp"`
}

// RunDemographicsSync executa uma rodada do agregador demográfico de forma
// síncrona. O modo simplificado (4 buckets) é acionado via query string.
func RunDemographicsSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDemographicsSync")

		// Verificar permissões - apenas administradores (ou o cron autenticado
		// pelo segredo) podem disparar a agregação
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		if services.DemographicsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de agregação demográfica não disponível", nil)
			return
		}

		simplified := r.URL.Query().Get("simplified") == "true"

		startTime := time.Now()
		summary, err := services.DemographicsSyncService.RunSync(r.Context(), simplified)
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(RunDemographicsSyncResponse{
					Success:   false,
					Message:   "Sincronização demográfica já em execução",
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				})
				return
			}

			logrus.WithError(err).Error("Erro ao executar agregação demográfica")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar agregação demográfica", nil)
			return
		}

		message := "Agregação demográfica concluída com sucesso"
		if !summary.Success() {
			message = "Agregação demográfica concluída com falhas parciais"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RunDemographicsSyncResponse{
			Success:        summary.Success(),
			Message:        message,
			ProcessedCount: summary.ProcessedCount,
			SkippedCount:   summary.SkippedCount,
			FailedCount:    summary.FailedCount,
			DurationMs:     time.Since(startTime).Milliseconds(),
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"demographics": services.DemographicsSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
