package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/swipelytics/insights-api/internal/usecases/activity"
	"github.com/swipelytics/insights-api/internal/usecases/usageprocessing"
	"github.com/swipelytics/insights-api/pkg/apiErrors"
	"github.com/swipelytics/insights-api/pkg/log"
	"github.com/swipelytics/insights-api/pkg/metrics"
)

type IngestProfileResponse struct {
	ProfileID     string `json:"profileId"`
	DaysProcessed int    `json:"daysProcessed"`
}

// IngestProfile recebe um upload de perfil com o histórico bruto de uso,
// classifica a atividade diária e persiste o perfil e suas linhas de uso
func IngestProfile(service usageprocessing.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var upload usageprocessing.ProfileUpload
		if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
			metrics.ProfilesIngestedTotal.WithLabelValues("invalid").Inc()
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if upload.Profile.ID == "" {
			metrics.ProfilesIngestedTotal.WithLabelValues("invalid").Inc()
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		if !upload.Profile.Gender.Valid() || !upload.Profile.InterestedIn.Valid() {
			metrics.ProfilesIngestedTotal.WithLabelValues("invalid").Inc()
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Gênero ou preferência inválidos", map[string]any{
				"gender":       upload.Profile.Gender,
				"interestedIn": upload.Profile.InterestedIn,
			})
			return
		}

		daysProcessed, err := service.IngestProfile(r.Context(), &upload)
		if err != nil {
			if errors.Is(err, activity.ErrEmptyInput) {
				metrics.ProfilesIngestedTotal.WithLabelValues("empty_history").Inc()
				apiErrors.WriteError(w, apiErrors.ErrEmptyUsageHistory, "Histórico de aberturas do app vazio", nil)
				return
			}

			logger.WithFields(log.Fields{
				"profile_id": upload.Profile.ID,
				"error":      err.Error(),
			}).Error("profiles: failed to ingest profile upload")

			metrics.ProfilesIngestedTotal.WithLabelValues("error").Inc()
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar o upload do perfil", nil)
			return
		}

		logger.WithFields(log.Fields{
			"profile_id": upload.Profile.ID,
			"days":       daysProcessed,
		}).Info("profiles: profile upload ingested")

		metrics.ProfilesIngestedTotal.WithLabelValues("success").Inc()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(IngestProfileResponse{
			ProfileID:     upload.Profile.ID,
			DaysProcessed: daysProcessed,
		})
	})
}
