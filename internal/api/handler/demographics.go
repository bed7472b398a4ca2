package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/usecases/demographics"
	"github.com/swipelytics/insights-api/pkg/apiErrors"
	"github.com/swipelytics/insights-api/pkg/log"
	"github.com/swipelytics/insights-api/pkg/utils"
)

type DemographicResponse struct {
	Profile   *domain.Profile    `json:"profile"`
	UsageDays []*domain.UsageDay `json:"usageDays"`
}

// ListDemographics retorna todos os perfis demográficos sintetizados
func ListDemographics(service demographics.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		profiles, err := service.ListSyntheticProfiles()
		if err != nil {
			logger.WithField("error", err.Error()).Error("demographics: failed to list synthetic profiles")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar perfis demográficos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profiles)
	})
}

// GetDemographic retorna um perfil demográfico e sua série de uso diário
func GetDemographic(service demographics.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil demográfico não fornecido", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"id":         id,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("demographics: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"id":       id,
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("demographics: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}

		profile, usageDays, err := service.GetSyntheticProfile(id)
		if err != nil {
			if errors.Is(err, demographics.ErrDemographicNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Perfil demográfico não encontrado", map[string]any{
					"id": id,
				})
				return
			}

			logger.WithFields(log.Fields{
				"id":    id,
				"error": err.Error(),
			}).Error("demographics: failed to get synthetic profile")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar perfil demográfico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DemographicResponse{
			Profile:   profile,
			UsageDays: filterUsageDaysByPeriod(usageDays, startDate, endDate),
		})
	})
}

// filterUsageDaysByPeriod recorta a série pelo período solicitado; limites
// zerados (parâmetro ausente) não filtram
func filterUsageDaysByPeriod(usageDays []*domain.UsageDay, startDate, endDate *time.Time) []*domain.UsageDay {
	if startDate.IsZero() && endDate.IsZero() {
		return usageDays
	}

	filtered := make([]*domain.UsageDay, 0, len(usageDays))
	for _, day := range usageDays {
		if !startDate.IsZero() && day.DateStamp.Before(*startDate) {
			continue
		}
		if !endDate.IsZero() && day.DateStamp.After(*endDate) {
			continue
		}
		filtered = append(filtered, day)
	}

	return filtered
}
