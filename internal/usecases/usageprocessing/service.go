// Package usageprocessing transforma o log esparso de eventos enviado por um
// perfil na série densa de linhas de uso diário que alimenta o agregador
// demográfico.
package usageprocessing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/swipelytics/insights-api/infrastructure/repository"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/usecases/activity"
	"github.com/swipelytics/insights-api/internal/usecases/rates"
)

// ProfileUpload é o payload de ingestão: os atributos do perfil mais o log
// esparso de eventos por dia
type ProfileUpload struct {
	Profile domain.Profile        `json:"profile"`
	Events  domain.RawUsageEvents `json:"events"`
}

type Ingester interface {
	// IngestProfile persiste o perfil e sua série densa de uso diário.
	// Retorna o número de dias materializados.
	IngestProfile(ctx context.Context, upload *ProfileUpload) (int, error)
}

type Service struct {
	profileRepo repository.ProfileRepository
	usageRepo   repository.UsageRepository
}

func NewService(
	profileRepo repository.ProfileRepository,
	usageRepo repository.UsageRepository,
) *Service {
	return &Service{
		profileRepo: profileRepo,
		usageRepo:   usageRepo,
	}
}

func (s *Service) IngestProfile(ctx context.Context, upload *ProfileUpload) (int, error) {
	profile := upload.Profile

	usageDays, err := BuildDailyUsage(&profile, &upload.Events)
	if err != nil {
		// Perfil sem histórico de aberturas não é classificável
		return 0, errors.Wrapf(err, "perfil %s", profile.ID)
	}

	// Os limites do período observado saem da própria série densa
	firstDay := usageDays[0].DateStamp
	lastDay := usageDays[len(usageDays)-1].DateStamp
	profile.FirstDayOnApp = &firstDay
	profile.LastDayOnApp = &lastDay
	profile.DaysInProfilePeriod = len(usageDays)
	profile.Computed = false

	if err := s.profileRepo.SaveOrUpdate(&profile); err != nil {
		return 0, errors.Wrapf(err, "erro ao salvar perfil %s", profile.ID)
	}

	if err := s.usageRepo.SaveUsageDays(usageDays); err != nil {
		return 0, errors.Wrapf(err, "erro ao salvar uso diário do perfil %s", profile.ID)
	}

	logrus.WithFields(logrus.Fields{
		"profile_id": profile.ID,
		"days":       len(usageDays),
	}).Info("Perfil ingerido com sucesso")

	return len(usageDays), nil
}

// BuildDailyUsage aplica o classificador de atividade sobre o log esparso e
// monta uma linha de uso por dia-calendário entre o primeiro e o último dia
// observado, com taxas derivadas calculadas dia a dia
func BuildDailyUsage(profile *domain.Profile, events *domain.RawUsageEvents) ([]domain.UsageDay, error) {
	timeline, err := activity.Classify(events.AppOpens, events.SwipeLikes, events.SwipePasses)
	if err != nil {
		return nil, err
	}

	usageDays := make([]domain.UsageDay, 0, len(timeline))

	for _, record := range timeline {
		day, err := activity.ParseDateKey(record.DateKey)
		if err != nil {
			return nil, err
		}

		appOpens := float64(events.AppOpens[record.DateKey])
		matches := float64(events.Matches[record.DateKey])
		messagesSent := float64(events.MessagesSent[record.DateKey])
		messagesReceived := float64(events.MessagesReceived[record.DateKey])
		swipeLikes := float64(events.SwipeLikes[record.DateKey])
		swipeSuperLikes := float64(events.SwipeSuperLikes[record.DateKey])
		swipePasses := float64(events.SwipePasses[record.DateKey])

		usageDays = append(usageDays, domain.UsageDay{
			ProfileID:              profile.ID,
			DateStamp:              day,
			DateStampRaw:           day.Format(time.RFC3339),
			AppOpens:               appOpens,
			Matches:                matches,
			MessagesSent:           messagesSent,
			MessagesReceived:       messagesReceived,
			SwipeLikes:             swipeLikes,
			SwipeSuperLikes:        swipeSuperLikes,
			SwipePasses:            swipePasses,
			SwipesCombined:         swipeLikes + swipeSuperLikes + swipePasses,
			ActiveUserInLast14Days: record.ActiveInLast14Days,
			MatchRate:              rates.MatchRate(matches, swipeLikes),
			LikeRate:               rates.LikeRate(swipeLikes, swipePasses),
			MessagesSentRate:       rates.MessagesSentRate(messagesSent, messagesReceived),
			EngagementRate:         rates.EngagementRate(swipeLikes, swipePasses, messagesSent, appOpens),
			ResponseRate:           rates.ResponseRate(messagesSent, messagesReceived),
			UserAgeThisDay:         profile.AgeAt(day),
			ProfileCount:           1,
		})
	}

	return usageDays, nil
}
