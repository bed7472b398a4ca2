// Package demographics implementa o agregador demográfico: para cada bucket
// (gênero × preferência × faixa etária) com população não vazia, sintetiza um
// perfil médio e uma série temporal de uso diário, persistidos de forma
// idempotente sob o ID determinístico do bucket.
package demographics

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swipelytics/insights-api/infrastructure/repository"
	"github.com/swipelytics/insights-api/internal/config"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/usecases/rates"
	"github.com/swipelytics/insights-api/pkg/utils"
)

type Aggregator interface {
	// Run processa os buckets sequencialmente e retorna o resumo da rodada.
	// Falhas em um bucket não interrompem os demais.
	Run(ctx context.Context, buckets []domain.DemographicBucket) *RunSummary
}

// RunSummary é o resultado best-effort de uma rodada do agregador
type RunSummary struct {
	ProcessedCount int
	SkippedCount   int
	FailedCount    int
	Errors         []error
}

// Success indica se a rodada terminou sem nenhuma falha de bucket
func (s *RunSummary) Success() bool {
	return s.FailedCount == 0
}

type AggregatorConfig struct {
	TransactionTimeout time.Duration
	PruneEmptyBuckets  bool
}

type Service struct {
	profileRepo repository.ProfileRepository
	usageRepo   repository.UsageRepository
	config      AggregatorConfig

	// now é injetável para que os testes fixem a data de referência dos
	// cálculos de janela de nascimento
	now func() time.Time
}

func NewService(
	profileRepo repository.ProfileRepository,
	usageRepo repository.UsageRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		profileRepo: profileRepo,
		usageRepo:   usageRepo,
		config: AggregatorConfig{
			TransactionTimeout: time.Duration(cfg.DemographicsSync.TransactionTimeoutSeconds) * time.Second,
			PruneEmptyBuckets:  cfg.DemographicsSync.PruneEmptyBuckets,
		},
		now: time.Now,
	}
}

func (s *Service) Run(ctx context.Context, buckets []domain.DemographicBucket) *RunSummary {
	summary := &RunSummary{}

	logrus.WithField("buckets", len(buckets)).Info("Iniciando rodada do agregador demográfico")

	for _, bucket := range buckets {
		processed, err := s.processBucket(ctx, bucket)
		if err != nil {
			summary.FailedCount++
			summary.Errors = append(summary.Errors, err)
			logrus.WithError(err).WithField("bucket", bucket.ID()).Error("Erro ao processar bucket demográfico")
			continue
		}

		if processed {
			summary.ProcessedCount++
		} else {
			summary.SkippedCount++
		}
	}

	logrus.WithFields(logrus.Fields{
		"processed": summary.ProcessedCount,
		"skipped":   summary.SkippedCount,
		"failed":    summary.FailedCount,
	}).Info("Rodada do agregador demográfico concluída")

	return summary
}

// processBucket executa o ciclo completo de um bucket. Retorna false quando
// o bucket foi pulado por população vazia.
func (s *Service) processBucket(ctx context.Context, bucket domain.DemographicBucket) (bool, error) {
	today := truncateToDay(s.now())

	// Janela de nascimento relativa a "hoje": quem tem entre Min e Max anos
	minBirthDate := today.AddDate(-bucket.AgeRange.Max, 0, 0)
	maxBirthDate := today.AddDate(-bucket.AgeRange.Min, 0, 0)

	population, err := s.profileRepo.CountPopulation(bucket.Gender, bucket.InterestedIn, minBirthDate, maxBirthDate)
	if err != nil {
		return false, &BucketError{Bucket: bucket, Err: err}
	}

	if population == 0 {
		if s.config.PruneEmptyBuckets {
			pruneCtx, cancel := context.WithTimeout(ctx, s.config.TransactionTimeout)
			defer cancel()

			if err := s.profileRepo.DeleteComputed(pruneCtx, bucket.ID()); err != nil {
				return false, &BucketError{Bucket: bucket, Err: err}
			}
		}

		logrus.WithField("bucket", bucket.ID()).Debug("Bucket sem população, pulando")
		return false, nil
	}

	aggregates, err := s.profileRepo.AggregateAttributes(bucket.Gender, bucket.InterestedIn, minBirthDate, maxBirthDate)
	if err != nil {
		return false, &BucketError{Bucket: bucket, Err: err}
	}

	series, err := s.usageRepo.AggregateDailyUsage(bucket.Gender, bucket.InterestedIn, minBirthDate, maxBirthDate)
	if err != nil {
		return false, &BucketError{Bucket: bucket, Err: err}
	}

	profile, usageDays := s.buildSyntheticDemographic(bucket, today, aggregates, series)

	// Uma transação por bucket, com orçamento de espera generoso: as
	// escritas em lote sobre populações grandes podem demorar
	txCtx, cancel := context.WithTimeout(ctx, s.config.TransactionTimeout)
	defer cancel()

	if err := s.profileRepo.ReplaceComputedDemographic(txCtx, profile, usageDays); err != nil {
		return false, &BucketError{Bucket: bucket, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"bucket":     bucket.ID(),
		"population": population,
		"usage_days": len(usageDays),
	}).Info("Bucket demográfico processado")

	return true, nil
}

// buildSyntheticDemographic monta o perfil médio do bucket e suas linhas de
// uso diário a partir das agregações populacionais. As taxas são recalculadas
// a partir das médias agregadas — nunca pela média de taxas individuais.
func (s *Service) buildSyntheticDemographic(
	bucket domain.DemographicBucket,
	today time.Time,
	aggregates *domain.ProfileAggregates,
	series []*domain.AggregatedUsageDay,
) (*domain.Profile, []domain.UsageDay) {
	avgAgeAtUpload := int(math.Round(aggregates.AvgAgeAtUpload))

	profile := &domain.Profile{
		ID:                  bucket.ID(),
		Gender:              bucket.Gender,
		InterestedIn:        bucket.InterestedIn,
		BirthDate:           today.AddDate(-avgAgeAtUpload, 0, 0),
		AgeFilterMin:        int(math.Round(aggregates.AvgAgeFilterMin)),
		AgeFilterMax:        int(math.Round(aggregates.AvgAgeFilterMax)),
		AgeAtUpload:         avgAgeAtUpload,
		AgeAtLastUsage:      int(math.Round(aggregates.AvgAgeAtLastUsage)),
		Computed:            true,
		DaysInProfilePeriod: len(series),
	}

	if len(series) > 0 {
		firstDay := series[0].DateStamp
		lastDay := series[len(series)-1].DateStamp
		profile.FirstDayOnApp = &firstDay
		profile.LastDayOnApp = &lastDay
	}

	usageDays := make([]domain.UsageDay, 0, len(series))
	for _, day := range series {
		usageDays = append(usageDays, domain.UsageDay{
			ProfileID:              profile.ID,
			DateStamp:              day.DateStamp,
			DateStampRaw:           day.DateStamp.Format(time.RFC3339),
			AppOpens:               utils.RoundWithTwoDecimalPlace(day.AvgAppOpens),
			Matches:                utils.RoundWithTwoDecimalPlace(day.AvgMatches),
			MessagesSent:           utils.RoundWithTwoDecimalPlace(day.AvgMessagesSent),
			MessagesReceived:       utils.RoundWithTwoDecimalPlace(day.AvgMessagesReceived),
			SwipeLikes:             utils.RoundWithTwoDecimalPlace(day.AvgSwipeLikes),
			SwipeSuperLikes:        utils.RoundWithTwoDecimalPlace(day.AvgSwipeSuperLikes),
			SwipePasses:            utils.RoundWithTwoDecimalPlace(day.AvgSwipePasses),
			SwipesCombined:         utils.RoundWithTwoDecimalPlace(day.AvgSwipeLikes + day.AvgSwipeSuperLikes + day.AvgSwipePasses),
			ActiveUserInLast14Days: true,
			MatchRate:              rates.MatchRate(day.AvgMatches, day.AvgSwipeLikes),
			LikeRate:               rates.LikeRate(day.AvgSwipeLikes, day.AvgSwipePasses),
			MessagesSentRate:       rates.MessagesSentRate(day.AvgMessagesSent, day.AvgMessagesReceived),
			EngagementRate:         rates.EngagementRate(day.AvgSwipeLikes, day.AvgSwipePasses, day.AvgMessagesSent, day.AvgAppOpens),
			ResponseRate:           rates.ResponseRate(day.AvgMessagesSent, day.AvgMessagesReceived),
			UserAgeThisDay:         profile.AgeAt(day.DateStamp),
			ProfileCount:           day.ProfileCount,
		})
	}

	return profile, usageDays
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
