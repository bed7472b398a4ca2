package demographics

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelytics/insights-api/infrastructure/repository/mocks"
	"github.com/swipelytics/insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência fixa para os cálculos de janela de nascimento
var testToday = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestService(profileRepo *mocks.MockProfileRepository, usageRepo *mocks.MockUsageRepository) *Service {
	return &Service{
		profileRepo: profileRepo,
		usageRepo:   usageRepo,
		config: AggregatorConfig{
			TransactionTimeout: 30 * time.Second,
		},
		now: func() time.Time { return testToday },
	}
}

func TestService_Run_EmptyBucketIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUsageRepo := mocks.NewMockUsageRepository(ctrl)

	service := newTestService(mockProfileRepo, mockUsageRepo)

	bucket := domain.DemographicBucket{
		Gender:       domain.GenderMale,
		InterestedIn: domain.GenderFemale,
		AgeRange:     domain.AgeRange{Label: "all", Min: 18, Max: 100},
	}

	// População vazia: nenhuma agregação nem escrita acontece
	mockProfileRepo.EXPECT().
		CountPopulation(bucket.Gender, bucket.InterestedIn, gomock.Any(), gomock.Any()).
		Return(0, nil)

	summary := service.Run(context.Background(), []domain.DemographicBucket{bucket})

	assert.Equal(t, 0, summary.ProcessedCount)
	assert.Equal(t, 1, summary.SkippedCount)
	assert.Equal(t, 0, summary.FailedCount)
	assert.True(t, summary.Success())
}

func TestService_Run_EmptyBucketIsPrunedWhenConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUsageRepo := mocks.NewMockUsageRepository(ctrl)

	service := newTestService(mockProfileRepo, mockUsageRepo)
	service.config.PruneEmptyBuckets = true

	bucket := SimplifiedBuckets()[0]

	mockProfileRepo.EXPECT().
		CountPopulation(bucket.Gender, bucket.InterestedIn, gomock.Any(), gomock.Any()).
		Return(0, nil)

	// Com a poda habilitada, o perfil computado obsoleto é removido
	mockProfileRepo.EXPECT().
		DeleteComputed(gomock.Any(), bucket.ID()).
		Return(nil)

	summary := service.Run(context.Background(), []domain.DemographicBucket{bucket})

	assert.Equal(t, 1, summary.SkippedCount)
	assert.True(t, summary.Success())
}

func TestService_Run_BucketFailureDoesNotStopTheRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUsageRepo := mocks.NewMockUsageRepository(ctrl)

	service := newTestService(mockProfileRepo, mockUsageRepo)

	buckets := SimplifiedBuckets()[:2]

	// Primeiro bucket falha na contagem de população
	mockProfileRepo.EXPECT().
		CountPopulation(buckets[0].Gender, buckets[0].InterestedIn, gomock.Any(), gomock.Any()).
		Return(0, errors.New("conexão perdida"))

	// Segundo bucket é pulado normalmente: a rodada continuou
	mockProfileRepo.EXPECT().
		CountPopulation(buckets[1].Gender, buckets[1].InterestedIn, gomock.Any(), gomock.Any()).
		Return(0, nil)

	summary := service.Run(context.Background(), buckets)

	assert.Equal(t, 0, summary.ProcessedCount)
	assert.Equal(t, 1, summary.SkippedCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.False(t, summary.Success())

	require.Len(t, summary.Errors, 1)
	var bucketErr *BucketError
	require.ErrorAs(t, summary.Errors[0], &bucketErr)
	assert.Equal(t, buckets[0].ID(), bucketErr.Bucket.ID())
}

func TestService_Run_SynthesizesAverageProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUsageRepo := mocks.NewMockUsageRepository(ctrl)

	service := newTestService(mockProfileRepo, mockUsageRepo)

	bucket := domain.DemographicBucket{
		Gender:       domain.GenderFemale,
		InterestedIn: domain.GenderMale,
		AgeRange:     domain.AgeRange{Label: "25-34", Min: 25, Max: 34},
	}

	// Janela de nascimento relativa à data de referência fixa
	expectedMinBirthDate := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	expectedMaxBirthDate := time.Date(1999, 6, 15, 0, 0, 0, 0, time.UTC)

	// População de dois perfis com 25 e 27 anos no upload
	mockProfileRepo.EXPECT().
		CountPopulation(bucket.Gender, bucket.InterestedIn, expectedMinBirthDate, expectedMaxBirthDate).
		Return(2, nil)

	mockProfileRepo.EXPECT().
		AggregateAttributes(bucket.Gender, bucket.InterestedIn, expectedMinBirthDate, expectedMaxBirthDate).
		Return(&domain.ProfileAggregates{
			Count:             2,
			AvgAgeFilterMin:   21.5,
			AvgAgeFilterMax:   35.4,
			AvgAgeAtUpload:    26.0,
			AvgAgeAtLastUsage: 26.5,
		}, nil)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mockUsageRepo.EXPECT().
		AggregateDailyUsage(bucket.Gender, bucket.InterestedIn, expectedMinBirthDate, expectedMaxBirthDate).
		Return([]*domain.AggregatedUsageDay{
			{
				DateStamp:      day1,
				ProfileCount:   2,
				AvgAppOpens:    4,
				AvgMatches:     1,
				AvgSwipeLikes:  10,
				AvgSwipePasses: 30,
			},
			{
				DateStamp:       day2,
				ProfileCount:    1,
				AvgAppOpens:     2.555,
				AvgMessagesSent: 3,
			},
		}, nil)

	var savedProfile *domain.Profile
	var savedUsageDays []domain.UsageDay

	mockProfileRepo.EXPECT().
		ReplaceComputedDemographic(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *domain.Profile, usageDays []domain.UsageDay) error {
			savedProfile = profile
			savedUsageDays = usageDays
			return nil
		})

	summary := service.Run(context.Background(), []domain.DemographicBucket{bucket})

	assert.Equal(t, 1, summary.ProcessedCount)
	assert.Equal(t, 0, summary.SkippedCount)
	assert.True(t, summary.Success())

	// Perfil sintético: ID determinístico e atributos médios arredondados
	require.NotNil(t, savedProfile)
	assert.Equal(t, "average-FEMALE-MALE-25-34", savedProfile.ID)
	assert.Equal(t, bucket.Gender, savedProfile.Gender)
	assert.Equal(t, bucket.InterestedIn, savedProfile.InterestedIn)
	assert.True(t, savedProfile.Computed)
	assert.Equal(t, 26, savedProfile.AgeAtUpload)
	assert.Equal(t, 22, savedProfile.AgeFilterMin)   // 21.5 arredonda para cima
	assert.Equal(t, 35, savedProfile.AgeFilterMax)   // 35.4 arredonda para baixo
	assert.Equal(t, 27, savedProfile.AgeAtLastUsage) // 26.5 arredonda para cima
	assert.Equal(t, time.Date(1998, 6, 15, 0, 0, 0, 0, time.UTC), savedProfile.BirthDate)
	assert.Equal(t, 2, savedProfile.DaysInProfilePeriod)

	require.NotNil(t, savedProfile.FirstDayOnApp)
	require.NotNil(t, savedProfile.LastDayOnApp)
	assert.Equal(t, day1, *savedProfile.FirstDayOnApp)
	assert.Equal(t, day2, *savedProfile.LastDayOnApp)

	// Série de uso: uma linha por dia agregado, com as médias arredondadas
	// para duas casas e as taxas derivadas das médias não arredondadas
	require.Len(t, savedUsageDays, 2)

	first := savedUsageDays[0]
	assert.Equal(t, savedProfile.ID, first.ProfileID)
	assert.Equal(t, 2, first.ProfileCount)
	assert.True(t, first.ActiveUserInLast14Days)
	assert.InDelta(t, 0.1, first.MatchRate, 1e-9)       // 1 / 10
	assert.InDelta(t, 0.25, first.LikeRate, 1e-9)       // 10 / 40
	assert.InDelta(t, 10.0, first.EngagementRate, 1e-9) // 40 / 4

	second := savedUsageDays[1]
	assert.Equal(t, 2.56, second.AppOpens) // média arredondada em duas casas
	assert.Equal(t, 1, second.ProfileCount)
	assert.Equal(t, 0.0, second.MatchRate) // denominador zero
	assert.InDelta(t, 1.0, second.MessagesSentRate, 1e-9)
}
