package usageprocessing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelytics/insights-api/infrastructure/repository/mocks"
	"github.com/swipelytics/insights-api/internal/domain"
	"github.com/swipelytics/insights-api/internal/usecases/activity"
	"go.uber.org/mock/gomock"
)

func testProfile() domain.Profile {
	return domain.Profile{
		ID:           "profile-001",
		Gender:       domain.GenderFemale,
		InterestedIn: domain.GenderMale,
		BirthDate:    time.Date(1996, 3, 10, 0, 0, 0, 0, time.UTC),
		AgeFilterMin: 25,
		AgeFilterMax: 35,
	}
}

func TestBuildDailyUsage(t *testing.T) {
	profile := testProfile()

	events := domain.RawUsageEvents{
		AppOpens: map[string]int{
			"2024-01-01": 4,
			"2024-01-03": 2,
		},
		Matches:          map[string]int{"2024-01-01": 1},
		MessagesSent:     map[string]int{"2024-01-03": 5},
		MessagesReceived: map[string]int{"2024-01-03": 10},
		SwipeLikes:       map[string]int{"2024-01-01": 10},
		SwipePasses:      map[string]int{"2024-01-01": 30},
	}

	usageDays, err := BuildDailyUsage(&profile, &events)
	require.NoError(t, err)
	require.Len(t, usageDays, 3)

	first := usageDays[0]
	assert.Equal(t, "profile-001", first.ProfileID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.DateStamp)
	assert.Equal(t, 4.0, first.AppOpens)
	assert.Equal(t, 40.0, first.SwipesCombined)
	assert.True(t, first.ActiveUserInLast14Days)
	assert.InDelta(t, 0.1, first.MatchRate, 1e-9)        // 1 / 10
	assert.InDelta(t, 0.25, first.LikeRate, 1e-9)        // 10 / 40
	assert.InDelta(t, 10.0, first.EngagementRate, 1e-9)  // 40 / 4
	assert.Equal(t, 27, first.UserAgeThisDay)            // aniversário em março
	assert.Equal(t, 1, first.ProfileCount)

	// Dia intermediário sem eventos: contadores zerados, taxas zeradas
	middle := usageDays[1]
	assert.Equal(t, 0.0, middle.AppOpens)
	assert.Equal(t, 0.0, middle.MatchRate)
	assert.Equal(t, 0.0, middle.EngagementRate)
	assert.True(t, middle.ActiveUserInLast14Days)

	last := usageDays[2]
	assert.Equal(t, 2.0, last.AppOpens)
	assert.InDelta(t, 1.0/3.0, last.MessagesSentRate, 1e-9) // 5 / 15
	assert.InDelta(t, 0.5, last.ResponseRate, 1e-9)         // 5 / 10
}

func TestIngestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUsageRepo := mocks.NewMockUsageRepository(ctrl)

	service := NewService(mockProfileRepo, mockUsageRepo)

	upload := &ProfileUpload{
		Profile: testProfile(),
		Events: domain.RawUsageEvents{
			AppOpens: map[string]int{
				"2024-01-01": 1,
				"2024-01-05": 2,
			},
		},
	}

	var savedProfile *domain.Profile
	mockProfileRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(profile *domain.Profile) error {
			savedProfile = profile
			return nil
		})

	mockUsageRepo.EXPECT().
		SaveUsageDays(gomock.Len(5)).
		Return(nil)

	daysProcessed, err := service.IngestProfile(context.Background(), upload)
	require.NoError(t, err)
	assert.Equal(t, 5, daysProcessed)

	// Os limites do período saem da série densa, nunca do payload
	require.NotNil(t, savedProfile)
	assert.False(t, savedProfile.Computed)
	assert.Equal(t, 5, savedProfile.DaysInProfilePeriod)
	require.NotNil(t, savedProfile.FirstDayOnApp)
	require.NotNil(t, savedProfile.LastDayOnApp)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *savedProfile.FirstDayOnApp)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *savedProfile.LastDayOnApp)
}

func TestIngestProfile_EmptyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockUsageRepo := mocks.NewMockUsageRepository(ctrl)

	service := NewService(mockProfileRepo, mockUsageRepo)

	upload := &ProfileUpload{
		Profile: testProfile(),
		Events:  domain.RawUsageEvents{},
	}

	// Nenhuma escrita acontece quando o histórico é vazio
	_, err := service.IngestProfile(context.Background(), upload)
	assert.ErrorIs(t, err, activity.ErrEmptyInput)
}
