package demographics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelytics/insights-api/internal/domain"
)

func TestFullBuckets(t *testing.T) {
	buckets := FullBuckets()

	// 3 gêneros × 3 preferências × 9 faixas etárias
	require.Len(t, buckets, 81)

	// IDs são únicos e determinísticos
	seen := make(map[string]bool, len(buckets))
	for _, bucket := range buckets {
		id := bucket.ID()
		assert.False(t, seen[id], "ID duplicado: %s", id)
		seen[id] = true
	}

	// A ordem de processamento é gênero → preferência → faixa
	assert.Equal(t, "average-MALE-MALE-18-24", buckets[0].ID())
	assert.Equal(t, "average-MALE-MALE-all", buckets[8].ID())
	assert.Equal(t, "average-OTHER-OTHER-all", buckets[80].ID())
}

func TestSimplifiedBuckets(t *testing.T) {
	buckets := SimplifiedBuckets()

	// 2 gêneros × 2 preferências × faixa coringa
	require.Len(t, buckets, 4)

	expected := []string{
		"average-MALE-MALE-all",
		"average-MALE-FEMALE-all",
		"average-FEMALE-MALE-all",
		"average-FEMALE-FEMALE-all",
	}
	for i, bucket := range buckets {
		assert.Equal(t, expected[i], bucket.ID())
		assert.Equal(t, domain.AgeRange{Label: "all", Min: 18, Max: 100}, bucket.AgeRange)
	}
}

func TestBucketID_Idempotent(t *testing.T) {
	bucket := domain.DemographicBucket{
		Gender:       domain.GenderFemale,
		InterestedIn: domain.GenderMale,
		AgeRange:     domain.AgeRange{Label: "25-34", Min: 25, Max: 34},
	}

	// Reexecuções produzem sempre o mesmo ID
	assert.Equal(t, "average-FEMALE-MALE-25-34", bucket.ID())
	assert.Equal(t, bucket.ID(), bucket.ID())
}
