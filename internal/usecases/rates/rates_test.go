package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRates_ZeroDenominator(t *testing.T) {
	// Denominador zero sempre resulta em 0, nunca NaN ou Infinity
	assert.Equal(t, 0.0, MatchRate(5, 0))
	assert.Equal(t, 0.0, LikeRate(0, 0))
	assert.Equal(t, 0.0, MessagesSentRate(0, 0))
	assert.Equal(t, 0.0, ResponseRate(3, 0))
	assert.Equal(t, 0.0, EngagementRate(0, 0, 0, 0))
}

func TestRates_Values(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		expected float64
	}{
		{name: "MatchRate = matches / likes", actual: MatchRate(3, 12), expected: 0.25},
		{name: "LikeRate = likes / (likes + passes)", actual: LikeRate(6, 18), expected: 0.25},
		{name: "MessagesSentRate = enviadas / (enviadas + recebidas)", actual: MessagesSentRate(10, 30), expected: 0.25},
		{name: "ResponseRate = enviadas / recebidas", actual: ResponseRate(9, 12), expected: 0.75},
		{name: "EngagementRate = (likes + passes + enviadas) / aberturas", actual: EngagementRate(4, 3, 1, 4), expected: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.actual, 1e-9)
		})
	}
}

func TestRates_AggregateBeforeDividing(t *testing.T) {
	// Dois perfis: A com 1 match em 1 like, B com 1 match em 9 likes.
	// A taxa da população sai das somas agregadas, não da média das taxas
	// individuais — os dois caminhos divergem.
	rateA := MatchRate(1, 1) // 1.0
	rateB := MatchRate(1, 9) // ~0.111
	meanOfRates := (rateA + rateB) / 2

	aggregated := MatchRate(1+1, 1+9)

	assert.InDelta(t, 0.2, aggregated, 1e-9)
	assert.NotEqual(t, meanOfRates, aggregated)
}
