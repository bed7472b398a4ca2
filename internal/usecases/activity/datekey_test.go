package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDateKey(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected string
	}{
		{
			name:     "Meia-noite UTC",
			instant:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: "2024-03-15",
		},
		{
			name:     "Fim do dia UTC cai no mesmo dia",
			instant:  time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
			expected: "2024-03-15",
		},
		{
			name:     "Fuso negativo é convertido para o dia UTC seguinte",
			instant:  time.Date(2024, 3, 15, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
			expected: "2024-03-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDateKey(tt.instant))
		})
	}
}

func TestParseDateKey(t *testing.T) {
	day, err := ParseDateKey("2024-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), day)

	// Ida e volta preserva a chave
	assert.Equal(t, "2024-03-15", ToDateKey(day))

	_, err = ParseDateKey("15/03/2024")
	assert.Error(t, err)
}

func TestFirstAndLastKeys(t *testing.T) {
	t.Run("Mapa vazio retorna ErrEmptyInput", func(t *testing.T) {
		_, _, err := FirstAndLastKeys(map[string]int{})
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("Mapa nulo retorna ErrEmptyInput", func(t *testing.T) {
		_, _, err := FirstAndLastKeys(nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("Chave única é primeiro e último ao mesmo tempo", func(t *testing.T) {
		first, last, err := FirstAndLastKeys(map[string]int{"2024-01-10": 3})
		assert.NoError(t, err)
		assert.Equal(t, "2024-01-10", first)
		assert.Equal(t, "2024-01-10", last)
	})

	t.Run("Ordem lexicográfica equivale à cronológica", func(t *testing.T) {
		first, last, err := FirstAndLastKeys(map[string]int{
			"2024-02-01": 1,
			"2023-12-31": 2,
			"2024-01-15": 5,
		})
		assert.NoError(t, err)
		assert.Equal(t, "2023-12-31", first)
		assert.Equal(t, "2024-02-01", last)
	})
}
