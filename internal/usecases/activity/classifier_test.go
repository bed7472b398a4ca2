package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelytics/insights-api/internal/domain"
)

func TestClassify_EmptyAppOpens(t *testing.T) {
	// Likes e passes sem nenhuma abertura de app não delimitam o período
	_, err := Classify(nil, map[string]int{"2024-01-01": 5}, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestClassify_DenseTimeline(t *testing.T) {
	// Aberturas apenas no primeiro e no último dia: a linha do tempo deve
	// preencher os dias intermediários sem lacunas
	appOpens := map[string]int{
		"2024-01-01": 2,
		"2024-01-05": 1,
	}

	records, err := Classify(appOpens, nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 5)

	expectedKeys := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, record := range records {
		assert.Equal(t, expectedKeys[i], record.DateKey)
	}

	// Presença na fonte é atributo da chave, não da atividade
	assert.True(t, records[0].IsPresentInSource)
	assert.False(t, records[1].IsPresentInSource)
	assert.False(t, records[2].IsPresentInSource)
	assert.False(t, records[3].IsPresentInSource)
	assert.True(t, records[4].IsPresentInSource)

	// Todos os dias estão a no máximo 7 dias da última atividade
	for _, record := range records {
		require.NotNil(t, record.DaysSinceLastActive, record.DateKey)
		assert.True(t, record.IsActive, record.DateKey)
		assert.True(t, record.ActiveInLast7Days, record.DateKey)
		assert.True(t, record.ActiveInLast14Days, record.DateKey)
		assert.True(t, record.ActiveInLast30Days, record.DateKey)
	}

	// O offset cresce dia a dia desde a abertura do dia 1º e zera no dia 05
	assert.Equal(t, 0, *records[0].DaysSinceLastActive)
	assert.Equal(t, 1, *records[1].DaysSinceLastActive)
	assert.Equal(t, 3, *records[3].DaysSinceLastActive)
	assert.Equal(t, 0, *records[4].DaysSinceLastActive)
}

func TestClassify_WindowBoundaries(t *testing.T) {
	// Uma única atividade no dia 1º; o resto do período é silêncio até a
	// abertura final que fecha a linha do tempo
	appOpens := map[string]int{
		"2024-01-01": 1,
		"2024-02-15": 1,
	}

	records, err := Classify(appOpens, nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 46)

	byKey := make(map[string]domain.DailyActivityRecord, len(records))
	for _, record := range records {
		byKey[record.DateKey] = record
	}

	tests := []struct {
		key            string
		offset         *int
		activeIn7Days  bool
		activeIn14Days bool
		activeIn30Days bool
	}{
		{key: "2024-01-01", offset: intPtr(0), activeIn7Days: true, activeIn14Days: true, activeIn30Days: true},
		// Limite inclusivo da janela curta: [d-7, d]
		{key: "2024-01-08", offset: intPtr(7), activeIn7Days: true, activeIn14Days: true, activeIn30Days: true},
		{key: "2024-01-09", offset: intPtr(8), activeIn7Days: false, activeIn14Days: true, activeIn30Days: true},
		// Limite inclusivo da janela média: [d-14, d]
		{key: "2024-01-15", offset: intPtr(14), activeIn7Days: false, activeIn14Days: true, activeIn30Days: true},
		{key: "2024-01-16", offset: intPtr(15), activeIn7Days: false, activeIn14Days: false, activeIn30Days: true},
		// Limite inclusivo da janela longa: [d-30, d]
		{key: "2024-01-31", offset: intPtr(30), activeIn7Days: false, activeIn14Days: false, activeIn30Days: true},
		// Fora de todas as janelas: nenhuma atividade detectável
		{key: "2024-02-01", offset: nil, activeIn7Days: false, activeIn14Days: false, activeIn30Days: false},
		{key: "2024-02-15", offset: intPtr(0), activeIn7Days: true, activeIn14Days: true, activeIn30Days: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			record, ok := byKey[tt.key]
			require.True(t, ok)

			if tt.offset == nil {
				assert.Nil(t, record.DaysSinceLastActive)
				assert.False(t, record.IsActive)
			} else {
				require.NotNil(t, record.DaysSinceLastActive)
				assert.Equal(t, *tt.offset, *record.DaysSinceLastActive)
				assert.True(t, record.IsActive)
			}

			assert.Equal(t, tt.activeIn7Days, record.ActiveInLast7Days)
			assert.Equal(t, tt.activeIn14Days, record.ActiveInLast14Days)
			assert.Equal(t, tt.activeIn30Days, record.ActiveInLast30Days)
		})
	}
}

func TestClassify_SwipesCountAsActivity(t *testing.T) {
	// Abertura registrada com contagem zero não é sinal de atividade, mas
	// likes em um dia intermediário são
	appOpens := map[string]int{
		"2024-01-01": 1,
		"2024-01-10": 0,
	}
	swipeLikes := map[string]int{
		"2024-01-05": 3,
	}

	records, err := Classify(appOpens, swipeLikes, nil)
	require.NoError(t, err)
	require.Len(t, records, 10)

	// Dia 05: like no próprio dia, offset 0
	require.NotNil(t, records[4].DaysSinceLastActive)
	assert.Equal(t, 0, *records[4].DaysSinceLastActive)

	// Dia 10: a chave existe na fonte mas com contagem zero; a última
	// atividade real foi o like do dia 05
	last := records[9]
	assert.True(t, last.IsPresentInSource)
	require.NotNil(t, last.DaysSinceLastActive)
	assert.Equal(t, 5, *last.DaysSinceLastActive)
}

func intPtr(v int) *int {
	return &v
}
