package activity

import (
	"fmt"
	"time"

	"github.com/swipelytics/insights-api/internal/domain"
)

// Janelas móveis de atividade, em dias. Todas incluem o offset 0 (o próprio
// dia avaliado) e o dia-limite: [d-7, d] cobre 8 dias-calendário.
const (
	windowShort  = 7
	windowMedium = 14
	windowLong   = 30
)

// Classify reconstrói a linha do tempo densa de um perfil entre o primeiro e
// o último dia com abertura de app, um registro por dia-calendário, sem
// lacunas. O sinal mínimo de atividade é abertura de app, like ou pass; os
// mapas de matches/mensagens não participam do predicado de atividade.
//
// A função é pura: recalcula tudo a cada chamada a partir dos mapas esparsos.
func Classify(appOpens, swipeLikes, swipePasses map[string]int) ([]domain.DailyActivityRecord, error) {
	first, last, err := FirstAndLastKeys(appOpens)
	if err != nil {
		return nil, err
	}

	firstDay, err := ParseDateKey(first)
	if err != nil {
		return nil, fmt.Errorf("chave de dia inválida %q: %w", first, err)
	}

	lastDay, err := ParseDateKey(last)
	if err != nil {
		return nil, fmt.Errorf("chave de dia inválida %q: %w", last, err)
	}

	records := make([]domain.DailyActivityRecord, 0, int(lastDay.Sub(firstDay).Hours()/24)+1)

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := ToDateKey(day)
		_, present := appOpens[key]

		record := domain.DailyActivityRecord{
			DateKey:             key,
			IsPresentInSource:   present,
			DaysSinceLastActive: daysSinceLastActive(day, appOpens, swipeLikes, swipePasses),
		}

		if record.DaysSinceLastActive != nil {
			offset := *record.DaysSinceLastActive
			record.ActiveInLast7Days = offset <= windowShort
			record.ActiveInLast14Days = offset <= windowMedium
			record.ActiveInLast30Days = true
			record.IsActive = true
		}

		records = append(records, record)
	}

	return records, nil
}

// daysSinceLastActive varre a janela inclusiva [d-30, d] e retorna o menor
// offset em que alguma atividade (abertura, like ou pass com contagem
// diferente de zero) foi detectada; nil quando a janela inteira está vazia
func daysSinceLastActive(day time.Time, appOpens, swipeLikes, swipePasses map[string]int) *int {
	for offset := 0; offset <= windowLong; offset++ {
		key := ToDateKey(day.AddDate(0, 0, -offset))
		if appOpens[key] != 0 || swipeLikes[key] != 0 || swipePasses[key] != 0 {
			result := offset
			return &result
		}
	}
	return nil
}
