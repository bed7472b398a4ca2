package domain

// DailyActivityRecord é um dia da linha do tempo densa de um perfil,
// reconstruída entre o primeiro e o último dia com abertura de app.
// DaysSinceLastActive é nil quando nenhuma atividade foi detectada na
// janela de 31 dias que termina no dia avaliado.
type DailyActivityRecord struct {
	DateKey             string `json:"date_key"`
	IsPresentInSource   bool   `json:"is_present_in_source"`
	IsActive            bool   `json:"is_active"`
	DaysSinceLastActive *int   `json:"days_since_last_active"`
	ActiveInLast7Days   bool   `json:"active_in_last_7_days"`
	ActiveInLast14Days  bool   `json:"active_in_last_14_days"`
	ActiveInLast30Days  bool   `json:"active_in_last_30_days"`
}
