package domain

import "time"

// RawUsageEvents é o log esparso de eventos de um perfil, agrupado por métrica.
// Cada mapa é indexado pela chave de dia (YYYY-MM-DD); os dias não são
// necessariamente contíguos nem ordenados.
type RawUsageEvents struct {
	AppOpens         map[string]int `json:"app_opens"`
	Matches          map[string]int `json:"matches"`
	MessagesSent     map[string]int `json:"messages_sent"`
	MessagesReceived map[string]int `json:"messages_received"`
	SwipeLikes       map[string]int `json:"swipe_likes"`
	SwipeSuperLikes  map[string]int `json:"swipe_super_likes"`
	SwipePasses      map[string]int `json:"swipe_passes"`
}

// UsageDay é uma linha densa de uso diário de um perfil (real ou computado).
// Para perfis computados, os contadores carregam as médias do bucket e
// ProfileCount indica quantos perfis contribuíram naquele dia.
type UsageDay struct {
	ProfileID              string    `json:"profile_id"`
	DateStamp              time.Time `json:"date_stamp"`
	DateStampRaw           string    `json:"date_stamp_raw"`
	AppOpens               float64   `json:"app_opens"`
	Matches                float64   `json:"matches"`
	MessagesSent           float64   `json:"messages_sent"`
	MessagesReceived       float64   `json:"messages_received"`
	SwipeLikes             float64   `json:"swipe_likes"`
	SwipeSuperLikes        float64   `json:"swipe_super_likes"`
	SwipePasses            float64   `json:"swipe_passes"`
	SwipesCombined         float64   `json:"swipes_combined"`
	ActiveUserInLast14Days bool      `json:"active_user_in_last_14_days"`
	MatchRate              float64   `json:"match_rate"`
	LikeRate               float64   `json:"like_rate"`
	MessagesSentRate       float64   `json:"messages_sent_rate"`
	EngagementRate         float64   `json:"engagement_rate"`
	ResponseRate           float64   `json:"response_rate"`
	UserAgeThisDay         int       `json:"user_age_this_day"`
	ProfileCount           int       `json:"profile_count"`
}

// AggregatedUsageDay é o resultado do GROUP BY por dia sobre os perfis de um
// bucket: média e máximo de cada métrica mais a contagem de perfis que
// contribuíram naquele dia
type AggregatedUsageDay struct {
	DateStamp           time.Time
	ProfileCount        int
	AvgAppOpens         float64
	AvgMatches          float64
	AvgMessagesSent     float64
	AvgMessagesReceived float64
	AvgSwipeLikes       float64
	AvgSwipeSuperLikes  float64
	AvgSwipePasses      float64
	MaxAppOpens         float64
	MaxMatches          float64
	MaxMessagesSent     float64
	MaxMessagesReceived float64
	MaxSwipeLikes       float64
	MaxSwipeSuperLikes  float64
	MaxSwipePasses      float64
}
