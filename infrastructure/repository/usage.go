package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/swipelytics/insights-api/infrastructure/database/postgres"
	"github.com/swipelytics/insights-api/internal/domain"
)

const (
	usageDaysTable = "usage_days"
)

var usageDayColumns = []string{
	"profile_id", "date_stamp", "date_stamp_raw",
	"app_opens", "matches", "messages_sent", "messages_received",
	"swipe_likes", "swipe_super_likes", "swipe_passes", "swipes_combined",
	"active_user_in_last_14_days",
	"match_rate", "like_rate", "messages_sent_rate", "engagement_rate", "response_rate",
	"user_age_this_day", "profile_count",
}

type UsageRepository interface {
	SaveUsageDays(usageDays []domain.UsageDay) error
	ListByProfileID(profileID string) ([]*domain.UsageDay, error)
	AggregateDailyUsage(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) ([]*domain.AggregatedUsageDay, error)
}

type usageRepository struct {
	conn *postgres.Connection
}

func NewUsageRepository(conn *postgres.Connection) UsageRepository {
	return &usageRepository{
		conn: conn,
	}
}

// SaveUsageDays faz o upsert das linhas de uso diário de um perfil real,
// uma linha por (perfil, dia)
func (r *usageRepository) SaveUsageDays(usageDays []domain.UsageDay) error {
	return insertUsageDays(r.conn, usageDays, false)
}

func (r *usageRepository) ListByProfileID(profileID string) ([]*domain.UsageDay, error) {
	query, args, err := squirrel.
		Select(usageDayColumns...).
		From(usageDaysTable).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("date_stamp ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	usageDays := make([]*domain.UsageDay, 0)
	for rows.Next() {
		usageDay := &domain.UsageDay{}
		err := rows.Scan(
			&usageDay.ProfileID,
			&usageDay.DateStamp,
			&usageDay.DateStampRaw,
			&usageDay.AppOpens,
			&usageDay.Matches,
			&usageDay.MessagesSent,
			&usageDay.MessagesReceived,
			&usageDay.SwipeLikes,
			&usageDay.SwipeSuperLikes,
			&usageDay.SwipePasses,
			&usageDay.SwipesCombined,
			&usageDay.ActiveUserInLast14Days,
			&usageDay.MatchRate,
			&usageDay.LikeRate,
			&usageDay.MessagesSentRate,
			&usageDay.EngagementRate,
			&usageDay.ResponseRate,
			&usageDay.UserAgeThisDay,
			&usageDay.ProfileCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear uso diário: %w", err)
		}
		usageDays = append(usageDays, usageDay)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return usageDays, nil
}

// AggregateDailyUsage agrupa por dia-calendário o uso dos perfis de um
// recorte demográfico, considerando apenas dias em que o perfil estava ativo
// na janela de 14 dias. Retorna média, máximo e contagem de perfis por dia,
// em ordem cronológica.
func (r *usageRepository) AggregateDailyUsage(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) ([]*domain.AggregatedUsageDay, error) {
	query, args, err := squirrel.
		Select(
			"u.date_stamp",
			"COUNT(DISTINCT u.profile_id)",
			"AVG(u.app_opens)", "AVG(u.matches)",
			"AVG(u.messages_sent)", "AVG(u.messages_received)",
			"AVG(u.swipe_likes)", "AVG(u.swipe_super_likes)", "AVG(u.swipe_passes)",
			"MAX(u.app_opens)", "MAX(u.matches)",
			"MAX(u.messages_sent)", "MAX(u.messages_received)",
			"MAX(u.swipe_likes)", "MAX(u.swipe_super_likes)", "MAX(u.swipe_passes)",
		).
		From(usageDaysTable+" u").
		Join(profilesTable+" p ON p.id = u.profile_id").
		Where(squirrel.And{
			squirrel.Eq{"p.gender": gender},
			squirrel.Eq{"p.interested_in": interestedIn},
			squirrel.Eq{"p.computed": false},
			squirrel.GtOrEq{"p.birth_date": minBirthDate},
			squirrel.LtOrEq{"p.birth_date": maxBirthDate},
			squirrel.Eq{"u.active_user_in_last_14_days": true},
		}).
		GroupBy("u.date_stamp").
		OrderBy("u.date_stamp ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	aggregated := make([]*domain.AggregatedUsageDay, 0)
	for rows.Next() {
		day := &domain.AggregatedUsageDay{}
		err := rows.Scan(
			&day.DateStamp,
			&day.ProfileCount,
			&day.AvgAppOpens, &day.AvgMatches,
			&day.AvgMessagesSent, &day.AvgMessagesReceived,
			&day.AvgSwipeLikes, &day.AvgSwipeSuperLikes, &day.AvgSwipePasses,
			&day.MaxAppOpens, &day.MaxMatches,
			&day.MaxMessagesSent, &day.MaxMessagesReceived,
			&day.MaxSwipeLikes, &day.MaxSwipeSuperLikes, &day.MaxSwipePasses,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregação diária: %w", err)
		}
		aggregated = append(aggregated, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregated, nil
}

// insertUsageDays insere as linhas em lote. Com skipDuplicates a chave
// natural (profile_id, date_stamp) é preservada via ON CONFLICT DO NOTHING;
// sem skipDuplicates a linha existente é atualizada.
func insertUsageDays(q postgres.Queryer, usageDays []domain.UsageDay, skipDuplicates bool) error {
	if len(usageDays) == 0 {
		return nil
	}

	query := squirrel.
		Insert(usageDaysTable).
		Columns(usageDayColumns...)

	for _, day := range usageDays {
		query = query.Values(
			day.ProfileID,
			day.DateStamp,
			day.DateStampRaw,
			day.AppOpens,
			day.Matches,
			day.MessagesSent,
			day.MessagesReceived,
			day.SwipeLikes,
			day.SwipeSuperLikes,
			day.SwipePasses,
			day.SwipesCombined,
			day.ActiveUserInLast14Days,
			day.MatchRate,
			day.LikeRate,
			day.MessagesSentRate,
			day.EngagementRate,
			day.ResponseRate,
			day.UserAgeThisDay,
			day.ProfileCount,
		)
	}

	if skipDuplicates {
		query = query.Suffix("ON CONFLICT (profile_id, date_stamp) DO NOTHING")
	} else {
		query = query.Suffix(`
			ON CONFLICT (profile_id, date_stamp) DO UPDATE SET
				date_stamp_raw = EXCLUDED.date_stamp_raw,
				app_opens = EXCLUDED.app_opens,
				matches = EXCLUDED.matches,
				messages_sent = EXCLUDED.messages_sent,
				messages_received = EXCLUDED.messages_received,
				swipe_likes = EXCLUDED.swipe_likes,
				swipe_super_likes = EXCLUDED.swipe_super_likes,
				swipe_passes = EXCLUDED.swipe_passes,
				swipes_combined = EXCLUDED.swipes_combined,
				active_user_in_last_14_days = EXCLUDED.active_user_in_last_14_days,
				match_rate = EXCLUDED.match_rate,
				like_rate = EXCLUDED.like_rate,
				messages_sent_rate = EXCLUDED.messages_sent_rate,
				engagement_rate = EXCLUDED.engagement_rate,
				response_rate = EXCLUDED.response_rate,
				user_age_this_day = EXCLUDED.user_age_this_day,
				profile_count = EXCLUDED.profile_count
		`)
	}

	sqlQuery, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir uso diário em lote: %w", err)
	}

	return nil
}
