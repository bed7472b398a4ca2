package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/swipelytics/insights-api/infrastructure/database/postgres"
	"github.com/swipelytics/insights-api/internal/domain"
)

const (
	profilesTable = "profiles"
)

var profileColumns = []string{
	"id", "gender", "interested_in", "birth_date",
	"age_filter_min", "age_filter_max", "age_at_upload", "age_at_last_usage",
	"computed", "first_day_on_app", "last_day_on_app", "days_in_profile_period",
	"created_at", "updated_at",
}

type ProfileRepository interface {
	SaveOrUpdate(profile *domain.Profile) error
	GetByID(id string) (*domain.Profile, error)
	ListComputed() ([]*domain.Profile, error)
	CountPopulation(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) (int, error)
	AggregateAttributes(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) (*domain.ProfileAggregates, error)
	ReplaceComputedDemographic(ctx context.Context, profile *domain.Profile, usageDays []domain.UsageDay) error
	DeleteComputed(ctx context.Context, id string) error
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) SaveOrUpdate(profile *domain.Profile) error {
	query := squirrel.
		Insert(profilesTable).
		Columns(
			"id", "gender", "interested_in", "birth_date",
			"age_filter_min", "age_filter_max", "age_at_upload", "age_at_last_usage",
			"computed", "first_day_on_app", "last_day_on_app", "days_in_profile_period",
		).
		Values(
			profile.ID,
			profile.Gender,
			profile.InterestedIn,
			profile.BirthDate,
			profile.AgeFilterMin,
			profile.AgeFilterMax,
			profile.AgeAtUpload,
			profile.AgeAtLastUsage,
			profile.Computed,
			profile.FirstDayOnApp,
			profile.LastDayOnApp,
			profile.DaysInProfilePeriod,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				gender = EXCLUDED.gender,
				interested_in = EXCLUDED.interested_in,
				birth_date = EXCLUDED.birth_date,
				age_filter_min = EXCLUDED.age_filter_min,
				age_filter_max = EXCLUDED.age_filter_max,
				age_at_upload = EXCLUDED.age_at_upload,
				age_at_last_usage = EXCLUDED.age_at_last_usage,
				computed = EXCLUDED.computed,
				first_day_on_app = EXCLUDED.first_day_on_app,
				last_day_on_app = EXCLUDED.last_day_on_app,
				days_in_profile_period = EXCLUDED.days_in_profile_period,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *profileRepository) GetByID(id string) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select(profileColumns...).
		From(profilesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile, err := scanProfile(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) ListComputed() ([]*domain.Profile, error) {
	query, args, err := squirrel.
		Select(profileColumns...).
		From(profilesTable).
		Where(squirrel.Eq{"computed": true}).
		OrderBy("id ASC").
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

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := scanProfileRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perfis computados: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

// CountPopulation conta os perfis reais de um recorte demográfico
func (r *profileRepository) CountPopulation(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(profilesTable).
		Where(populationFilter(gender, interestedIn, minBirthDate, maxBirthDate)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar população: %w", err)
	}

	return count, nil
}

// AggregateAttributes calcula as médias populacionais dos atributos de perfil
// de um recorte demográfico diretamente no banco
func (r *profileRepository) AggregateAttributes(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) (*domain.ProfileAggregates, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(AVG(age_filter_min), 0)",
			"COALESCE(AVG(age_filter_max), 0)",
			"COALESCE(AVG(age_at_upload), 0)",
			"COALESCE(AVG(age_at_last_usage), 0)",
		).
		From(profilesTable).
		Where(populationFilter(gender, interestedIn, minBirthDate, maxBirthDate)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregates := &domain.ProfileAggregates{}
	err = r.conn.QueryRow(query, args...).Scan(
		&aggregates.Count,
		&aggregates.AvgAgeFilterMin,
		&aggregates.AvgAgeFilterMax,
		&aggregates.AvgAgeAtUpload,
		&aggregates.AvgAgeAtLastUsage,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar atributos de perfil: %w", err)
	}

	return aggregates, nil
}

// ReplaceComputedDemographic substitui atomicamente o perfil computado de um
// bucket: apaga o perfil anterior (e seu uso diário) e recria tudo dentro de
// uma única transação. O prazo da transação vem do contexto do chamador.
func (r *profileRepository) ReplaceComputedDemographic(ctx context.Context, profile *domain.Profile, usageDays []domain.UsageDay) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteComputedProfile(tx, profile.ID); err != nil {
			return err
		}

		insertSQL, insertArgs, err := squirrel.
			Insert(profilesTable).
			Columns(
				"id", "gender", "interested_in", "birth_date",
				"age_filter_min", "age_filter_max", "age_at_upload", "age_at_last_usage",
				"computed", "first_day_on_app", "last_day_on_app", "days_in_profile_period",
			).
			Values(
				profile.ID,
				profile.Gender,
				profile.InterestedIn,
				profile.BirthDate,
				profile.AgeFilterMin,
				profile.AgeFilterMax,
				profile.AgeAtUpload,
				profile.AgeAtLastUsage,
				profile.Computed,
				profile.FirstDayOnApp,
				profile.LastDayOnApp,
				profile.DaysInProfilePeriod,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao criar perfil computado: %w", err)
		}

		return insertUsageDays(tx, usageDays, true)
	})
}

// DeleteComputed remove o perfil computado de um bucket e seu uso diário.
// Não encontrar o perfil não é erro.
func (r *profileRepository) DeleteComputed(ctx context.Context, id string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return deleteComputedProfile(tx, id)
	})
}

func deleteComputedProfile(q postgres.Queryer, id string) error {
	usageSQL, usageArgs, err := squirrel.
		Delete(usageDaysTable).
		Where(squirrel.Eq{"profile_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(usageSQL, usageArgs...); err != nil {
		return fmt.Errorf("erro ao apagar uso diário do perfil computado: %w", err)
	}

	profileSQL, profileArgs, err := squirrel.
		Delete(profilesTable).
		Where(squirrel.Eq{"id": id, "computed": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(profileSQL, profileArgs...); err != nil {
		return fmt.Errorf("erro ao apagar perfil computado: %w", err)
	}

	return nil
}

// populationFilter monta o filtro de população de um bucket: gênero,
// preferência e janela de nascimento, excluindo perfis computados
func populationFilter(gender, interestedIn domain.Gender, minBirthDate, maxBirthDate time.Time) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"gender": gender},
		squirrel.Eq{"interested_in": interestedIn},
		squirrel.Eq{"computed": false},
		squirrel.GtOrEq{"birth_date": minBirthDate},
		squirrel.LtOrEq{"birth_date": maxBirthDate},
	}
}

func scanProfile(row *sql.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var firstDay, lastDay sql.NullTime

	err := row.Scan(
		&profile.ID,
		&profile.Gender,
		&profile.InterestedIn,
		&profile.BirthDate,
		&profile.AgeFilterMin,
		&profile.AgeFilterMax,
		&profile.AgeAtUpload,
		&profile.AgeAtLastUsage,
		&profile.Computed,
		&firstDay,
		&lastDay,
		&profile.DaysInProfilePeriod,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	applyNullableDays(profile, firstDay, lastDay)
	return profile, nil
}

func scanProfileRows(rows *sql.Rows) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var firstDay, lastDay sql.NullTime

	err := rows.Scan(
		&profile.ID,
		&profile.Gender,
		&profile.InterestedIn,
		&profile.BirthDate,
		&profile.AgeFilterMin,
		&profile.AgeFilterMax,
		&profile.AgeAtUpload,
		&profile.AgeAtLastUsage,
		&profile.Computed,
		&firstDay,
		&lastDay,
		&profile.DaysInProfilePeriod,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	applyNullableDays(profile, firstDay, lastDay)
	return profile, nil
}

func applyNullableDays(profile *domain.Profile, firstDay, lastDay sql.NullTime) {
	if firstDay.Valid {
		profile.FirstDayOnApp = &firstDay.Time
	}
	if lastDay.Valid {
		profile.LastDayOnApp = &lastDay.Time
	}
}
