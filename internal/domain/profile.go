package domain

import (
	"time"
)

// Gender representa o gênero de um perfil ou a preferência de interesse
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid verifica se o valor é um gênero conhecido
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Profile representa um perfil do app de namoro.
// Perfis reais são criados via upload de dados; perfis com Computed=true
// são gerados pelo agregador demográfico e representam a média de um bucket.
type Profile struct {
	ID                  string     `json:"id"`
	Gender              Gender     `json:"gender"`
	InterestedIn        Gender     `json:"interested_in"`
	BirthDate           time.Time  `json:"birth_date"`
	AgeFilterMin        int        `json:"age_filter_min"`
	AgeFilterMax        int        `json:"age_filter_max"`
	AgeAtUpload         int        `json:"age_at_upload"`
	AgeAtLastUsage      int        `json:"age_at_last_usage"`
	Computed            bool       `json:"computed"`
	FirstDayOnApp       *time.Time `json:"first_day_on_app,omitempty"`
	LastDayOnApp        *time.Time `json:"last_day_on_app,omitempty"`
	DaysInProfilePeriod int        `json:"days_in_profile_period"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// AgeAt calcula a idade do perfil em uma data específica
func (p *Profile) AgeAt(date time.Time) int {
	age := date.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(date) {
		age--
	}
	return age
}

// ProfileAggregates contém as médias populacionais dos atributos de perfil
// de um bucket demográfico, calculadas pelo banco de dados
type ProfileAggregates struct {
	Count             int
	AvgAgeFilterMin   float64
	AvgAgeFilterMax   float64
	AvgAgeAtUpload    float64
	AvgAgeAtLastUsage float64
}
