package demographics

import "github.com/swipelytics/insights-api/internal/domain"

// Faixas etárias dos buckets demográficos. A tabela é estática: os buckets
// são definidos por configuração, nunca derivados dos dados. O coringa "all"
// cobre toda a população adulta.
var (
	catchAllAgeRange = domain.AgeRange{Label: "all", Min: 18, Max: 100}

	fullAgeRanges = []domain.AgeRange{
		{Label: "18-24", Min: 18, Max: 24},
		{Label: "25-34", Min: 25, Max: 34},
		{Label: "35-44", Min: 35, Max: 44},
		{Label: "45-54", Min: 45, Max: 54},
		{Label: "55-64", Min: 55, Max: 64},
		{Label: "65-74", Min: 65, Max: 74},
		{Label: "75-84", Min: 75, Max: 84},
		{Label: "85-100", Min: 85, Max: 100},
		catchAllAgeRange,
	}

	fullGenders       = []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
	simplifiedGenders = []domain.Gender{domain.GenderMale, domain.GenderFemale}
)

// FullBuckets retorna os 81 buckets do modo completo: 3 gêneros × 3
// preferências × 9 faixas etárias, na ordem de processamento (gênero →
// preferência → faixa)
func FullBuckets() []domain.DemographicBucket {
	return combineBuckets(fullGenders, fullGenders, fullAgeRanges)
}

// SimplifiedBuckets retorna os 4 buckets do modo simplificado: 2 gêneros ×
// 2 preferências × faixa coringa
func SimplifiedBuckets() []domain.DemographicBucket {
	return combineBuckets(simplifiedGenders, simplifiedGenders, []domain.AgeRange{catchAllAgeRange})
}

func combineBuckets(genders, interests []domain.Gender, ageRanges []domain.AgeRange) []domain.DemographicBucket {
	buckets := make([]domain.DemographicBucket, 0, len(genders)*len(interests)*len(ageRanges))

	for _, gender := range genders {
		for _, interestedIn := range interests {
			for _, ageRange := range ageRanges {
				buckets = append(buckets, domain.DemographicBucket{
					Gender:       gender,
					InterestedIn: interestedIn,
					AgeRange:     ageRange,
				})
			}
		}
	}

	return buckets
}
