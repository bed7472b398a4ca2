package domain

import "fmt"

// AgeRange é um intervalo fechado de idades em anos, com um rótulo humano
// (ex.: "25-34" ou o coringa "all" = [18, 100])
type AgeRange struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// DemographicBucket identifica um recorte demográfico: a combinação de
// gênero, preferência e faixa etária para a qual um perfil médio é gerado
type DemographicBucket struct {
	Gender       Gender   `json:"gender"`
	InterestedIn Gender   `json:"interested_in"`
	AgeRange     AgeRange `json:"age_range"`
}

// ID retorna o identificador sintético e determinístico do bucket.
// Reexecuções produzem sempre o mesmo ID, o que permite a substituição
// idempotente do perfil computado a cada rodada do agregador.
func (b DemographicBucket) ID() string {
	return fmt.Sprintf("average-%s-%s-%s", b.Gender, b.InterestedIn, b.AgeRange.Label)
}

// String identifica o bucket em logs e erros
func (b DemographicBucket) String() string {
	return b.ID()
}
