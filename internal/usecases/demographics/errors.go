package demographics

import (
	"fmt"

	"github.com/swipelytics/insights-api/internal/domain"
)

// BucketError envolve qualquer falha ocorrida durante o ciclo
// computar-e-persistir de um bucket, carregando a identidade do bucket.
// É capturado na fronteira do bucket: o driver do lote registra e segue
// para o próximo bucket.
type BucketError struct {
	Bucket domain.DemographicBucket
	Err    error
}

// Error implementa a interface error
func (e *BucketError) Error() string {
	return fmt.Sprintf("bucket %s: %v", e.Bucket.ID(), e.Err)
}

// Unwrap retorna o erro subjacente
func (e *BucketError) Unwrap() error {
	return e.Err
}
