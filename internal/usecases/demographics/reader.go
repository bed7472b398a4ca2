package demographics

import (
	"errors"

	"github.com/swipelytics/insights-api/internal/domain"
)

// ErrDemographicNotFound indica que o perfil demográfico solicitado não existe
var ErrDemographicNotFound = errors.New("perfil demográfico não encontrado")

// Reader expõe a leitura dos perfis demográficos já sintetizados
type Reader interface {
	ListSyntheticProfiles() ([]*domain.Profile, error)
	GetSyntheticProfile(id string) (*domain.Profile, []*domain.UsageDay, error)
}

func (s *Service) ListSyntheticProfiles() ([]*domain.Profile, error) {
	return s.profileRepo.ListComputed()
}

// GetSyntheticProfile retorna o perfil médio do bucket e sua série de uso diário
func (s *Service) GetSyntheticProfile(id string) (*domain.Profile, []*domain.UsageDay, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil || !profile.Computed {
		return nil, nil, ErrDemographicNotFound
	}

	usageDays, err := s.usageRepo.ListByProfileID(id)
	if err != nil {
		return nil, nil, err
	}

	return profile, usageDays, nil
}
