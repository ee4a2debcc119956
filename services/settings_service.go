package services

import (
	"errors"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/repository"
	"gorm.io/gorm"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

// Get returns the current settings, or a zero-valued object when nothing
// has been saved yet. Callers never see a not-found.
func (s *SettingsService) Get() (*entity.Settings, error) {
	settings, err := s.Repo.FindLatest()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Update(settings *entity.Settings) error {
	return s.Repo.Upsert(settings)
}
