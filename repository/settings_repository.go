package repository

import (
	"errors"

	"github.com/cecepns/nature-coffee/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// FindLatest returns the authoritative settings row (highest id), or
// gorm.ErrRecordNotFound when nothing has been saved yet.
func (r *SettingsRepository) FindLatest() (*entity.Settings, error) {
	var s entity.Settings
	if err := r.DB.Order("id DESC").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the singleton inside one transaction: update the existing
// row if there is one, insert otherwise. The transaction closes the race
// a bare check-then-write would have between two concurrent updates.
func (r *SettingsRepository) Upsert(s *entity.Settings) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.Settings
		err := tx.Order("id DESC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(s).Error
		}
		if err != nil {
			return err
		}

		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
		return tx.Save(s).Error
	})
}
