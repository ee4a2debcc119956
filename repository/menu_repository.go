package repository

import (
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindPage returns one admin page, newest first, plus the total row count.
func (r *MenuRepository) FindPage(p pagination.Params) ([]entity.MenuItem, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.MenuItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []entity.MenuItem{}
	err := r.DB.
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}

// FindPublic returns available items, newest first, capped at limit.
// With favoritesOnly the result is further narrowed to favorites.
func (r *MenuRepository) FindPublic(limit int, favoritesOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Where("is_available = ?", true)
	if favoritesOnly {
		q = q.Where("is_favorite = ?", true)
	}

	items := []entity.MenuItem{}
	err := q.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) CountAvailable() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Where("is_available = ?", true).Count(&n).Error
	return n, err
}
