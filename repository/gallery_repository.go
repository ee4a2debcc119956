package repository

import (
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) FindPage(p pagination.Params) ([]entity.GalleryItem, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.GalleryItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []entity.GalleryItem{}
	err := r.DB.
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}

// FindPublic returns active items, newest first. limit <= 0 means no cap;
// the public gallery page shows everything.
func (r *GalleryRepository) FindPublic(limit int) ([]entity.GalleryItem, error) {
	q := r.DB.Where("is_active = ?", true).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	items := []entity.GalleryItem{}
	err := q.Find(&items).Error
	return items, err
}

func (r *GalleryRepository) FindByID(id uint) (*entity.GalleryItem, error) {
	var item entity.GalleryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) Create(item *entity.GalleryItem) error {
	return r.DB.Create(item).Error
}

func (r *GalleryRepository) Update(item *entity.GalleryItem) error {
	return r.DB.Save(item).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.GalleryItem{}, id).Error
}

func (r *GalleryRepository) CountActive() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.GalleryItem{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}
