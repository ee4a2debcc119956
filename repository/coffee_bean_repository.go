package repository

import (
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"gorm.io/gorm"
)

type CoffeeBeanRepository struct {
	DB *gorm.DB
}

func NewCoffeeBeanRepository(db *gorm.DB) *CoffeeBeanRepository {
	return &CoffeeBeanRepository{DB: db}
}

func (r *CoffeeBeanRepository) FindPage(p pagination.Params) ([]entity.CoffeeBean, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.CoffeeBean{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	beans := []entity.CoffeeBean{}
	err := r.DB.
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&beans).Error
	return beans, total, err
}

func (r *CoffeeBeanRepository) FindPublic(limit int) ([]entity.CoffeeBean, error) {
	beans := []entity.CoffeeBean{}
	err := r.DB.
		Where("is_available = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&beans).Error
	return beans, err
}

func (r *CoffeeBeanRepository) FindByID(id uint) (*entity.CoffeeBean, error) {
	var bean entity.CoffeeBean
	if err := r.DB.First(&bean, id).Error; err != nil {
		return nil, err
	}
	return &bean, nil
}

func (r *CoffeeBeanRepository) Create(bean *entity.CoffeeBean) error {
	return r.DB.Create(bean).Error
}

func (r *CoffeeBeanRepository) Update(bean *entity.CoffeeBean) error {
	return r.DB.Save(bean).Error
}

func (r *CoffeeBeanRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.CoffeeBean{}, id).Error
}

func (r *CoffeeBeanRepository) CountAvailable() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.CoffeeBean{}).Where("is_available = ?", true).Count(&n).Error
	return n, err
}
