package repository

import (
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) FindPage(p pagination.Params) ([]entity.Reservation, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Reservation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reservations := []entity.Reservation{}
	err := r.DB.
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&reservations).Error
	return reservations, total, err
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) Update(res *entity.Reservation) error {
	return r.DB.Save(res).Error
}

func (r *ReservationRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Reservation{}, id).Error
}

func (r *ReservationRepository) CountAll() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Reservation{}).Count(&n).Error
	return n, err
}

// CountByDate counts reservations booked for a given YYYY-MM-DD date.
func (r *ReservationRepository) CountByDate(date string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Reservation{}).Where("date = ?", date).Count(&n).Error
	return n, err
}
