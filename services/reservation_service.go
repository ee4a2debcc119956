package services

import (
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"github.com/cecepns/nature-coffee/repository"
)

// ReservationPublisher receives newly created reservations, e.g. to push
// them to connected admin dashboards.
type ReservationPublisher interface {
	PublishReservation(res *entity.Reservation)
}

type ReservationService struct {
	Repo      *repository.ReservationRepository
	Publisher ReservationPublisher // optional
}

func NewReservationService(repo *repository.ReservationRepository, pub ReservationPublisher) *ReservationService {
	return &ReservationService{Repo: repo, Publisher: pub}
}

func (s *ReservationService) ListPage(p pagination.Params) ([]entity.Reservation, int64, error) {
	return s.Repo.FindPage(p)
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	return s.Repo.FindByID(id)
}

// Create stores a public reservation. The status is always forced to
// pending; whatever the client sent is ignored.
func (s *ReservationService) Create(res *entity.Reservation) error {
	res.Status = entity.ReservationPending
	if err := s.Repo.Create(res); err != nil {
		return err
	}
	if s.Publisher != nil {
		s.Publisher.PublishReservation(res)
	}
	return nil
}

func (s *ReservationService) Update(res *entity.Reservation) error {
	return s.Repo.Update(res)
}

func (s *ReservationService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
