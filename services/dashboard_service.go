package services

import (
	"time"

	"github.com/cecepns/nature-coffee/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardStats is the admin landing summary. There is no revenue field:
// nothing in the store can compute one.
type DashboardStats struct {
	TotalMenus        int64 `json:"totalMenus"`
	TotalCoffeeBeans  int64 `json:"totalCoffeeBeans"`
	TotalGallery      int64 `json:"totalGallery"`
	TotalReservations int64 `json:"totalReservations"`
	TodayReservations int64 `json:"todayReservations"`
}

type DashboardService struct {
	Menus        *repository.MenuRepository
	CoffeeBeans  *repository.CoffeeBeanRepository
	Gallery      *repository.GalleryRepository
	Reservations *repository.ReservationRepository
}

func NewDashboardService(
	menus *repository.MenuRepository,
	beans *repository.CoffeeBeanRepository,
	gallery *repository.GalleryRepository,
	reservations *repository.ReservationRepository,
) *DashboardService {
	return &DashboardService{
		Menus:        menus,
		CoffeeBeans:  beans,
		Gallery:      gallery,
		Reservations: reservations,
	}
}

// Stats runs the five count queries concurrently and assembles the
// summary. Any single failure fails the whole call.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	today := time.Now().Format("2006-01-02")

	var g errgroup.Group
	g.Go(func() (err error) {
		stats.TotalMenus, err = s.Menus.CountAvailable()
		return
	})
	g.Go(func() (err error) {
		stats.TotalCoffeeBeans, err = s.CoffeeBeans.CountAvailable()
		return
	})
	g.Go(func() (err error) {
		stats.TotalGallery, err = s.Gallery.CountActive()
		return
	})
	g.Go(func() (err error) {
		stats.TotalReservations, err = s.Reservations.CountAll()
		return
	})
	g.Go(func() (err error) {
		stats.TodayReservations, err = s.Reservations.CountByDate(today)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
