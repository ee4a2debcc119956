package services

import (
	"log"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"github.com/cecepns/nature-coffee/repository"
	"github.com/cecepns/nature-coffee/storage"
)

type CoffeeBeanService struct {
	Repo   *repository.CoffeeBeanRepository
	Images storage.ImageStore
}

func NewCoffeeBeanService(repo *repository.CoffeeBeanRepository, images storage.ImageStore) *CoffeeBeanService {
	return &CoffeeBeanService{Repo: repo, Images: images}
}

func (s *CoffeeBeanService) ListPage(p pagination.Params) ([]entity.CoffeeBean, int64, error) {
	return s.Repo.FindPage(p)
}

func (s *CoffeeBeanService) ListPublic(limit int) ([]entity.CoffeeBean, error) {
	return s.Repo.FindPublic(limit)
}

func (s *CoffeeBeanService) Get(id uint) (*entity.CoffeeBean, error) {
	return s.Repo.FindByID(id)
}

func (s *CoffeeBeanService) Create(bean *entity.CoffeeBean) error {
	return s.Repo.Create(bean)
}

func (s *CoffeeBeanService) Update(bean *entity.CoffeeBean) error {
	return s.Repo.Update(bean)
}

func (s *CoffeeBeanService) Delete(id uint) error {
	bean, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if bean.Image != nil {
		if err := s.Images.Remove(*bean.Image); err != nil {
			log.Printf("remove coffee bean image %s: %v", *bean.Image, err)
		}
	}
	return nil
}
