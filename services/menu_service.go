package services

import (
	"log"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"github.com/cecepns/nature-coffee/repository"
	"github.com/cecepns/nature-coffee/storage"
)

type MenuService struct {
	Repo   *repository.MenuRepository
	Images storage.ImageStore
}

func NewMenuService(repo *repository.MenuRepository, images storage.ImageStore) *MenuService {
	return &MenuService{Repo: repo, Images: images}
}

func (s *MenuService) ListPage(p pagination.Params) ([]entity.MenuItem, int64, error) {
	return s.Repo.FindPage(p)
}

func (s *MenuService) ListPublic(limit int, favoritesOnly bool) ([]entity.MenuItem, error) {
	return s.Repo.FindPublic(limit, favoritesOnly)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem) error {
	return s.Repo.Update(item)
}

// Delete removes the row and then best-effort deletes the backing image
// file. A failed file removal never fails the delete.
func (s *MenuService) Delete(id uint) error {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if item.Image != nil {
		if err := s.Images.Remove(*item.Image); err != nil {
			log.Printf("remove menu image %s: %v", *item.Image, err)
		}
	}
	return nil
}
