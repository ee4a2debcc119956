package services

import (
	"log"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"github.com/cecepns/nature-coffee/repository"
	"github.com/cecepns/nature-coffee/storage"
)

type GalleryService struct {
	Repo   *repository.GalleryRepository
	Images storage.ImageStore
}

func NewGalleryService(repo *repository.GalleryRepository, images storage.ImageStore) *GalleryService {
	return &GalleryService{Repo: repo, Images: images}
}

func (s *GalleryService) ListPage(p pagination.Params) ([]entity.GalleryItem, int64, error) {
	return s.Repo.FindPage(p)
}

func (s *GalleryService) ListPublic(limit int) ([]entity.GalleryItem, error) {
	return s.Repo.FindPublic(limit)
}

func (s *GalleryService) Get(id uint) (*entity.GalleryItem, error) {
	return s.Repo.FindByID(id)
}

func (s *GalleryService) Create(item *entity.GalleryItem) error {
	return s.Repo.Create(item)
}

func (s *GalleryService) Update(item *entity.GalleryItem) error {
	return s.Repo.Update(item)
}

func (s *GalleryService) Delete(id uint) error {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := s.Images.Remove(item.Image); err != nil {
		log.Printf("remove gallery image %s: %v", item.Image, err)
	}
	return nil
}
