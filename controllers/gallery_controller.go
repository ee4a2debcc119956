package controllers

import (
	"errors"
	"strconv"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"github.com/cecepns/nature-coffee/pkg/resp"
	"github.com/cecepns/nature-coffee/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"is_active"`
}

func (r *GalleryRequest) toEntity() entity.GalleryItem {
	item := entity.GalleryItem{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		IsActive:    true,
	}
	if r.IsActive != nil {
		item.IsActive = *r.IsActive
	}
	return item
}

type GalleryController struct {
	Svc *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{Svc: svc}
}

// GET /api/gallery
func (ctl *GalleryController) List(c *gin.Context) {
	p := pagination.FromQuery(c)

	items, total, err := ctl.Svc.ListPage(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, items, p.MetaFor(total))
}

// GET /api/gallery/public
func (ctl *GalleryController) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0")) // 0 = everything

	items, err := ctl.Svc.ListPublic(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/gallery/:id
func (ctl *GalleryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Gallery item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/gallery
func (ctl *GalleryController) Create(c *gin.Context) {
	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		resp.BadRequest(c, "Title and image are required")
		return
	}

	item := req.toEntity()
	if err := ctl.Svc.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Gallery item created successfully", gin.H{"id": item.ID})
}

// PUT /api/gallery/:id
func (ctl *GalleryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Title is required")
		return
	}

	existing, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Gallery item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	item := req.toEntity()
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if item.Image == "" {
		item.Image = existing.Image
	}
	if err := ctl.Svc.Update(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Gallery item updated successfully")
}

// DELETE /api/gallery/:id
func (ctl *GalleryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Svc.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Gallery item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Gallery item deleted successfully")
}

// POST /api/gallery/upload
func (ctl *GalleryController) Upload(c *gin.Context) {
	uploadImage(c, ctl.Svc.Images)
}
