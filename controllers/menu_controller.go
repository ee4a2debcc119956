package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/pagination"
	"github.com/cecepns/nature-coffee/pkg/resp"
	"github.com/cecepns/nature-coffee/services"
	"github.com/cecepns/nature-coffee/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category"`
	Image       *string  `json:"image"`
	IsAvailable *bool    `json:"is_available"`
	IsFavorite  *bool    `json:"is_favorite"`
}

func (r *MenuRequest) toEntity() entity.MenuItem {
	item := entity.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Category:    "coffee",
		Image:       r.Image,
		IsAvailable: true,
		IsFavorite:  false,
	}
	if r.Category != "" {
		item.Category = r.Category
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	if r.IsFavorite != nil {
		item.IsFavorite = *r.IsFavorite
	}
	return item
}

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /api/menu
func (ctl *MenuController) List(c *gin.Context) {
	p := pagination.FromQuery(c)

	items, total, err := ctl.Svc.ListPage(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, items, p.MetaFor(total))
}

// GET /api/menu/public
// favorites_only=true (default): only favorite menus, for the landing page.
// favorites_only=false: every available menu, for the menu page.
func (ctl *MenuController) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	favoritesOnly := c.DefaultQuery("favorites_only", "true") == "true"

	items, err := ctl.Svc.ListPublic(limit, favoritesOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Name and price are required")
		return
	}

	item := req.toEntity()
	if err := ctl.Svc.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Menu item created successfully", gin.H{"id": item.ID})
}

// PUT /api/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Name and price are required")
		return
	}

	existing, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	item := req.toEntity()
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := ctl.Svc.Update(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Menu item updated successfully")
}

// DELETE /api/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Svc.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Menu item deleted successfully")
}

// POST /api/menu/upload
func (ctl *MenuController) Upload(c *gin.Context) {
	uploadImage(c, ctl.Svc.Images)
}

// uploadImage is the shared multipart handler behind every resource's
// upload route.
func uploadImage(c *gin.Context, images storage.ImageStore) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "No image file provided")
		return
	}

	filename, err := images.Save(file)
	if errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrUnsupportedType) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Image uploaded successfully",
		"filename": filename,
		"url":      images.URL(filename),
	})
}
