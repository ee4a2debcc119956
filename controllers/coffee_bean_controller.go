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

type CoffeeBeanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Origin      string   `json:"origin"`
	RoastLevel  string   `json:"roast_level" binding:"omitempty,oneof=Light Medium Dark 'Extra Dark'"`
	Weight      string   `json:"weight"`
	Image       *string  `json:"image"`
	IsAvailable *bool    `json:"is_available"`
}

func (r *CoffeeBeanRequest) toEntity() entity.CoffeeBean {
	bean := entity.CoffeeBean{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Origin:      r.Origin,
		RoastLevel:  entity.RoastMedium,
		Weight:      "1 kg",
		Image:       r.Image,
		IsAvailable: true,
	}
	if r.RoastLevel != "" {
		bean.RoastLevel = r.RoastLevel
	}
	if r.Weight != "" {
		bean.Weight = r.Weight
	}
	if r.IsAvailable != nil {
		bean.IsAvailable = *r.IsAvailable
	}
	return bean
}

type CoffeeBeanController struct {
	Svc *services.CoffeeBeanService
}

func NewCoffeeBeanController(svc *services.CoffeeBeanService) *CoffeeBeanController {
	return &CoffeeBeanController{Svc: svc}
}

// GET /api/coffee-beans
func (ctl *CoffeeBeanController) List(c *gin.Context) {
	p := pagination.FromQuery(c)

	beans, total, err := ctl.Svc.ListPage(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, beans, p.MetaFor(total))
}

// GET /api/coffee-beans/public
func (ctl *CoffeeBeanController) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	beans, err := ctl.Svc.ListPublic(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, beans)
}

// GET /api/coffee-beans/:id
func (ctl *CoffeeBeanController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	bean, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Coffee bean not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, bean)
}

// POST /api/coffee-beans
func (ctl *CoffeeBeanController) Create(c *gin.Context) {
	var req CoffeeBeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Name and price are required")
		return
	}

	bean := req.toEntity()
	if err := ctl.Svc.Create(&bean); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Coffee bean created successfully", gin.H{"id": bean.ID})
}

// PUT /api/coffee-beans/:id
func (ctl *CoffeeBeanController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CoffeeBeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Name and price are required")
		return
	}

	existing, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Coffee bean not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	bean := req.toEntity()
	bean.ID = existing.ID
	bean.CreatedAt = existing.CreatedAt
	if err := ctl.Svc.Update(&bean); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Coffee bean updated successfully")
}

// DELETE /api/coffee-beans/:id
func (ctl *CoffeeBeanController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Svc.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Coffee bean not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Coffee bean deleted successfully")
}

// POST /api/coffee-beans/upload
func (ctl *CoffeeBeanController) Upload(c *gin.Context) {
	uploadImage(c, ctl.Svc.Images)
}
