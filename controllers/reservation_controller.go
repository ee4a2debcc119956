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

type ReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1"`
	Notes  string `json:"notes"`
	// only honored on admin updates; public creates always start pending
	Status string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (r *ReservationRequest) toEntity() entity.Reservation {
	res := entity.Reservation{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.Guests,
		Notes:  r.Notes,
		Status: entity.ReservationPending,
	}
	if r.Status != "" {
		res.Status = r.Status
	}
	return res
}

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

// GET /api/reservations
func (ctl *ReservationController) List(c *gin.Context) {
	p := pagination.FromQuery(c)

	reservations, total, err := ctl.Svc.ListPage(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, reservations, p.MetaFor(total))
}

// GET /api/reservations/:id
func (ctl *ReservationController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Reservation not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, res)
}

// POST /api/reservations (public)
func (ctl *ReservationController) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "All required fields must be provided")
		return
	}

	res := req.toEntity()
	if err := ctl.Svc.Create(&res); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Reservation created successfully", gin.H{"id": res.ID})
}

// PUT /api/reservations/:id
func (ctl *ReservationController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "All required fields must be provided")
		return
	}

	existing, err := ctl.Svc.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Reservation not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	res := req.toEntity()
	res.ID = existing.ID
	res.CreatedAt = existing.CreatedAt
	if err := ctl.Svc.Update(&res); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Reservation updated successfully")
}

// DELETE /api/reservations/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Svc.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Reservation not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Reservation deleted successfully")
}
