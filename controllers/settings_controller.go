package controllers

import (
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/pkg/resp"
	"github.com/cecepns/nature-coffee/services"
	"github.com/gin-gonic/gin"
)

type SettingsRequest struct {
	AboutUs   string `json:"about_us"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Tiktok    string `json:"tiktok"`
	MapsURL   string `json:"maps_url"`
}

type SettingsController struct {
	Svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: svc}
}

// GET /api/settings (public)
func (ctl *SettingsController) Get(c *gin.Context) {
	settings, err := ctl.Svc.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /api/settings
// Missing fields become empty strings; there is no partial update.
func (ctl *SettingsController) Update(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid settings payload")
		return
	}

	settings := entity.Settings{
		AboutUs:   req.AboutUs,
		Address:   req.Address,
		Phone:     req.Phone,
		Instagram: req.Instagram,
		Tiktok:    req.Tiktok,
		MapsURL:   req.MapsURL,
	}
	if err := ctl.Svc.Update(&settings); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Settings updated successfully")
}
