package controllers

import (
	"github.com/cecepns/nature-coffee/pkg/resp"
	"github.com/cecepns/nature-coffee/services"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /api/dashboard/stats
func (ctl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctl.Svc.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
