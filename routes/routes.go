package routes

import (
	"net/http"

	"github.com/cecepns/nature-coffee/configs"
	"github.com/cecepns/nature-coffee/controllers"
	"github.com/cecepns/nature-coffee/middlewares"
	"github.com/cecepns/nature-coffee/repository"
	"github.com/cecepns/nature-coffee/services"
	"github.com/cecepns/nature-coffee/storage"
	"github.com/cecepns/nature-coffee/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, images storage.ImageStore, hub *ws.EventHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
	})

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	beanRepo := repository.NewCoffeeBeanRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, images)
	beanSvc := services.NewCoffeeBeanService(beanRepo, images)
	gallerySvc := services.NewGalleryService(galleryRepo, images)
	reservationSvc := services.NewReservationService(reservationRepo, hub)
	settingsSvc := services.NewSettingsService(settingsRepo)
	dashboardSvc := services.NewDashboardService(menuRepo, beanRepo, galleryRepo, reservationRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	beanCtrl := controllers.NewCoffeeBeanController(beanSvc)
	galleryCtrl := controllers.NewGalleryController(gallerySvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	dashboardCtrl := controllers.NewDashboardController(dashboardSvc)

	api := r.Group("/api")
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	api.POST("/auth/login", authCtrl.Login)

	// Menu
	menu := api.Group("/menu")
	{
		menu.GET("/public", menuCtrl.ListPublic)
		menu.GET("/:id", menuCtrl.Get)

		menu.GET("", auth, menuCtrl.List)
		menu.POST("", auth, menuCtrl.Create)
		menu.PUT("/:id", auth, menuCtrl.Update)
		menu.DELETE("/:id", auth, menuCtrl.Delete)
		menu.POST("/upload", auth, menuCtrl.Upload)
	}

	// Coffee beans
	beans := api.Group("/coffee-beans")
	{
		beans.GET("/public", beanCtrl.ListPublic)
		beans.GET("/:id", beanCtrl.Get)

		beans.GET("", auth, beanCtrl.List)
		beans.POST("", auth, beanCtrl.Create)
		beans.PUT("/:id", auth, beanCtrl.Update)
		beans.DELETE("/:id", auth, beanCtrl.Delete)
		beans.POST("/upload", auth, beanCtrl.Upload)
	}

	// Gallery
	gallery := api.Group("/gallery")
	{
		gallery.GET("/public", galleryCtrl.ListPublic)
		gallery.GET("/:id", galleryCtrl.Get)

		gallery.GET("", auth, galleryCtrl.List)
		gallery.POST("", auth, galleryCtrl.Create)
		gallery.PUT("/:id", auth, galleryCtrl.Update)
		gallery.DELETE("/:id", auth, galleryCtrl.Delete)
		gallery.POST("/upload", auth, galleryCtrl.Upload)
	}

	// Reservations (create is public, the rest is admin)
	reservations := api.Group("/reservations")
	{
		reservations.POST("", reservationCtrl.Create)

		reservations.GET("", auth, reservationCtrl.List)
		reservations.GET("/:id", auth, reservationCtrl.Get)
		reservations.PUT("/:id", auth, reservationCtrl.Update)
		reservations.DELETE("/:id", auth, reservationCtrl.Delete)
	}

	// Settings
	api.GET("/settings", settingsCtrl.Get)
	api.PUT("/settings", auth, settingsCtrl.Update)

	// Dashboard
	api.GET("/dashboard/stats", auth, dashboardCtrl.Stats)

	// Admin live events (token via ?token= for browser websockets)
	r.GET("/ws/admin/events", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
