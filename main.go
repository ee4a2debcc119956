package main

import (
	"fmt"
	"log"

	"github.com/cecepns/nature-coffee/configs"
	"github.com/cecepns/nature-coffee/routes"
	"github.com/cecepns/nature-coffee/storage"
	"github.com/cecepns/nature-coffee/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// uploaded images
	images, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	// admin event stream
	hub := ws.NewEventHub()
	go hub.Run()

	// HTTP
	r := gin.Default()

	// serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, images, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	log.Println("Upload directory:", cfg.UploadDir)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
