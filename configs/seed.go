package configs

import (
	"log"

	"github.com/cecepns/nature-coffee/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin provisions the first admin account. Admins are never created
// through the API, only here.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Email:    cfg.AdminEmail,
	}
	return db.Create(&admin).Error
}
