package configs

import (
	"fmt"

	"github.com/cecepns/nature-coffee/entity"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store named by the config. SQLite covers local
// development and tests; MySQL is the deployment target.
func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuItem{},
		&entity.CoffeeBean{},
		&entity.GalleryItem{},
		&entity.Reservation{},
		&entity.Settings{},
	)
}
