package entity

import "time"

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `json:"category"` // free-text tag, e.g. "coffee", "pastry"
	Image       *string `json:"image"`

	IsAvailable bool `json:"is_available"`
	IsFavorite  bool `json:"is_favorite"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
