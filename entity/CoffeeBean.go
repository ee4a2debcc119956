package entity

import "time"

// Roast levels accepted at the API boundary.
const (
	RoastLight     = "Light"
	RoastMedium    = "Medium"
	RoastDark      = "Dark"
	RoastExtraDark = "Extra Dark"
)

type CoffeeBean struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Origin      string  `json:"origin"`
	RoastLevel  string  `json:"roast_level"`
	Weight      string  `json:"weight"`
	Image       *string `json:"image"`

	IsAvailable bool `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
