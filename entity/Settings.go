package entity

import "time"

// Settings is a logical singleton: reads take the most recent row by id,
// writes upsert against it.
type Settings struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	AboutUs   string `gorm:"type:text" json:"about_us"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Tiktok    string `json:"tiktok"`
	MapsURL   string `gorm:"column:maps_url" json:"maps_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
