package entity

import "time"

// Reservation statuses. Public clients never set a status; admins may
// overwrite any status with any other.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

type Reservation struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Email  string `gorm:"not null" json:"email"`
	Phone  string `gorm:"not null" json:"phone"`
	Date   string `gorm:"type:date;not null" json:"date"` // YYYY-MM-DD
	Time   string `gorm:"not null" json:"time"`           // HH:MM
	Guests int    `gorm:"not null" json:"guests"`
	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
