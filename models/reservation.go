package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation rows are never deleted through the API; cancellation is a
// status change so the history stays listable.
type Reservation struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Date         string            `gorm:"type:varchar(10);not null" json:"date"`
	Time         string            `gorm:"type:varchar(5);not null" json:"time"`
	Guests       int               `gorm:"not null" json:"guests"`
	Status       ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes        string            `gorm:"type:text" json:"notes"`
	UserID       uint              `gorm:"not null;index" json:"user_id"`
	User         User              `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RestaurantID uint              `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant        `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (r *Reservation) Cancelled() bool {
	return r.Status == ReservationCancelled
}
