package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
)

// OrderStatuses lists the accepted statuses in display order.
var OrderStatuses = []OrderStatus{OrderPending, OrderConfirmed, OrderReady, OrderDelivered}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderReady, OrderDelivered:
		return true
	default:
		return false
	}
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PickupTime   time.Time   `gorm:"not null" json:"pickup_time"`
	Total        float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Notes        string      `gorm:"type:text" json:"notes"`
	UserID       uint        `gorm:"not null;index" json:"user_id"`
	User         User        `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
