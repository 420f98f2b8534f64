package models

import "time"

type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Address     string    `gorm:"type:varchar(200);not null" json:"address"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	Description string    `gorm:"type:text" json:"description"`
	OpenTime    string    `gorm:"type:varchar(5);not null" json:"open_time"`
	CloseTime   string    `gorm:"type:varchar(5);not null" json:"close_time"`
	AdminID     uint      `gorm:"not null;index" json:"admin_id"`
	Admin       User      `gorm:"foreignKey:AdminID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
