package models

import "time"

type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	Address     string    `gorm:"type:varchar(255);not null" json:"address"`
	PhoneNumber string    `gorm:"type:varchar(50);not null" json:"phone_number"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
