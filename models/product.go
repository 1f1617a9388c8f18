package models

import "time"

type Product struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	SubcategoryID uint         `gorm:"not null;index" json:"subcategory_id"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubcategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"subcategory,omitempty"`
	Name          string       `gorm:"type:varchar(255);not null" json:"name"`
	Price         float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	Description   *string      `gorm:"type:text" json:"description"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}
