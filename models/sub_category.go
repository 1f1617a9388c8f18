package models

import "time"

type SubCategory struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ParentCategoryID uint      `gorm:"not null;index" json:"parent_category_id"`
	ParentCategory   *Category `gorm:"foreignKey:ParentCategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"parent_category,omitempty"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}
