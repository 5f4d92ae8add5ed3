package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Color     string    `gorm:"size:50;not null"`
	Products  []Product `gorm:"many2many:product_categories;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryDto struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
}
