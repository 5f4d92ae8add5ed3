package models

import (
	"time"
)

type Customer struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;not null"`
	Email     string  `gorm:"size:255;not null"`
	Orders    []Order `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CustomerDto struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
