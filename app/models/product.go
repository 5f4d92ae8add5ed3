package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:255;not null"`
	Sku        string          `gorm:"size:100"`
	Price      decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Categories []Category      `gorm:"many2many:product_categories;"`
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductCategory is the join record for the Category<->Product relation.
// It has no identity beyond the referenced pair.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
	CreatedAt  time.Time
}

type ProductDto struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name" validate:"required"`
	Sku   string          `json:"sku" validate:"required"`
	Price decimal.Decimal `json:"price"`
}
