package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID uint `gorm:"primaryKey"`

	// Unit price at time of purchase, independent of the product's
	// current price.
	UnitPrice decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Qty       int             `gorm:"not null"`

	// An order item belongs to one order.
	OrderID uint  `gorm:"not null;index"`
	Order   Order `gorm:"foreignKey:OrderID"`

	// An order item belongs to one product.
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal is derived, never stored.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Qty)))
}

type OrderItemDto struct {
	ID           uint            `json:"id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Qty          int             `json:"qty" validate:"required,gt=0"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ProductID    uint            `json:"product_id" validate:"required"`
	ProductSku   string          `json:"product_sku"`
	OrderID      uint            `json:"order_id" validate:"required"`
	OrderDate    string          `json:"order_date"`
	CustomerName string          `json:"customer_name"`
}
