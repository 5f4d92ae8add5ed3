package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Province is the Canadian province an order is taxed in.
type Province string

const (
	ProvinceON Province = "ON"
	ProvinceQC Province = "QC"
	ProvinceNS Province = "NS"
	ProvinceNB Province = "NB"
	ProvinceMB Province = "MB"
	ProvinceBC Province = "BC"
	ProvincePE Province = "PE"
	ProvinceSK Province = "SK"
	ProvinceAB Province = "AB"
	ProvinceNL Province = "NL"
)

type Order struct {
	ID        uint            `gorm:"primaryKey"`
	OrderDate time.Time       `gorm:"not null"`
	Province  Province        `gorm:"size:2;not null"`
	Total     decimal.Decimal `gorm:"type:decimal(16,2)"`
	Tax       decimal.Decimal `gorm:"type:decimal(16,2)"`
	TaxDesc   string          `gorm:"size:100"`

	// Each order belongs to one customer.
	CustomerID uint     `gorm:"not null;index"`
	Customer   Customer `gorm:"foreignKey:CustomerID"`

	// An order can have many items.
	OrderItems []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderDto struct {
	ID           uint            `json:"id"`
	OrderDate    string          `json:"order_date" validate:"required"`
	Province     Province        `json:"province" validate:"required,oneof=ON QC NS NB MB BC PE SK AB NL"`
	Total        decimal.Decimal `json:"total"`
	Tax          decimal.Decimal `json:"tax"`
	TaxDesc      string          `json:"tax_desc"`
	CustomerID   uint            `json:"customer_id" validate:"required"`
	CustomerName string          `json:"customer_name"`
}
