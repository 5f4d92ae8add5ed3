package repositories

import (
	"context"
	"fmt"

	"orderdesk/app/models"
	"orderdesk/app/utils/calc"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByCustomer(ctx context.Context, customerID uint) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uint) error
	DeleteItems(ctx context.Context, orderID uint) error
	RecalculateTotals(ctx context.Context, orderID uint) error
}

type OrderRepositoryImpl struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{DB: db}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Preload("Customer").First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).Preload("Customer").Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) GetByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Customer").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Order{}, "id = ?", id).Error
}

func (r *OrderRepositoryImpl) DeleteItems(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{}).Error
}

// RecalculateTotals rewrites the order's Total, Tax and TaxDesc from its
// current items and province. Items are summed in Go because decimal
// columns round-trip as strings.
func (r *OrderRepositoryImpl) RecalculateTotals(ctx context.Context, orderID uint) error {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		return fmt.Errorf("failed to load order %d: %w", orderID, err)
	}

	var items []models.OrderItem
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return fmt.Errorf("failed to load items for order %d: %w", orderID, err)
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}

	tax, desc := calc.TaxFor(order.Province, total)
	order.Total = total
	order.Tax = tax
	order.TaxDesc = desc

	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(&order).Error
}
