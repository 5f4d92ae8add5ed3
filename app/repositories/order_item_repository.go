package repositories

import (
	"context"

	"orderdesk/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemRepository interface {
	Create(ctx context.Context, item *models.OrderItem) error
	GetByID(ctx context.Context, id uint) (*models.OrderItem, error)
	GetAll(ctx context.Context) ([]models.OrderItem, error)
	Update(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, id uint) error
}

type OrderItemRepositoryImpl struct {
	DB *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &OrderItemRepositoryImpl{DB: db}
}

func (r *OrderItemRepositoryImpl) Create(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

// GetByID joins the item with its product, order and the order's customer,
// which the projection layer requires.
func (r *OrderItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Preload("Order").
		Preload("Order.Customer").
		First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *OrderItemRepositoryImpl) GetAll(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Preload("Order").
		Preload("Order.Customer").
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the full record, not a field-level patch.
func (r *OrderItemRepositoryImpl) Update(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *OrderItemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.OrderItem{}, "id = ?", id).Error
}
