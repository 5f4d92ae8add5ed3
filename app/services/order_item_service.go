package services

import (
	"context"
	"fmt"

	"orderdesk/app/models"
	"orderdesk/app/repositories"

	"gorm.io/gorm"
)

type OrderItemService interface {
	Crud[models.OrderItemDto]
}

type orderItemService struct {
	db       *gorm.DB
	itemRepo repositories.OrderItemRepository
}

func NewOrderItemService(db *gorm.DB) OrderItemService {
	return &orderItemService{
		db:       db,
		itemRepo: repositories.NewOrderItemRepository(db),
	}
}

func (s *orderItemService) List(ctx context.Context) ([]models.OrderItemDto, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	dtos := make([]models.OrderItemDto, 0, len(items))
	for _, item := range items {
		dto, err := projectOrderItem(item)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *orderItemService) Find(ctx context.Context, id uint) (*models.OrderItemDto, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order item: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	dto, err := projectOrderItem(*item)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Add validates both foreign keys in the same transaction as the
// insert, so a concurrent delete of the product or order cannot slip in
// between validation and write.
func (s *orderItemService) Add(ctx context.Context, dto models.OrderItemDto) ServiceResponse {
	var resp ServiceResponse
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := repositories.NewProductRepository(tx).GetByID(ctx, dto.ProductID)
		if err != nil {
			return err
		}
		order, err := repositories.NewOrderRepository(tx).GetByID(ctx, dto.OrderID)
		if err != nil {
			return err
		}
		if product == nil || order == nil {
			resp = notFound("product or order not found")
			return nil
		}

		// UnitPrice is a point-in-time capture taken verbatim from input,
		// never recomputed from the product's current price.
		item := models.OrderItem{
			UnitPrice: dto.UnitPrice,
			Qty:       dto.Qty,
			ProductID: dto.ProductID,
			OrderID:   dto.OrderID,
		}
		if err := repositories.NewOrderItemRepository(tx).Create(ctx, &item); err != nil {
			return err
		}
		if err := repositories.NewOrderRepository(tx).RecalculateTotals(ctx, dto.OrderID); err != nil {
			return err
		}

		resp = created(item.ID)
		return nil
	})
	if txErr != nil {
		return storeError("adding order item", txErr)
	}
	return resp
}

func (s *orderItemService) Update(ctx context.Context, id uint, dto models.OrderItemDto) ServiceResponse {
	// id in path must match id in body, checked before any store access.
	if id != dto.ID {
		return badRequest("order item id mismatch")
	}

	var resp ServiceResponse
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itemRepo := repositories.NewOrderItemRepository(tx)
		orderRepo := repositories.NewOrderRepository(tx)

		// Re-fetched inside the transaction: a row deleted concurrently
		// surfaces here as NotFound rather than as a failed update.
		existing, err := itemRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			resp = notFound(fmt.Sprintf("order item %d not found", id))
			return nil
		}

		// The update may move the item to another order or product, so
		// both foreign keys are validated again.
		product, err := repositories.NewProductRepository(tx).GetByID(ctx, dto.ProductID)
		if err != nil {
			return err
		}
		order, err := orderRepo.GetByID(ctx, dto.OrderID)
		if err != nil {
			return err
		}
		if product == nil || order == nil {
			resp = notFound("product or order not found")
			return nil
		}

		previousOrderID := existing.OrderID

		// Wholesale replacement of the record, not a field-level patch.
		item := models.OrderItem{
			ID:        id,
			UnitPrice: dto.UnitPrice,
			Qty:       dto.Qty,
			ProductID: dto.ProductID,
			OrderID:   dto.OrderID,
			CreatedAt: existing.CreatedAt,
		}
		if err := itemRepo.Update(ctx, &item); err != nil {
			return err
		}

		if err := orderRepo.RecalculateTotals(ctx, dto.OrderID); err != nil {
			return err
		}
		if previousOrderID != dto.OrderID {
			if err := orderRepo.RecalculateTotals(ctx, previousOrderID); err != nil {
				return err
			}
		}

		resp = success()
		return nil
	})
	if txErr != nil {
		return storeError("updating order item", txErr)
	}
	return resp
}

// Delete never cascades to the item's order or product. Deleting
// an already-deleted id stays NotFound.
func (s *orderItemService) Delete(ctx context.Context, id uint) ServiceResponse {
	var resp ServiceResponse
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itemRepo := repositories.NewOrderItemRepository(tx)
		existing, err := itemRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			resp = notFound(fmt.Sprintf("order item %d not found", id))
			return nil
		}

		if err := itemRepo.Delete(ctx, id); err != nil {
			return err
		}
		if err := repositories.NewOrderRepository(tx).RecalculateTotals(ctx, existing.OrderID); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if txErr != nil {
		return storeError("deleting order item", txErr)
	}
	return resp
}
