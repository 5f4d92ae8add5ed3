package services

import (
	"context"
	"fmt"
	"time"

	"orderdesk/app/models"
	"orderdesk/app/repositories"

	"gorm.io/gorm"
)

type OrderService interface {
	Crud[models.OrderDto]
	ListForCustomer(ctx context.Context, customerID uint) ([]models.OrderDto, error)
}

type orderService struct {
	db        *gorm.DB
	orderRepo repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{
		db:        db,
		orderRepo: repositories.NewOrderRepository(db),
	}
}

func (s *orderService) List(ctx context.Context) ([]models.OrderDto, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return projectOrders(orders)
}

func (s *orderService) Find(ctx context.Context, id uint) (*models.OrderDto, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	if order == nil {
		return nil, nil
	}
	dto, err := projectOrder(*order)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (s *orderService) ListForCustomer(ctx context.Context, customerID uint) ([]models.OrderDto, error) {
	orders, err := s.orderRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for customer: %w", err)
	}
	return projectOrders(orders)
}

func projectOrders(orders []models.Order) ([]models.OrderDto, error) {
	dtos := make([]models.OrderDto, 0, len(orders))
	for _, order := range orders {
		dto, err := projectOrder(order)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *orderService) Add(ctx context.Context, dto models.OrderDto) ServiceResponse {
	orderDate, err := time.Parse(dateLayout, dto.OrderDate)
	if err != nil {
		return badRequest(fmt.Sprintf("order date %q is not in YYYY-MM-DD form", dto.OrderDate))
	}

	var resp ServiceResponse
	order := models.Order{
		OrderDate:  orderDate,
		Province:   dto.Province,
		CustomerID: dto.CustomerID,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewOrderRepository(tx)
		customer, err := repositories.NewCustomerRepository(tx).GetByID(ctx, dto.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			resp = notFound(fmt.Sprintf("customer %d not found", dto.CustomerID))
			return nil
		}

		if err := repo.Create(ctx, &order); err != nil {
			return err
		}
		// A new order has no items yet; this seeds Total/Tax/TaxDesc for
		// the order's province.
		if err := repo.RecalculateTotals(ctx, order.ID); err != nil {
			return err
		}

		resp = created(order.ID)
		return nil
	})
	if txErr != nil {
		return storeError("adding order", txErr)
	}
	return resp
}

func (s *orderService) Update(ctx context.Context, id uint, dto models.OrderDto) ServiceResponse {
	if id != dto.ID {
		return badRequest("order id mismatch")
	}
	orderDate, err := time.Parse(dateLayout, dto.OrderDate)
	if err != nil {
		return badRequest(fmt.Sprintf("order date %q is not in YYYY-MM-DD form", dto.OrderDate))
	}

	var resp ServiceResponse
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewOrderRepository(tx)
		order, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			resp = notFound(fmt.Sprintf("order %d not found", id))
			return nil
		}

		// An update may move the order to another customer.
		customer, err := repositories.NewCustomerRepository(tx).GetByID(ctx, dto.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			resp = notFound(fmt.Sprintf("customer %d not found", dto.CustomerID))
			return nil
		}

		order.OrderDate = orderDate
		order.Province = dto.Province
		order.CustomerID = dto.CustomerID
		if err := repo.Update(ctx, order); err != nil {
			return err
		}
		// The province may have changed, so the tax has too.
		if err := repo.RecalculateTotals(ctx, id); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if txErr != nil {
		return storeError("updating order", txErr)
	}
	return resp
}

func (s *orderService) Delete(ctx context.Context, id uint) ServiceResponse {
	var resp ServiceResponse
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewOrderRepository(tx)
		order, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			resp = notFound(fmt.Sprintf("order %d not found", id))
			return nil
		}

		// Items are owned by their order and go with it.
		if err := repo.DeleteItems(ctx, id); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if txErr != nil {
		return storeError("deleting order", txErr)
	}
	return resp
}
