package services

import (
	"context"
	"fmt"

	"orderdesk/app/models"
	"orderdesk/app/repositories"

	"gorm.io/gorm"
)

type CustomerService interface {
	Crud[models.CustomerDto]
}

type customerService struct {
	db           *gorm.DB
	customerRepo repositories.CustomerRepositoryImpl
}

func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{
		db:           db,
		customerRepo: repositories.NewCustomerRepository(db),
	}
}

func (s *customerService) List(ctx context.Context) ([]models.CustomerDto, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	dtos := make([]models.CustomerDto, 0, len(customers))
	for _, customer := range customers {
		dtos = append(dtos, projectCustomer(customer))
	}
	return dtos, nil
}

func (s *customerService) Find(ctx context.Context, id uint) (*models.CustomerDto, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, nil
	}
	dto := projectCustomer(*customer)
	return &dto, nil
}

func (s *customerService) Add(ctx context.Context, dto models.CustomerDto) ServiceResponse {
	customer := models.Customer{Name: dto.Name, Email: dto.Email}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repositories.NewCustomerRepository(tx).Create(ctx, &customer)
	})
	if err != nil {
		return storeError("adding customer", err)
	}
	return created(customer.ID)
}

func (s *customerService) Update(ctx context.Context, id uint, dto models.CustomerDto) ServiceResponse {
	if id != dto.ID {
		return badRequest("customer id mismatch")
	}

	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCustomerRepository(tx)
		customer, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			resp = notFound(fmt.Sprintf("customer %d not found", id))
			return nil
		}

		customer.Name = dto.Name
		customer.Email = dto.Email
		if err := repo.Update(ctx, customer); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("updating customer", err)
	}
	return resp
}

func (s *customerService) Delete(ctx context.Context, id uint) ServiceResponse {
	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCustomerRepository(tx)
		customer, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			resp = notFound(fmt.Sprintf("customer %d not found", id))
			return nil
		}

		// Orders reference the customer; deleting would orphan them.
		orderCount, err := repo.CountOrders(ctx, id)
		if err != nil {
			return err
		}
		if orderCount > 0 {
			resp = conflict(fmt.Sprintf("customer %d has %d order(s)", id, orderCount))
			return nil
		}

		if err := repo.Delete(ctx, id); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("deleting customer", err)
	}
	return resp
}
