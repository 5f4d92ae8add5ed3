package services

import (
	"context"
	"fmt"

	"orderdesk/app/models"
	"orderdesk/app/repositories"

	"gorm.io/gorm"
)

type ProductService interface {
	Crud[models.ProductDto]
}

type productService struct {
	db          *gorm.DB
	productRepo repositories.ProductRepositoryImpl
}

func NewProductService(db *gorm.DB) ProductService {
	return &productService{
		db:          db,
		productRepo: repositories.NewProductRepository(db),
	}
}

func (s *productService) List(ctx context.Context) ([]models.ProductDto, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	dtos := make([]models.ProductDto, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, projectProduct(product))
	}
	return dtos, nil
}

func (s *productService) Find(ctx context.Context, id uint) (*models.ProductDto, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, nil
	}
	dto := projectProduct(*product)
	return &dto, nil
}

func (s *productService) Add(ctx context.Context, dto models.ProductDto) ServiceResponse {
	product := models.Product{Name: dto.Name, Sku: dto.Sku, Price: dto.Price}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repositories.NewProductRepository(tx).Create(ctx, &product)
	})
	if err != nil {
		return storeError("adding product", err)
	}
	return created(product.ID)
}

func (s *productService) Update(ctx context.Context, id uint, dto models.ProductDto) ServiceResponse {
	if id != dto.ID {
		return badRequest("product id mismatch")
	}

	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewProductRepository(tx)
		product, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			resp = notFound(fmt.Sprintf("product %d not found", id))
			return nil
		}

		product.Name = dto.Name
		product.Sku = dto.Sku
		product.Price = dto.Price
		if err := repo.Update(ctx, product); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("updating product", err)
	}
	return resp
}

func (s *productService) Delete(ctx context.Context, id uint) ServiceResponse {
	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewProductRepository(tx)
		product, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			resp = notFound(fmt.Sprintf("product %d not found", id))
			return nil
		}

		// Order items capture the price at time of purchase; deleting the
		// product out from under them would orphan that history.
		itemCount, err := repo.CountOrderItems(ctx, id)
		if err != nil {
			return err
		}
		if itemCount > 0 {
			resp = conflict(fmt.Sprintf("product %d is referenced by %d order item(s)", id, itemCount))
			return nil
		}

		if err := repo.ClearCategories(ctx, id); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("deleting product", err)
	}
	return resp
}
