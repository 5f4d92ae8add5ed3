package services

import (
	"context"
	"fmt"

	"orderdesk/app/models"
	"orderdesk/app/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	Crud[models.CategoryDto]
	ListForProduct(ctx context.Context, productID uint) ([]models.CategoryDto, error)
	LinkToProduct(ctx context.Context, categoryID, productID uint) ServiceResponse
	UnlinkFromProduct(ctx context.Context, categoryID, productID uint) ServiceResponse
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{
		db:           db,
		categoryRepo: repositories.NewCategoryRepository(db),
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.CategoryDto, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	dtos := make([]models.CategoryDto, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, projectCategory(category))
	}
	return dtos, nil
}

func (s *categoryService) Find(ctx context.Context, id uint) (*models.CategoryDto, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, nil
	}
	dto := projectCategory(*category)
	return &dto, nil
}

func (s *categoryService) Add(ctx context.Context, dto models.CategoryDto) ServiceResponse {
	category := models.Category{Name: dto.Name, Color: dto.Color}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repositories.NewCategoryRepository(tx).Create(ctx, &category)
	})
	if err != nil {
		return storeError("adding category", err)
	}
	return created(category.ID)
}

func (s *categoryService) Update(ctx context.Context, id uint, dto models.CategoryDto) ServiceResponse {
	// id in path must match id in body, checked before any store access.
	if id != dto.ID {
		return badRequest("category id mismatch")
	}

	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCategoryRepository(tx)
		category, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			resp = notFound(fmt.Sprintf("category %d not found", id))
			return nil
		}

		category.Name = dto.Name
		category.Color = dto.Color
		if err := repo.Update(ctx, category); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("updating category", err)
	}
	return resp
}

func (s *categoryService) Delete(ctx context.Context, id uint) ServiceResponse {
	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCategoryRepository(tx)
		category, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			resp = notFound(fmt.Sprintf("category %d not found", id))
			return nil
		}

		// Product links go with the category; they have no identity of
		// their own.
		if err := repo.ClearProducts(ctx, id); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("deleting category", err)
	}
	return resp
}

func (s *categoryService) ListForProduct(ctx context.Context, productID uint) ([]models.CategoryDto, error) {
	// An unknown product yields an empty listing, not an error; callers
	// that care check product existence separately.
	categories, err := s.categoryRepo.GetForProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for product: %w", err)
	}

	dtos := make([]models.CategoryDto, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, projectCategory(category))
	}
	return dtos, nil
}

func (s *categoryService) LinkToProduct(ctx context.Context, categoryID, productID uint) ServiceResponse {
	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCategoryRepository(tx)
		productRepo := repositories.NewProductRepository(tx)

		category, err := repo.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if category == nil || product == nil {
			resp = notFound("category or product not found")
			return nil
		}

		if err := repo.LinkProduct(ctx, categoryID, productID); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("linking category to product", err)
	}
	return resp
}

func (s *categoryService) UnlinkFromProduct(ctx context.Context, categoryID, productID uint) ServiceResponse {
	var resp ServiceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCategoryRepository(tx)
		productRepo := repositories.NewProductRepository(tx)

		category, err := repo.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if category == nil || product == nil {
			resp = notFound("category or product not found")
			return nil
		}

		// Unlinking a pair that is not linked is a no-op, mirroring the
		// idempotency of the link side.
		if err := repo.UnlinkProduct(ctx, categoryID, productID); err != nil {
			return err
		}

		resp = success()
		return nil
	})
	if err != nil {
		return storeError("unlinking category from product", err)
	}
	return resp
}
