package repositories

import (
	"context"

	"orderdesk/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	GetForProduct(ctx context.Context, productID uint) ([]models.Category, error)
	LinkProduct(ctx context.Context, categoryID, productID uint) error
	UnlinkProduct(ctx context.Context, categoryID, productID uint) error
	ClearProducts(ctx context.Context, categoryID uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) GetForProduct(ctx context.Context, productID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Joins("JOIN product_categories pc ON pc.category_id = categories.id").
		Where("pc.product_id = ?", productID).
		Order("categories.id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// LinkProduct is idempotent: re-linking an existing pair is a no-op on the
// join table's composite key.
func (r *categoryRepository) LinkProduct(ctx context.Context, categoryID, productID uint) error {
	link := models.ProductCategory{ProductID: productID, CategoryID: categoryID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

func (r *categoryRepository) UnlinkProduct(ctx context.Context, categoryID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("category_id = ? AND product_id = ?", categoryID, productID).
		Delete(&models.ProductCategory{}).Error
}

func (r *categoryRepository) ClearProducts(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&models.ProductCategory{}).Error
}
