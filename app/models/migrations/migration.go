package migrations

import (
	"orderdesk/app/models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Category{}, &models.ProductCategory{}, &models.Order{}, &models.OrderItem{})
}
