package seeders

import (
	"context"
	"log"
	"math/rand"

	"orderdesk/app/db/fakers"
	"orderdesk/app/repositories"
	"orderdesk/app/utils/format"

	"gorm.io/gorm"
)

// DBSeed populates a sample catalog, customers and an order history, then
// recomputes every order's totals.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	itemRepo := repositories.NewOrderItemRepository(db)

	categories := fakers.CategoryFakers()
	for i := range categories {
		if err := categoryRepo.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	products := make([]uint, 0, 8)
	for i := 0; i < 8; i++ {
		product := fakers.ProductFaker(i)
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		category := categories[rand.Intn(len(categories))]
		if err := categoryRepo.LinkProduct(ctx, category.ID, product.ID); err != nil {
			return err
		}
		products = append(products, product.ID)
		log.Printf("DBSeed: product %q (%s) at %s", product.Name, product.Sku, format.Money(product.Price))
	}

	for i := 0; i < 4; i++ {
		customer := fakers.CustomerFaker(i)
		if err := customerRepo.Create(ctx, customer); err != nil {
			return err
		}

		for o := 0; o < rand.Intn(3)+1; o++ {
			order := fakers.OrderFaker(customer.ID)
			if err := orderRepo.Create(ctx, order); err != nil {
				return err
			}

			for n := 0; n < rand.Intn(4)+1; n++ {
				productID := products[rand.Intn(len(products))]
				product, err := productRepo.GetByID(ctx, productID)
				if err != nil {
					return err
				}
				item := fakers.OrderItemFaker(order.ID, productID, product.Price)
				if err := itemRepo.Create(ctx, item); err != nil {
					return err
				}
			}

			if err := orderRepo.RecalculateTotals(ctx, order.ID); err != nil {
				return err
			}

			seeded, err := orderRepo.GetByID(ctx, order.ID)
			if err != nil {
				return err
			}
			log.Printf("DBSeed: order %d for %s, total %s (+ %s %s)", seeded.ID, seeded.Customer.Name, format.Money(seeded.Total), format.Money(seeded.Tax), seeded.TaxDesc)
		}
	}

	return nil
}
