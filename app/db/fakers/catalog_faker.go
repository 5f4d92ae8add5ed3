package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"orderdesk/app/models"

	"github.com/shopspring/decimal"
)

var categoryPool = []models.Category{
	{Name: "Hardware", Color: "#c0392b"},
	{Name: "Lighting", Color: "#f39c12"},
	{Name: "Outdoor", Color: "#27ae60"},
	{Name: "Clearance", Color: "#8e44ad"},
}

var productNames = []string{"Widget", "Sprocket", "Gasket", "Flange", "Bracket", "Coupler", "Grommet", "Spindle"}

var provinces = []models.Province{
	models.ProvinceON, models.ProvinceQC, models.ProvinceBC,
	models.ProvinceAB, models.ProvinceNS, models.ProvinceMB,
}

func CategoryFakers() []models.Category {
	categories := make([]models.Category, len(categoryPool))
	copy(categories, categoryPool)
	return categories
}

func ProductFaker(i int) *models.Product {
	name := productNames[i%len(productNames)]
	return &models.Product{
		Name:  name,
		Sku:   fmt.Sprintf("%s-%d", name[:1], i+1),
		Price: fakePrice(),
	}
}

func CustomerFaker(i int) *models.Customer {
	name := fmt.Sprintf("Customer %d", i+1)
	return &models.Customer{
		Name:  name,
		Email: fmt.Sprintf("customer%d@example.com", i+1),
	}
}

func OrderFaker(customerID uint) *models.Order {
	return &models.Order{
		OrderDate:  time.Now().AddDate(0, 0, -rand.Intn(90)),
		Province:   provinces[rand.Intn(len(provinces))],
		CustomerID: customerID,
	}
}

func OrderItemFaker(orderID, productID uint, unitPrice decimal.Decimal) *models.OrderItem {
	return &models.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		UnitPrice: unitPrice,
		Qty:       rand.Intn(5) + 1,
	}
}

func fakePrice() decimal.Decimal {
	cents := rand.Intn(20000) + 99
	return decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
}
