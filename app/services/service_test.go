package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"orderdesk/app/models"
	"orderdesk/app/models/migrations"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite store. The shared cache keeps
// the schema visible across pooled connections; the test name keeps stores
// isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: email}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name, sku, price string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Sku: sku, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCategory(t *testing.T, db *gorm.DB, name, color string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Color: color}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedOrder(t *testing.T, db *gorm.DB, customerID uint, province models.Province, date string) *models.Order {
	t.Helper()
	orderDate, err := time.Parse(dateLayout, date)
	require.NoError(t, err)
	order := &models.Order{OrderDate: orderDate, Province: province, CustomerID: customerID}
	require.NoError(t, db.Create(order).Error)
	return order
}

func seedOrderItem(t *testing.T, db *gorm.DB, orderID, productID uint, unitPrice string, qty int) *models.OrderItem {
	t.Helper()
	item := &models.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		UnitPrice: decimal.RequireFromString(unitPrice),
		Qty:       qty,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

var testCtx = context.Background()
