package services

import (
	"testing"
	"time"

	"orderdesk/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectOrderItemRequiresRelations(t *testing.T) {
	item := models.OrderItem{
		ID:        1,
		UnitPrice: decimal.RequireFromString("9.99"),
		Qty:       3,
		OrderID:   10,
		ProductID: 100,
	}

	// Nothing preloaded: this is an internal-consistency failure.
	_, err := projectOrderItem(item)
	require.ErrorIs(t, err, errMissingRelation)

	item.Product = models.Product{ID: 100, Sku: "W-1"}
	_, err = projectOrderItem(item)
	require.ErrorIs(t, err, errMissingRelation)

	item.Order = models.Order{
		ID:        10,
		OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Customer:  models.Customer{ID: 1, Name: "Alice"},
	}
	dto, err := projectOrderItem(item)
	require.NoError(t, err)
	assert.Equal(t, "W-1", dto.ProductSku)
	assert.Equal(t, "2024-01-01", dto.OrderDate)
	assert.Equal(t, "Alice", dto.CustomerName)
	assert.True(t, decimal.RequireFromString("29.97").Equal(dto.Subtotal))
}

func TestProjectOrderRequiresCustomer(t *testing.T) {
	order := models.Order{ID: 10, OrderDate: time.Now(), Province: models.ProvinceON, CustomerID: 1}

	_, err := projectOrder(order)
	require.ErrorIs(t, err, errMissingRelation)

	order.Customer = models.Customer{ID: 1, Name: "Alice"}
	dto, err := projectOrder(order)
	require.NoError(t, err)
	assert.Equal(t, "Alice", dto.CustomerName)
}
