package services

import (
	"testing"

	"orderdesk/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	customer := seedCustomer(t, db, "Alice", "a@x.com")

	resp := svc.Add(testCtx, models.OrderDto{
		OrderDate:  "2024-01-01",
		Province:   models.ProvinceON,
		CustomerID: customer.ID,
	})
	require.Equal(t, StatusSuccess, resp.Status)
	require.NotZero(t, resp.CreatedID)

	dto, err := svc.Find(testCtx, resp.CreatedID)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "2024-01-01", dto.OrderDate)
	assert.Equal(t, models.ProvinceON, dto.Province)
	assert.Equal(t, "Alice", dto.CustomerName)
	assert.Equal(t, "HST 13%", dto.TaxDesc)
	requireDecimal(t, "0", dto.Total)
	requireDecimal(t, "0", dto.Tax)
}

func TestAddOrderUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	resp := svc.Add(testCtx, models.OrderDto{
		OrderDate:  "2024-01-01",
		Province:   models.ProvinceON,
		CustomerID: 999,
	})
	require.Equal(t, StatusNotFound, resp.Status)
	assert.EqualValues(t, 0, countRows(t, db, &models.Order{}))
}

func TestAddOrderMalformedDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	customer := seedCustomer(t, db, "Alice", "a@x.com")

	resp := svc.Add(testCtx, models.OrderDto{
		OrderDate:  "01/01/2024",
		Province:   models.ProvinceON,
		CustomerID: customer.ID,
	})
	assert.Equal(t, StatusBadRequest, resp.Status)
	assert.EqualValues(t, 0, countRows(t, db, &models.Order{}))
}

func TestUpdateOrderUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	alice := seedCustomer(t, db, "Alice", "a@x.com")
	order := seedOrder(t, db, alice.ID, models.ProvinceON, "2024-01-01")

	// Moving the order to a customer that does not exist is rejected and
	// leaves the stored order untouched.
	resp := svc.Update(testCtx, order.ID, models.OrderDto{
		ID:         order.ID,
		OrderDate:  "2024-02-02",
		Province:   models.ProvinceAB,
		CustomerID: 999,
	})
	require.Equal(t, StatusNotFound, resp.Status)

	dto, err := svc.Find(testCtx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "2024-01-01", dto.OrderDate)
	assert.Equal(t, models.ProvinceON, dto.Province)
	assert.Equal(t, "Alice", dto.CustomerName)
}

func TestUpdateOrderMalformedDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	customer := seedCustomer(t, db, "Alice", "a@x.com")
	order := seedOrder(t, db, customer.ID, models.ProvinceON, "2024-01-01")

	resp := svc.Update(testCtx, order.ID, models.OrderDto{
		ID:         order.ID,
		OrderDate:  "02/02/2024",
		Province:   models.ProvinceBC,
		CustomerID: customer.ID,
	})
	assert.Equal(t, StatusBadRequest, resp.Status)

	dto, err := svc.Find(testCtx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "2024-01-01", dto.OrderDate)
	assert.Equal(t, models.ProvinceON, dto.Province)
}

func TestUpdateOrderIDMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	resp := svc.Update(testCtx, 1, models.OrderDto{ID: 2, OrderDate: "2024-01-01", Province: models.ProvinceON, CustomerID: 1})
	assert.Equal(t, StatusBadRequest, resp.Status)
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	customer := seedCustomer(t, db, "Alice", "a@x.com")

	resp := svc.Update(testCtx, 5, models.OrderDto{ID: 5, OrderDate: "2024-01-01", Province: models.ProvinceON, CustomerID: customer.ID})
	assert.Equal(t, StatusNotFound, resp.Status)
}

func TestUpdateOrderProvinceRecomputesTax(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	customer := seedCustomer(t, db, "Alice", "a@x.com")
	product := seedProduct(t, db, "Widget", "W-1", "9.99")
	order := seedOrder(t, db, customer.ID, models.ProvinceON, "2024-01-01")
	seedOrderItem(t, db, order.ID, product.ID, "10.00", 10)

	resp := svc.Update(testCtx, order.ID, models.OrderDto{
		ID:         order.ID,
		OrderDate:  "2024-01-01",
		Province:   models.ProvinceON,
		CustomerID: customer.ID,
	})
	require.Equal(t, StatusSuccess, resp.Status)

	dto, err := svc.Find(testCtx, order.ID)
	require.NoError(t, err)
	requireDecimal(t, "100", dto.Total)
	requireDecimal(t, "13.00", dto.Tax)
	assert.Equal(t, "HST 13%", dto.TaxDesc)

	// Moving the order to Alberta drops the rate to 5% GST.
	resp = svc.Update(testCtx, order.ID, models.OrderDto{
		ID:         order.ID,
		OrderDate:  "2024-01-01",
		Province:   models.ProvinceAB,
		CustomerID: customer.ID,
	})
	require.Equal(t, StatusSuccess, resp.Status)

	dto, err = svc.Find(testCtx, order.ID)
	require.NoError(t, err)
	requireDecimal(t, "100", dto.Total)
	requireDecimal(t, "5.00", dto.Tax)
	assert.Equal(t, "GST 5%", dto.TaxDesc)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	customer := seedCustomer(t, db, "Alice", "a@x.com")
	product := seedProduct(t, db, "Widget", "W-1", "9.99")
	order := seedOrder(t, db, customer.ID, models.ProvinceON, "2024-01-01")
	seedOrderItem(t, db, order.ID, product.ID, "9.99", 2)
	seedOrderItem(t, db, order.ID, product.ID, "9.99", 1)

	resp := svc.Delete(testCtx, order.ID)
	require.Equal(t, StatusSuccess, resp.Status)

	assert.EqualValues(t, 0, countRows(t, db, &models.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.OrderItem{}))
}

func TestListOrdersForCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	alice := seedCustomer(t, db, "Alice", "a@x.com")
	bob := seedCustomer(t, db, "Bob", "b@x.com")
	seedOrder(t, db, alice.ID, models.ProvinceON, "2024-01-01")
	seedOrder(t, db, alice.ID, models.ProvinceBC, "2024-02-01")
	seedOrder(t, db, bob.ID, models.ProvinceQC, "2024-03-01")

	dtos, err := svc.ListForCustomer(testCtx, alice.ID)
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	for _, dto := range dtos {
		assert.Equal(t, "Alice", dto.CustomerName)
	}

	dtos, err = svc.ListForCustomer(testCtx, 999)
	require.NoError(t, err)
	assert.Empty(t, dtos)
}
