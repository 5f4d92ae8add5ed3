package services

import (
	"errors"

	"orderdesk/app/models"
)

// errMissingRelation means a projection was asked to render an entity whose
// required relations were not join-fetched. Well-formed data cannot trigger
// it; it is an internal-consistency failure, not a caller-facing outcome.
var errMissingRelation = errors.New("projection requires preloaded relations")

const dateLayout = "2006-01-02"

func projectCategory(c models.Category) models.CategoryDto {
	return models.CategoryDto{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
	}
}

func projectProduct(p models.Product) models.ProductDto {
	return models.ProductDto{
		ID:    p.ID,
		Name:  p.Name,
		Sku:   p.Sku,
		Price: p.Price,
	}
}

func projectCustomer(c models.Customer) models.CustomerDto {
	return models.CustomerDto{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// projectOrder needs the order's Customer loaded.
func projectOrder(o models.Order) (models.OrderDto, error) {
	if o.Customer.ID == 0 {
		return models.OrderDto{}, errMissingRelation
	}
	return models.OrderDto{
		ID:           o.ID,
		OrderDate:    o.OrderDate.Format(dateLayout),
		Province:     o.Province,
		Total:        o.Total,
		Tax:          o.Tax,
		TaxDesc:      o.TaxDesc,
		CustomerID:   o.CustomerID,
		CustomerName: o.Customer.Name,
	}, nil
}

// projectOrderItem needs the item's Product, Order and the order's Customer
// loaded. Subtotal is computed here, never read from the store.
func projectOrderItem(i models.OrderItem) (models.OrderItemDto, error) {
	if i.Product.ID == 0 || i.Order.ID == 0 || i.Order.Customer.ID == 0 {
		return models.OrderItemDto{}, errMissingRelation
	}
	return models.OrderItemDto{
		ID:           i.ID,
		UnitPrice:    i.UnitPrice,
		Qty:          i.Qty,
		Subtotal:     i.Subtotal(),
		ProductID:    i.ProductID,
		ProductSku:   i.Product.Sku,
		OrderID:      i.OrderID,
		OrderDate:    i.Order.OrderDate.Format(dateLayout),
		CustomerName: i.Order.Customer.Name,
	}, nil
}
