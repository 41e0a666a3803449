package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-cornerstore/internal/models"
)

func FromCategory(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		CategoryName: c.Name,
	}
}

// FromProduct embeds the category only when it was loaded.
func FromProduct(p models.Product) ProductDTO {
	out := ProductDTO{
		ID:          p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
	}
	if p.Category != nil {
		category := FromCategory(*p.Category)
		out.Category = &category
	}
	return out
}

func FromProducts(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromOrderProduct(op models.OrderProduct) OrderProductDTO {
	out := OrderProductDTO{
		ID:        op.ID,
		ProductID: op.ProductID,
		OrderID:   op.OrderID,
		Quantity:  op.Quantity,
	}
	if op.Product != nil {
		product := FromProduct(*op.Product)
		out.Product = &product
	}
	return out
}

// FromOrder maps an order with its line items. The cashier is embedded only
// when loaded.
func FromOrder(o models.Order) OrderDTO {
	out := OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		OrderProducts: make([]OrderProductDTO, 0, len(o.OrderProducts)),
	}
	if o.PaidOnDate != nil {
		paid := *o.PaidOnDate
		out.PaidOnDate = &paid
	}
	if o.Cashier != nil {
		cashier := FromOrderCashier(*o.Cashier)
		out.Cashier = &cashier
	}
	for _, op := range o.OrderProducts {
		out.OrderProducts = append(out.OrderProducts, FromOrderProduct(op))
	}
	out.Total = OrderTotal(out.OrderProducts)
	return out
}

// FromCashier maps a cashier and their orders. Orders is never nil.
func FromCashier(c models.Cashier, orders []models.Order) CashierDTO {
	out := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Orders:    make([]OrderDTO, 0, len(orders)),
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, FromOrder(o))
	}
	return out
}

func FromOrderCashier(c models.Cashier) OrderCashierDTO {
	return OrderCashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
}

// OrderTotal sums price × quantity over the line items. A line item without
// a product contributes nothing.
func OrderTotal(items []OrderProductDTO) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
