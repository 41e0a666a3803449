package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order navigation only points away from the order; a cashier's orders are
// fetched by query, never through a back-reference.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CashierID     uint            `gorm:"index;not null" json:"cashierId"`
	Cashier       *Cashier        `json:"cashier,omitempty"`
	PaidOnDate    *time.Time      `json:"paidOnDate"`
	OrderProducts []OrderProduct  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderProducts,omitempty"`
	Total         decimal.Decimal `gorm:"-" json:"total"`
}

// CalculateTotal sets Total from the loaded line items.
func (o *Order) CalculateTotal() {
	total := decimal.Zero
	for _, item := range o.OrderProducts {
		total = total.Add(item.LineTotal())
	}
	o.Total = total
}

// OrderProduct is one line item: a quantity of one product within one order.
type OrderProduct struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"orderId"`
	ProductID uint     `gorm:"index;not null" json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
}

// LineTotal is price times quantity, or zero when the product is not loaded.
func (op OrderProduct) LineTotal() decimal.Decimal {
	if op.Product == nil {
		return decimal.Zero
	}
	return op.Product.Price.Mul(decimal.NewFromInt(int64(op.Quantity)))
}
