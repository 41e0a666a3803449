// Package dto holds the response shapes of the API and the functions that
// project loaded entities into them. DTOs never point back to their parent,
// so a graph of them always serializes without cycles.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"categoryName"`
}

type ProductDTO struct {
	ID          uint            `json:"id"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  uint            `json:"categoryId"`
	Category    *CategoryDTO    `json:"category,omitempty"`
}

type OrderProductDTO struct {
	ID        uint        `json:"id"`
	ProductID uint        `json:"productId"`
	OrderID   uint        `json:"orderId"`
	Quantity  int         `json:"quantity"`
	Product   *ProductDTO `json:"product,omitempty"`
}

type OrderDTO struct {
	ID            uint              `json:"id"`
	CashierID     uint              `json:"cashierId"`
	Cashier       *OrderCashierDTO  `json:"cashier,omitempty"`
	PaidOnDate    *time.Time        `json:"paidOnDate"`
	Total         decimal.Decimal   `json:"total"`
	OrderProducts []OrderProductDTO `json:"orderProducts"`
}

// CashierDTO always carries the cashier's orders, empty or not.
type CashierDTO struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	Orders    []OrderDTO `json:"orders"`
}

// OrderCashierDTO is the cashier as embedded in an order, without orders.
type OrderCashierDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}
