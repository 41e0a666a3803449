package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderCalculateTotal(t *testing.T) {
	order := Order{
		OrderProducts: []OrderProduct{
			{Quantity: 3, Product: &Product{Price: decimal.RequireFromString("2.50")}},
			{Quantity: 4, Product: &Product{Price: decimal.RequireFromString("1.10")}},
			{Quantity: 9},
		},
	}

	order.CalculateTotal()

	assert.Equal(t, "11.9", order.Total.String())

	empty := Order{}
	empty.CalculateTotal()
	assert.True(t, empty.Total.IsZero())
}
