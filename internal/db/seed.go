package db

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-cornerstore/internal/logger"
	"github.com/Keoroanthony/go-cornerstore/internal/models"
)

// Seed inserts the initial store population. It is a no-op once any cashier
// exists, so it is safe to run on every start.
func Seed(conn *gorm.DB) error {

	var count int64
	if err := conn.Model(&models.Cashier{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count cashiers: %w", err)
	}

	if count > 0 {
		logger.Log.Info("Seed data already present, skipping", zap.Int64("cashiers", count))
		return nil
	}

	return conn.Transaction(func(tx *gorm.DB) error {

		categories := SeedCategories()
		products := SeedProducts()
		cashiers := SeedCashiers()
		orders := SeedOrders()
		orderProducts := SeedOrderProducts()

		steps := []struct {
			table string
			rows  interface{}
		}{
			{"categories", &categories},
			{"products", &products},
			{"cashiers", &cashiers},
			{"orders", &orders},
			{"order_products", &orderProducts},
		}

		for _, step := range steps {
			if err := tx.Create(step.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", step.table, err)
			}
		}

		// Explicit ids bypass postgres identity sequences.
		if tx.Dialector.Name() == "postgres" {
			for _, step := range steps {
				stmt := fmt.Sprintf(
					"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))",
					step.table, step.table,
				)
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("reset %s sequence: %w", step.table, err)
				}
			}
		}

		logger.Log.Info("Seed data applied")
		return nil
	})
}

func SeedCashiers() []models.Cashier {
	return []models.Cashier{
		{ID: 1, FirstName: "Cash", LastName: "Checkman"},
		{ID: 2, FirstName: "Mister", LastName: "Cashier"},
		{ID: 3, FirstName: "Money", LastName: "Checkoutman"},
		{ID: 4, FirstName: "Carl", LastName: "Cashback"},
		{ID: 5, FirstName: "Luke", LastName: "Lottery"},
	}
}

func SeedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Energy Drinks"},
		{ID: 2, Name: "Hot Food"},
		{ID: 3, Name: "Snacks"},
		{ID: 4, Name: "Alcohol"},
		{ID: 5, Name: "Water"},
	}
}

func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Supa Energy Drink", Price: decimal.RequireFromString("1.10"), Brand: "Supaa", CategoryID: 1},
		{ID: 2, Name: "Hotcakes", Price: decimal.NewFromInt(2), Brand: "Hotcakes Inc.", CategoryID: 2},
		{ID: 3, Name: "Star Crunch", Price: decimal.NewFromInt(3), Brand: "Little Debbie", CategoryID: 3},
		{ID: 4, Name: "Jonny Walker", Price: decimal.NewFromInt(4), Brand: "Jonny Walker Co.", CategoryID: 4},
		{ID: 5, Name: "Ultraa Water", Price: decimal.NewFromInt(5), Brand: "Ultraa", CategoryID: 5},
	}
}

func SeedOrders() []models.Order {
	return []models.Order{
		{ID: 1, CashierID: 1, PaidOnDate: paidAt(2024, time.August, 20)},
		{ID: 2, CashierID: 2, PaidOnDate: paidAt(2024, time.July, 20)},
		{ID: 3, CashierID: 3, PaidOnDate: paidAt(2024, time.July, 23)},
		{ID: 4, CashierID: 4, PaidOnDate: paidAt(2024, time.July, 25)},
		{ID: 5, CashierID: 5, PaidOnDate: paidAt(2025, time.July, 25)},
	}
}

func SeedOrderProducts() []models.OrderProduct {
	return []models.OrderProduct{
		{ID: 1, ProductID: 1, OrderID: 1, Quantity: 20},
		{ID: 2, ProductID: 2, OrderID: 2, Quantity: 22},
		{ID: 3, ProductID: 3, OrderID: 3, Quantity: 33},
		{ID: 4, ProductID: 4, OrderID: 4, Quantity: 35},
		{ID: 5, ProductID: 5, OrderID: 5, Quantity: 30},
	}
}

// every seeded order was paid at 19:45
func paidAt(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 19, 45, 0, 0, time.UTC)
	return &t
}
