package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-cornerstore/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violation")
)

// Store defines the data access the API needs. Each method is one logical
// read or write; reads declare exactly which relations they load.
type Store interface {
	CreateCashier(ctx context.Context, cashier *models.Cashier) error
	FindCashier(ctx context.Context, id uint) (*models.Cashier, error)
	FindOrdersByCashier(ctx context.Context, cashierID uint) ([]models.Order, error)

	SearchProducts(ctx context.Context, term string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	FindProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, changes models.Product) (*models.Product, error)

	FindOrder(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersPaidOn(ctx context.Context, day time.Time) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderProduct, products []models.Product) error
}

// GormStore implements Store using GORM.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &GormStore{db: db}
}

func (r *GormStore) CreateCashier(ctx context.Context, cashier *models.Cashier) error {
	return wrap("create cashier", r.db.WithContext(ctx).Create(cashier).Error)
}

func (r *GormStore) FindCashier(ctx context.Context, id uint) (*models.Cashier, error) {
	var cashier models.Cashier
	if err := r.db.WithContext(ctx).First(&cashier, id).Error; err != nil {
		return nil, wrap("find cashier", err)
	}
	return &cashier, nil
}

// FindOrdersByCashier loads a cashier's orders with their line items and
// each line item's product.
func (r *GormStore) FindOrdersByCashier(ctx context.Context, cashierID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderProducts.Product").
		Where("cashier_id = ?", cashierID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, wrap("find cashier orders", err)
	}
	for i := range orders {
		orders[i].CalculateTotal()
	}
	return orders, nil
}

// SearchProducts returns products whose own name or category name equals
// term, ignoring case. Partial matches are not returned.
func (r *GormStore) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	needle := strings.ToLower(term)

	var products []models.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Preload("Category").
		Where("LOWER(products.name) = ? OR LOWER(categories.name) = ?", needle, needle).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, wrap("search products", err)
	}
	return products, nil
}

func (r *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	return wrap("create product", r.db.WithContext(ctx).Create(product).Error)
}

func (r *GormStore) FindProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, wrap("find product", err)
	}
	return &product, nil
}

// UpdateProduct overwrites name, price, brand and category of an existing
// product. The id and any other column are left alone.
func (r *GormStore) UpdateProduct(ctx context.Context, id uint, changes models.Product) (*models.Product, error) {
	product, err := r.FindProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = changes.Name
	product.Price = changes.Price
	product.Brand = changes.Brand
	product.CategoryID = changes.CategoryID

	err = r.db.WithContext(ctx).
		Model(product).
		Select("name", "price", "brand", "category_id").
		Updates(product).Error
	if err != nil {
		return nil, wrap("update product", err)
	}
	return product, nil
}

// FindOrder loads an order with its cashier, line items, their products and
// each product's category.
func (r *GormStore) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Cashier").
		Preload("OrderProducts.Product.Category").
		First(&order, id).Error
	if err != nil {
		return nil, wrap("find order", err)
	}
	order.CalculateTotal()
	return &order, nil
}

// ListOrders returns every order with its total but without relations.
func (r *GormStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, wrap("list orders", err)
	}
	if err := setTotals(r.db.WithContext(ctx), orders); err != nil {
		return nil, wrap("list orders", err)
	}
	return orders, nil
}

// ListOrdersPaidOn returns orders paid at any time during the UTC calendar
// day of day.
func (r *GormStore) ListOrdersPaidOn(ctx context.Context, day time.Time) ([]models.Order, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("paid_on_date >= ? AND paid_on_date < ?", start, end).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, wrap("list orders by date", err)
	}
	if err := setTotals(r.db.WithContext(ctx), orders); err != nil {
		return nil, wrap("list orders by date", err)
	}
	return orders, nil
}

// DeleteOrder removes an order. Its line items go with it through the
// ON DELETE CASCADE foreign key.
func (r *GormStore) DeleteOrder(ctx context.Context, id uint) error {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return wrap("find order", err)
	}
	return wrap("delete order", r.db.WithContext(ctx).Delete(&order).Error)
}

// CreateOrder inserts the order, then its line items under the new order id,
// then the unrelated new products, all in one transaction. On success order,
// items and products carry their assigned ids and order.OrderProducts holds
// the items.
func (r *GormStore) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderProduct, products []models.Product) error {
	order.OrderProducts = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}

		totals, err := orderTotals(tx, []uint{order.ID})
		if err != nil {
			return err
		}
		order.Total = totals[order.ID]
		return nil
	})
	if err != nil {
		return wrap("create order", err)
	}

	order.OrderProducts = items
	return nil
}

// setTotals fills Total on orders without attaching their line items.
func setTotals(db *gorm.DB, orders []models.Order) error {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	totals, err := orderTotals(db, ids)
	if err != nil {
		return err
	}
	for i := range orders {
		orders[i].Total = totals[orders[i].ID]
	}
	return nil
}

func orderTotals(db *gorm.DB, orderIDs []uint) (map[uint]decimal.Decimal, error) {
	totals := make(map[uint]decimal.Decimal, len(orderIDs))
	if len(orderIDs) == 0 {
		return totals, nil
	}

	var items []models.OrderProduct
	if err := db.Preload("Product").Where("order_id IN ?", orderIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		totals[item.OrderID] = totals[item.OrderID].Add(item.LineTotal())
	}
	return totals, nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrConstraint, err)
}
