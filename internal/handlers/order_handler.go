package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Keoroanthony/go-cornerstore/internal/apierror"
	"github.com/Keoroanthony/go-cornerstore/internal/db"
	"github.com/Keoroanthony/go-cornerstore/internal/dto"
	"github.com/Keoroanthony/go-cornerstore/internal/logger"
	"github.com/Keoroanthony/go-cornerstore/internal/models"
	"github.com/Keoroanthony/go-cornerstore/internal/notifier"
	"github.com/Keoroanthony/go-cornerstore/internal/repository"
)

const receiptTimeout = 15 * time.Second

type OrderProductRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	CashierID     uint                  `json:"cashierId" binding:"required"`
	PaidOnDate    *Timestamp            `json:"paidOnDate"`
	OrderProducts []OrderProductRequest `json:"orderProducts" binding:"dive"`
	Products      []ProductRequest      `json:"products" binding:"dive"`
}

// GetOrder returns the order with its cashier, line items, their products
// and categories, and the computed total.
func GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := repository.New(db.DB).FindOrder(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(*order))
}

// ListOrders returns every order, or only those paid on the calendar day
// given by the orderDate query parameter.
func ListOrders(c *gin.Context) {
	store := repository.New(db.DB)
	ctx := c.Request.Context()

	var (
		orders []models.Order
		err    error
	)

	if raw := strings.TrimSpace(c.Query("orderDate")); raw != "" {
		day, ok := parseOrderDate(raw)
		if !ok {
			apierror.MalformedInput(c, "Invalid 'orderDate' format")
			return
		}
		orders, err = store.ListOrdersPaidOn(ctx, day)
	} else {
		orders, err = store.ListOrders(ctx)
	}

	if err != nil {
		apierror.Respond(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

func DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := repository.New(db.DB).DeleteOrder(c.Request.Context(), id); err != nil {
		apierror.Respond(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// CreateOrder stores an order, its line items, and any new products in one
// go. The new products are not linked to the order.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.ConstraintViolation(c, err)
		return
	}

	order := models.Order{CashierID: req.CashierID}
	if req.PaidOnDate != nil {
		paid := req.PaidOnDate.Time.UTC()
		order.PaidOnDate = &paid
	}

	items := make([]models.OrderProduct, 0, len(req.OrderProducts))
	for _, item := range req.OrderProducts {
		items = append(items, models.OrderProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	products := make([]models.Product, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, p.toModel())
	}

	if err := repository.New(db.DB).CreateOrder(c.Request.Context(), &order, items, products); err != nil {
		apierror.Respond(c, err)
		return
	}

	sendReceipt(c, order.ID)

	c.Header("Location", fmt.Sprintf("/orders/%d", order.ID))
	c.JSON(http.StatusCreated, gin.H{"order": order, "products": products})
}

// sendReceipt emails the order in the background when a receipt sender is
// configured. Failures are only logged.
func sendReceipt(c *gin.Context, orderID uint) {
	sender := notifier.Current()
	if _, disabled := sender.(notifier.Noop); disabled {
		return
	}

	requestID := logger.RequestID(c)
	conn := db.DB

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), receiptTimeout)
		defer cancel()

		order, err := repository.New(conn).FindOrder(ctx, orderID)
		if err == nil {
			err = sender.SendReceipt(ctx, dto.FromOrder(*order))
		}
		if err != nil {
			logger.Log.Error("Failed to send order receipt",
				zap.String(logger.RequestIDKey, requestID),
				zap.Uint("order_id", orderID),
				zap.Error(err),
			)
		}
	}()
}
