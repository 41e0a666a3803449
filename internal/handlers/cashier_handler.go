package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-cornerstore/internal/apierror"
	"github.com/Keoroanthony/go-cornerstore/internal/db"
	"github.com/Keoroanthony/go-cornerstore/internal/dto"
	"github.com/Keoroanthony/go-cornerstore/internal/models"
	"github.com/Keoroanthony/go-cornerstore/internal/repository"
)

type CreateCashierRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

func CreateCashier(c *gin.Context) {
	var req CreateCashierRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.ConstraintViolation(c, err)
		return
	}

	cashier := models.Cashier{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := repository.New(db.DB).CreateCashier(c.Request.Context(), &cashier); err != nil {
		apierror.Respond(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/cashiers/%d", cashier.ID))
	c.JSON(http.StatusCreated, cashier)
}

// GetCashier returns the cashier with every order they took, each with its
// line items and products.
func GetCashier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store := repository.New(db.DB)
	ctx := c.Request.Context()

	cashier, err := store.FindCashier(ctx, id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	orders, err := store.FindOrdersByCashier(ctx, id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCashier(*cashier, orders))
}
