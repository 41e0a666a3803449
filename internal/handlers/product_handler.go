package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-cornerstore/internal/apierror"
	"github.com/Keoroanthony/go-cornerstore/internal/db"
	"github.com/Keoroanthony/go-cornerstore/internal/dto"
	"github.com/Keoroanthony/go-cornerstore/internal/models"
	"github.com/Keoroanthony/go-cornerstore/internal/repository"
)

// ProductRequest is the body of product create and update calls, and of each
// entry in an order's new products.
type ProductRequest struct {
	ProductName string           `json:"productName" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Brand       string           `json:"brand" binding:"required"`
	CategoryID  uint             `json:"categoryId" binding:"required"`
}

func (r ProductRequest) toModel() models.Product {
	return models.Product{
		Name:       r.ProductName,
		Price:      *r.Price,
		Brand:      r.Brand,
		CategoryID: r.CategoryID,
	}
}

// SearchProducts matches the search term exactly, ignoring case, against
// product names and category names.
func SearchProducts(c *gin.Context) {
	term := c.Query("search")
	if strings.TrimSpace(term) == "" {
		apierror.MalformedInput(c, "search is required")
		return
	}

	products, err := repository.New(db.DB).SearchProducts(c.Request.Context(), term)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	if len(products) == 0 {
		apierror.MalformedInput(c, "No products found with exact match")
		return
	}

	c.JSON(http.StatusOK, dto.FromProducts(products))
}

func CreateProduct(c *gin.Context) {
	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.ConstraintViolation(c, err)
		return
	}

	product := req.toModel()
	if err := repository.New(db.DB).CreateProduct(c.Request.Context(), &product); err != nil {
		apierror.Respond(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/products/%d", product.ID))
	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.ConstraintViolation(c, err)
		return
	}

	if _, err := repository.New(db.DB).UpdateProduct(c.Request.Context(), id, req.toModel()); err != nil {
		apierror.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
