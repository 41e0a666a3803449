package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-cornerstore/internal/apierror"
)

// RegisterRoutes mounts every API endpoint on r.
func RegisterRoutes(r gin.IRouter) {

	r.GET("/health", Health)

	r.POST("/cashiers", CreateCashier)
	r.GET("/cashiers/:id", GetCashier)

	r.GET("/products", SearchProducts)
	r.POST("/products", CreateProduct)
	r.PUT("/api/products/:id", UpdateProduct)

	r.GET("/orders", ListOrders)
	r.GET("/orders/:id", GetOrder)
	r.DELETE("/orders/:id", DeleteOrder)
	r.POST("/orders", CreateOrder)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// idParam reads the :id path parameter. On failure it has already written a
// 400 response.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apierror.MalformedInput(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
