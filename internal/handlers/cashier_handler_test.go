package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/go-cornerstore/internal/apierror"
	"github.com/Keoroanthony/go-cornerstore/internal/dto"
	"github.com/Keoroanthony/go-cornerstore/internal/models"
)

func TestCreateCashierHandler(t *testing.T) {
	router, testDB := setupTestRouter(t)

	t.Run("Successfully creates a cashier", func(t *testing.T) {
		reqBody := gin.H{"firstName": "Penny", "lastName": "Pincher"}

		first := performRequest(router, http.MethodPost, "/cashiers", reqBody)
		second := performRequest(router, http.MethodPost, "/cashiers", reqBody)

		require.Equal(t, http.StatusCreated, first.Code)
		require.Equal(t, http.StatusCreated, second.Code)

		var a, b models.Cashier
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

		assert.NotZero(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, "Penny", a.FirstName)
		assert.Equal(t, "/cashiers/"+uintString(a.ID), first.Header().Get("Location"))

		var stored models.Cashier
		require.NoError(t, testDB.First(&stored, a.ID).Error)
		assert.Equal(t, "Pincher", stored.LastName)
	})

	t.Run("Fails when last name is missing", func(t *testing.T) {
		recorder := performRequest(router, http.MethodPost, "/cashiers", gin.H{"firstName": "Solo"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apierror.InvalidDataMessage, decodeError(t, recorder))
	})
}

func TestGetCashierHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("Successfully returns cashier with orders", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/cashiers/1", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var cashier dto.CashierDTO
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cashier))

		assert.Equal(t, "Cash Checkman", cashier.FullName)
		require.Len(t, cashier.Orders, 1)
		require.Len(t, cashier.Orders[0].OrderProducts, 1)
		item := cashier.Orders[0].OrderProducts[0]
		assert.Equal(t, 20, item.Quantity)
		require.NotNil(t, item.Product)
		assert.Equal(t, "Supa Energy Drink", item.Product.ProductName)
		assert.Equal(t, "22", cashier.Orders[0].Total.String())
	})

	t.Run("Cashier without orders", func(t *testing.T) {
		created := performRequest(router, http.MethodPost, "/cashiers", gin.H{"firstName": "New", "lastName": "Hire"})
		require.Equal(t, http.StatusCreated, created.Code)

		recorder := performRequest(router, http.MethodGet, created.Header().Get("Location"), nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
		require.Contains(t, raw, "orders")
		assert.JSONEq(t, `[]`, string(raw["orders"]))
	})

	t.Run("Fails for unknown cashier", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/cashiers/999", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("Fails for non-numeric id", func(t *testing.T) {
		recorder := performRequest(router, http.MethodGet, "/cashiers/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid id", decodeError(t, recorder))
	})
}
