package controllers

import (
	"net/http"

	"go-hotel-ordering/helpers"
	"go-hotel-ordering/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetOrderInvoice bills an order from its snapshot, adding the service charge
// that the order total leaves out.
func GetOrderInvoice(serviceChargeRate decimal.Decimal) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.SessionStore(c)
		order, ok := st.Order(c.Param("order_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		invoice, ok := helpers.BuildInvoice(order, st.Orders(), serviceChargeRate)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}
