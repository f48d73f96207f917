package controllers

import (
	"net/http"
	"strings"

	"go-hotel-ordering/middleware"
	"go-hotel-ordering/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlaceOrder turns the session cart into a pending order. An empty cart is
// refused.
func PlaceOrder(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.CustomerName = strings.TrimSpace(req.CustomerName)
		req.TableNumber = strings.TrimSpace(req.TableNumber)
		if err := validate.Struct(&req); err != nil {
			logger.Debug("order rejected", zap.String("reason", validationMessage(err)))
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		order, ok := middleware.SessionStore(c).PlaceNonEmptyOrder(req.CustomerName, req.TableNumber)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		logger.Info("order placed",
			zap.String("session_id", middleware.SessionID(c)),
			zap.String("order_id", order.ID),
			zap.Int("items", order.TotalQuantity()),
			zap.String("total", order.Total.StringFixed(2)))
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders lists orders newest first.
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := middleware.SessionStore(c).Orders()
		for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
			orders[i], orders[j] = orders[j], orders[i]
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Orders fetched successfully",
			"data":    orders,
		})
	}
}

// GetOrder renders an order from its own snapshot, never from the catalog.
func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := middleware.SessionStore(c).Order(c.Param("order_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus accepts any of the four statuses regardless of the
// current one.
func UpdateOrderStatus(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		orderID := c.Param("order_id")
		order, ok := middleware.SessionStore(c).UpdateOrderStatus(orderID, req.Status)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		logger.Info("order status updated",
			zap.String("role", middleware.Role(c)),
			zap.String("session_id", middleware.SessionID(c)),
			zap.String("order_id", orderID),
			zap.String("status", string(order.Status)))
		c.JSON(http.StatusOK, order)
	}
}
