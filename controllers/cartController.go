package controllers

import (
	"net/http"

	"go-hotel-ordering/helpers"
	"go-hotel-ordering/middleware"
	"go-hotel-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func GetCart(serviceChargeRate decimal.Decimal) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.SessionStore(c)
		c.JSON(http.StatusOK, helpers.SummarizeCart(st.MenuItems(), st.Cart(), serviceChargeRate))
	}
}

// AddToCart only accepts items that are on the menu right now, even though
// the store would keep a line for any id.
func AddToCart(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			logger.Debug("cart item rejected", zap.String("reason", validationMessage(err)))
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		st := middleware.SessionStore(c)
		if _, ok := st.MenuItem(req.MenuItemID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		line := st.AddToCart(req.MenuItemID, req.Quantity, req.SpecialInstructions)
		logger.Info("cart item added",
			zap.String("session_id", middleware.SessionID(c)),
			zap.String("cart_item_id", line.ID),
			zap.String("menu_item_id", line.MenuItemID),
			zap.Int("quantity", line.Quantity))
		c.JSON(http.StatusCreated, line)
	}
}

func UpdateCartItem(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		cartItemID := c.Param("cart_item_id")
		line, ok := middleware.SessionStore(c).UpdateCartItem(cartItemID, req.Quantity, req.SpecialInstructions)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		logger.Info("cart item updated",
			zap.String("session_id", middleware.SessionID(c)),
			zap.String("cart_item_id", cartItemID),
			zap.Int("quantity", line.Quantity))
		c.JSON(http.StatusOK, line)
	}
}

func RemoveFromCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SessionStore(c).RemoveFromCart(c.Param("cart_item_id"))
		c.Status(http.StatusNoContent)
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SessionStore(c).ClearCart()
		c.Status(http.StatusNoContent)
	}
}
