package routes

import (
	"go-hotel-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.RouterGroup, deps Dependencies) {
	incomingRoutes.GET("/cart", controllers.GetCart(deps.ServiceChargeRate))
	incomingRoutes.POST("/cart", controllers.AddToCart(deps.Logger))
	incomingRoutes.PATCH("/cart/:cart_item_id", controllers.UpdateCartItem(deps.Logger))
	incomingRoutes.DELETE("/cart/:cart_item_id", controllers.RemoveFromCart())
	incomingRoutes.DELETE("/cart", controllers.ClearCart())
}
