package routes

import (
	"go-hotel-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.RouterGroup, deps Dependencies) {
	incomingRoutes.GET("/orders", controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.GET("/orders/:order_id/invoice", controllers.GetOrderInvoice(deps.ServiceChargeRate))
	incomingRoutes.POST("/orders", controllers.PlaceOrder(deps.Logger))
}
