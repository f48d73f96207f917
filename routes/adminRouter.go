package routes

import (
	"go-hotel-ordering/controllers"
	"go-hotel-ordering/middleware"

	"github.com/gin-gonic/gin"
)

// AdminRoutes registers the login endpoint openly and everything else behind
// the admin token.
func AdminRoutes(incomingRoutes *gin.RouterGroup, deps Dependencies) {
	admin := incomingRoutes.Group("/admin")
	admin.POST("/login", controllers.AdminLogin(deps.Auth, deps.Logger))

	protected := admin.Group("", middleware.Authentication(deps.Auth))
	protected.POST("/menu", controllers.CreateMenuItem(deps.Logger))
	protected.PATCH("/menu/:menu_item_id", controllers.UpdateMenuItem(deps.Logger))
	protected.DELETE("/menu/:menu_item_id", controllers.DeleteMenuItem(deps.Logger))
	protected.PATCH("/orders/:order_id/status", controllers.UpdateOrderStatus(deps.Logger))
}
