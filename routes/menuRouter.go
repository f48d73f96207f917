package routes

import (
	"go-hotel-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.GET("/menu", controllers.GetMenuItems())
	incomingRoutes.GET("/menu/categories", controllers.GetMenuCategories())
	incomingRoutes.GET("/menu/:menu_item_id", controllers.GetMenuItem())
}
