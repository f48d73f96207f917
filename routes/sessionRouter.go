package routes

import (
	"go-hotel-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func SessionRoutes(incomingRoutes *gin.RouterGroup, deps Dependencies) {
	incomingRoutes.DELETE("/session", controllers.EndSession(deps.Registry))
	incomingRoutes.GET("/ws", controllers.HandleWebSocket(deps.Hub, deps.Registry, deps.PingInterval, deps.Logger))
}
