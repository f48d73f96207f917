package controllers

import (
	"net/http"

	"go-hotel-ordering/middleware"
	"go-hotel-ordering/session"

	"github.com/gin-gonic/gin"
)

func Health(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"sessions": registry.Len(),
		})
	}
}

// EndSession drops the session's menu, cart and orders and disconnects its
// websocket clients. The next request starts a fresh session.
func EndSession(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		registry.End(middleware.SessionID(c))
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}
