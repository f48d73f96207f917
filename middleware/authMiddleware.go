package middleware

import (
	"net/http"

	"go-hotel-ordering/helpers"

	"github.com/gin-gonic/gin"
)

const roleKey = "role"

// Authentication admits requests carrying an admin token issued for the
// current session. It must run after Session.
func Authentication(auth helpers.AdminAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin token is required"})
			return
		}
		claims, err := auth.ValidateToken(clientToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if claims.SessionID != SessionID(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token was issued for another session"})
			return
		}
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// Role returns the role granted by Authentication, or "" on open routes.
func Role(c *gin.Context) string {
	return c.GetString(roleKey)
}
