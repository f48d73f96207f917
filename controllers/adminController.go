package controllers

import (
	"net/http"
	"time"

	"go-hotel-ordering/helpers"
	"go-hotel-ordering/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin exchanges the admin password for a token bound to the caller's
// session.
func AdminLogin(auth helpers.AdminAuth, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		sessionID := middleware.SessionID(c)
		passwordIsValid, msg := helpers.VerifyPassword(req.Password, auth.PasswordHash)
		if !passwordIsValid {
			logger.Warn("admin login failed", zap.String("session_id", sessionID))
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		token, expiresAt, err := auth.GenerateAdminToken(sessionID, time.Now())
		if err != nil {
			logger.Error("admin token not issued", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}
		logger.Info("admin logged in", zap.String("session_id", sessionID))
		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_at": expiresAt.UTC(),
		})
	}
}
