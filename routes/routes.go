package routes

import (
	"net/http"
	"time"

	"go-hotel-ordering/controllers"
	"go-hotel-ordering/helpers"
	"go-hotel-ordering/middleware"
	"go-hotel-ordering/notify"
	"go-hotel-ordering/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Dependencies struct {
	Registry          *session.Registry
	Hub               *notify.Hub
	Auth              helpers.AdminAuth
	Logger            *zap.Logger
	ServiceChargeRate decimal.Decimal
	PingInterval      time.Duration
}

// NewRouter builds the engine with recovery, request logging and CORS for
// allowOrigins, then registers the API on it.
func NewRouter(allowOrigins []string, deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	Register(router, deps)
	return router
}

// Register mounts every API route on router. Everything except the health
// check runs inside a session. A zero PingInterval means 30s.
func Register(router *gin.Engine, deps Dependencies) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.PingInterval <= 0 {
		deps.PingInterval = 30 * time.Second
	}

	router.GET("/healthz", controllers.Health(deps.Registry))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	api := router.Group("/", middleware.Session(deps.Registry))
	MenuRoutes(api)
	CartRoutes(api, deps)
	OrderRoutes(api, deps)
	SessionRoutes(api, deps)
	AdminRoutes(api, deps)
}
