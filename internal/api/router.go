package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/api/handlers"
	"github.com/govipola/storefront/internal/api/middleware"
	"github.com/govipola/storefront/internal/client/catalog"
	"github.com/govipola/storefront/internal/config"
	"github.com/govipola/storefront/internal/service"
	"github.com/govipola/storefront/internal/session"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, products *catalog.Client, registry *session.Registry, journal *service.ReconciliationJournal, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Catalog is readable without a session
		v1.GET("/products", handlers.HandleListProducts(products, logger))

		// Cart and checkout require a session with the user role
		userRoutes := v1.Group("")
		userRoutes.Use(middleware.SessionMiddleware(registry, logger))
		userRoutes.Use(middleware.RequireRole(session.RoleUser))
		{
			userRoutes.GET("/cart", handlers.HandleGetCart(logger))
			userRoutes.POST("/cart/items", handlers.HandleAddItem(products, logger))
			userRoutes.PATCH("/cart/items/:id", handlers.HandleUpdateQuantity(logger))
			userRoutes.DELETE("/cart/items/:id", handlers.HandleRemoveItem(logger))
			userRoutes.DELETE("/cart", handlers.HandleClearCart(logger))
			userRoutes.POST("/checkout", handlers.HandleCheckout(logger))
			userRoutes.POST("/checkout/delivery", handlers.HandleResubmitDelivery(logger))
		}

		// Admin routes (internal - reconciliation follow-up)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.SessionMiddleware(registry, logger))
		adminRoutes.Use(middleware.RequireRole(session.RoleAdmin))
		{
			adminRoutes.GET("/reconciliation", handlers.HandleListReconciliation(journal, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
