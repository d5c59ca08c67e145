// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openmart/ecommerce-backend/internal/config"
	"github.com/openmart/ecommerce-backend/internal/handlers"
	"github.com/openmart/ecommerce-backend/internal/middleware"
	"github.com/openmart/ecommerce-backend/internal/services"
)

func Initialize(db *mongo.Database, cfg *config.Config) *gin.Engine {
	// Initialize services
	searchService := services.NewSearchService(db)
	orderService := services.NewOrderService(db)
	reviewService := services.NewReviewService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(searchService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "E-commerce backend is running successfully!",
		})
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Product routes
	products := r.Group("/products")
	{
		products.GET("/search", middleware.SearchRateLimit(), productHandler.SearchProducts)
		products.GET("/:product_id/reviews", reviewHandler.GetProductReviews)
	}

	// User routes
	users := r.Group("/users")
	{
		users.GET("/:user_id/orders", orderHandler.GetUserOrders)
	}

	// Order routes
	orders := r.Group("/orders")
	{
		orders.GET("/:order_id", orderHandler.GetOrder)
	}

	// Analytics routes
	analytics := r.Group("/analytics")
	{
		analytics.GET("/top-products", middleware.SearchRateLimit(), analyticsHandler.GetTopProducts)
	}

	return r
}
