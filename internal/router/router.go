// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NipunRaj96/Vouch-IT/internal/config"
	"github.com/NipunRaj96/Vouch-IT/internal/handlers"
	"github.com/NipunRaj96/Vouch-IT/internal/middleware"
	"github.com/NipunRaj96/Vouch-IT/internal/services"
	"github.com/NipunRaj96/Vouch-IT/internal/store"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	sentimentService := services.NewSentimentService(cfg.Gemini)
	catalogService := services.NewCatalogService(st)
	reviewService := services.NewReviewService(st, sentimentService)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, reviewService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/top-rated", productHandler.GetTopRatedProducts)
			products.GET("/:id", productHandler.GetProduct)

			products.GET("/:id/reviews", reviewHandler.GetReviews)
			products.POST("/:id/reviews", middleware.ReviewRateLimit(), reviewHandler.CreateReview)
		}

		// Filter vocabulary routes
		v1.GET("/categories", productHandler.GetCategories)
		v1.GET("/price-ranges", productHandler.GetPriceRanges)
	}

	return r
}
