// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
	"github.com/NipunRaj96/Vouch-IT/internal/services"
	"github.com/NipunRaj96/Vouch-IT/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	reviewService  *services.ReviewService
}

func NewProductHandler(catalogService *services.CatalogService, reviewService *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	priceRange, err := models.ParsePriceRange(c.Query("price_range"))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	params := services.ProductFilterParams{
		Category:   c.Query("category"),
		PriceRange: priceRange,
		SortKey:    models.ParseSortKey(c.Query("sort")),
	}

	products := h.catalogService.ListProducts(params)

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": products,
	}, gin.H{
		"count": len(products),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	reviews, _ := h.reviewService.ListReviews(id)
	distribution, _ := h.reviewService.RatingDistribution(id)
	related, _ := h.catalogService.RelatedProducts(id, 4)

	utils.SuccessResponse(c, gin.H{
		"product":             product,
		"reviews":             reviews,
		"rating_distribution": distribution,
		"related_products":    related,
	})
}

// GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	limit := parseLimit(c, 4)

	utils.SuccessResponse(c, gin.H{
		"products": h.catalogService.FeaturedProducts(limit),
	})
}

// GET /products/top-rated
func (h *ProductHandler) GetTopRatedProducts(c *gin.Context) {
	limit := parseLimit(c, 4)

	utils.SuccessResponse(c, gin.H{
		"products": h.catalogService.TopRatedProducts(limit),
	})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}

// GET /price-ranges
func (h *ProductHandler) GetPriceRanges(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"price_ranges": h.catalogService.PriceRanges(),
	})
}

func parseLimit(c *gin.Context, defaultLimit int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > 50 {
		return defaultLimit
	}
	return limit
}
