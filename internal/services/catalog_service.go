// internal/services/catalog_service.go
package services

import (
	"sort"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
	"github.com/NipunRaj96/Vouch-IT/internal/store"
)

type CatalogService struct {
	store *store.Store
}

type ProductFilterParams struct {
	Category   string
	PriceRange *models.PriceRange
	SortKey    models.SortKey
}

func NewCatalogService(store *store.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts applies the conjunctive category and price filters, then the
// requested sort order, over the seeded catalog. Featured keeps the seed
// order; the other sorts are stable, so ties retain their relative input
// order. An empty result is valid and returned as an empty slice.
func (s *CatalogService) ListProducts(params ProductFilterParams) []models.Product {
	products := s.store.Products()

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.PriceRange != nil && !params.PriceRange.Contains(p.Price) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch params.SortKey {
	case models.SortKeyPriceLowHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case models.SortKeyPriceHighLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case models.SortKeyRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	}

	return filtered
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	product, ok := s.store.Product(id)
	if !ok {
		return nil, ErrProductNotFound
	}

	return &product, nil
}

// FeaturedProducts returns the first products in catalog order.
func (s *CatalogService) FeaturedProducts(limit int) []models.Product {
	products := s.store.Products()
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	return products
}

// TopRatedProducts returns the catalog ordered by rating descending.
func (s *CatalogService) TopRatedProducts(limit int) []models.Product {
	products := s.store.Products()
	sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })

	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	return products
}

// RelatedProducts returns other products from the same category for the
// "you might also like" section of a detail page.
func (s *CatalogService) RelatedProducts(productID string, limit int) ([]models.Product, error) {
	product, ok := s.store.Product(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	related := make([]models.Product, 0, limit)
	for _, p := range s.store.Products() {
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		related = append(related, p)
		if limit > 0 && len(related) == limit {
			break
		}
	}

	return related, nil
}

func (s *CatalogService) Categories() []models.FilterOption {
	return s.store.Categories()
}

func (s *CatalogService) PriceRanges() []models.FilterOption {
	return s.store.PriceRanges()
}
