// internal/store/store.go
package store

import (
	"sort"
	"sync"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
)

// Store holds the catalog and per-product review lists for the lifetime of
// the process. Products keep their seed order (the "featured" order); review
// lists are kept newest first so listing never needs a sort step. The mutex
// guards concurrent HTTP requests; there is no persistence.
type Store struct {
	mu          sync.RWMutex
	products    []models.Product
	index       map[string]int
	reviews     map[string][]models.Review
	categories  []models.FilterOption
	priceRanges []models.FilterOption
}

func New(seed *Seed) *Store {
	s := &Store{
		products:    make([]models.Product, 0, len(seed.Products)),
		index:       make(map[string]int, len(seed.Products)),
		reviews:     make(map[string][]models.Review, len(seed.Products)),
		categories:  append([]models.FilterOption(nil), seed.Categories...),
		priceRanges: append([]models.FilterOption(nil), seed.PriceRanges...),
	}

	for _, sp := range seed.Products {
		s.index[sp.ID] = len(s.products)
		s.products = append(s.products, sp.Product)

		reviews := append([]models.Review(nil), sp.Reviews...)
		// Seed order is incidental; make newest-first explicit.
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		})
		s.reviews[sp.ID] = reviews
	}

	return s
}

// Products returns the catalog in seed order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Product(nil), s.products...)
}

func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Reviews returns the product's reviews, newest first.
func (s *Store) Reviews(productID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Review(nil), s.reviews[productID]...)
}

// AddReview prepends the review to its product's list. It reports false when
// the owning product is unknown; nothing is stored in that case.
func (s *Store) AddReview(review models.Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[review.ProductID]; !ok {
		return false
	}

	s.reviews[review.ProductID] = append([]models.Review{review}, s.reviews[review.ProductID]...)
	return true
}

// SetRating writes the recomputed rating and review count onto the product.
// This is the only mutation path for catalog records.
func (s *Store) SetRating(productID string, summary models.RatingSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[productID]
	if !ok {
		return false
	}

	s.products[i].Rating = summary.Rating
	s.products[i].ReviewCount = summary.Count
	return true
}

func (s *Store) Categories() []models.FilterOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.FilterOption(nil), s.categories...)
}

func (s *Store) PriceRanges() []models.FilterOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.FilterOption(nil), s.priceRanges...)
}
