// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
	"github.com/NipunRaj96/Vouch-IT/internal/store"
)

func newCatalogFixture() *CatalogService {
	seed := &store.Seed{
		Categories: []models.FilterOption{
			{Value: "home", Label: "Home & Kitchen"},
			{Value: "electronics", Label: "Electronics"},
		},
		PriceRanges: []models.FilterOption{
			{Value: "500-1000", Label: "₹500 to ₹1000"},
			{Value: "5000+", Label: "Over ₹5000"},
		},
		Products: []store.SeedProduct{
			{Product: models.Product{ID: "e1", Name: "Desk Fan", Category: "electronics", Price: 600, Rating: 3.9}},
			{Product: models.Product{ID: "h1", Name: "Kettle", Category: "home", Price: 999, Rating: 4.1}},
			{Product: models.Product{ID: "h2", Name: "Toaster", Category: "home", Price: 750, Rating: 4.6}},
			{Product: models.Product{ID: "c1", Name: "Scarf", Category: "clothing", Price: 250, Rating: 4.6}},
			{Product: models.Product{ID: "h3", Name: "Blender", Category: "home", Price: 5400, Rating: 4.3}},
		},
	}

	return NewCatalogService(store.New(seed))
}

func mustPriceRange(t *testing.T, token string) *models.PriceRange {
	t.Helper()
	pr, err := models.ParsePriceRange(token)
	require.NoError(t, err)
	return pr
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListProductsCategoryAndPriceRange(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{
		Category:   "home",
		PriceRange: mustPriceRange(t, "500-1000"),
		SortKey:    models.SortKeyPriceLowHigh,
	})

	assert.Equal(t, []string{"h2", "h1"}, productIDs(products))
}

func TestListProductsOpenEndedPriceRange(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{
		PriceRange: mustPriceRange(t, "5000+"),
		SortKey:    models.SortKeyFeatured,
	})

	assert.Equal(t, []string{"h3"}, productIDs(products))
}

func TestListProductsPriceRangeEndpointsInclusive(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{
		PriceRange: mustPriceRange(t, "250-600"),
	})

	assert.Equal(t, []string{"e1", "c1"}, productIDs(products))
}

func TestListProductsAbsentCategoryIsEmpty(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{Category: "beauty"})

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProductsFeaturedKeepsSeedOrder(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{SortKey: models.SortKeyFeatured})

	assert.Equal(t, []string{"e1", "h1", "h2", "c1", "h3"}, productIDs(products))
}

func TestListProductsSortPriceHighLow(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{SortKey: models.SortKeyPriceHighLow})

	assert.Equal(t, []string{"h3", "h1", "h2", "e1", "c1"}, productIDs(products))
}

func TestListProductsSortRatingIsStableOnTies(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.ListProducts(ProductFilterParams{SortKey: models.SortKeyRating})

	// h2 and c1 share rating 4.6; h2 precedes c1 in the input, so it stays
	// ahead after the stable sort.
	assert.Equal(t, []string{"h2", "c1", "h3", "h1", "e1"}, productIDs(products))
}

func TestListProductsIsPure(t *testing.T) {
	svc := newCatalogFixture()
	params := ProductFilterParams{
		Category: "home",
		SortKey:  models.SortKeyPriceLowHigh,
	}

	first := svc.ListProducts(params)
	second := svc.ListProducts(params)

	assert.Equal(t, first, second)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newCatalogFixture()

	_, err := svc.GetProduct("missing")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFeaturedProductsLimit(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.FeaturedProducts(2)

	assert.Equal(t, []string{"e1", "h1"}, productIDs(products))
}

func TestTopRatedProducts(t *testing.T) {
	svc := newCatalogFixture()

	products := svc.TopRatedProducts(3)

	assert.Equal(t, []string{"h2", "c1", "h3"}, productIDs(products))
}

func TestRelatedProductsSameCategoryExcludesSelf(t *testing.T) {
	svc := newCatalogFixture()

	related, err := svc.RelatedProducts("h1", 4)

	require.NoError(t, err)
	assert.Equal(t, []string{"h2", "h3"}, productIDs(related))
}

func TestVocabulariesComeFromSeed(t *testing.T) {
	svc := newCatalogFixture()

	assert.Len(t, svc.Categories(), 2)
	assert.Len(t, svc.PriceRanges(), 2)
	assert.Equal(t, "home", svc.Categories()[0].Value)
}
