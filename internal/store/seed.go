// internal/store/seed.go
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
)

// Seed is the static catalog document supplied at process start. The category
// and price-range vocabularies live here too, so the filter code never
// hardcodes them.
type Seed struct {
	Categories  []models.FilterOption `json:"categories"`
	PriceRanges []models.FilterOption `json:"price_ranges"`
	Products    []SeedProduct         `json:"products"`
}

type SeedProduct struct {
	models.Product
	Reviews []models.Review `json:"reviews,omitempty"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(seed.Products) == 0 {
		return nil, fmt.Errorf("seed file %s contains no products", path)
	}

	seen := make(map[string]bool, len(seed.Products))
	for _, p := range seed.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("seed product %q has no id", p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate seed product id %q", p.ID)
		}
		seen[p.ID] = true

		for i, r := range p.Reviews {
			if !r.Sentiment.Valid() {
				return nil, fmt.Errorf("seed review %d of product %q has invalid sentiment %q", i, p.ID, r.Sentiment)
			}
		}
	}

	return &seed, nil
}
