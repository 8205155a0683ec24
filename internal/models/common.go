// internal/models/common.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Enums
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ParseSentiment normalizes free-form classifier output into one of the three
// labels. Matching is by substring containment in priority order; anything
// unrecognized falls back to neutral.
func ParseSentiment(text string) Sentiment {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if strings.Contains(normalized, "positive") {
		return SentimentPositive
	}
	if strings.Contains(normalized, "negative") {
		return SentimentNegative
	}
	return SentimentNeutral
}

type SortKey string

const (
	SortKeyFeatured     SortKey = "featured"
	SortKeyPriceLowHigh SortKey = "price-low-high"
	SortKeyPriceHighLow SortKey = "price-high-low"
	SortKeyRating       SortKey = "rating"
)

// ParseSortKey maps a sort token from the browse UI onto a known sort order.
// Unknown tokens keep the default (featured) order.
func ParseSortKey(token string) SortKey {
	switch SortKey(token) {
	case SortKeyPriceLowHigh, SortKeyPriceHighLow, SortKeyRating:
		return SortKey(token)
	}
	return SortKeyFeatured
}

// PriceRange is an inclusive price interval. Max is nil for an open-ended
// lower bound ("5000+").
type PriceRange struct {
	Min float64
	Max *float64
}

// ParsePriceRange parses a price-range token of the form "min-max" or "min+".
// An empty token means no price filter and returns nil.
func ParsePriceRange(token string) (*PriceRange, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	if strings.HasSuffix(token, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(token, "+"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price range %q", token)
		}
		return &PriceRange{Min: min}, nil
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid price range %q", token)
	}

	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price range %q", token)
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price range %q", token)
	}
	if max < min {
		return nil, fmt.Errorf("invalid price range %q", token)
	}

	return &PriceRange{Min: min, Max: &max}, nil
}

// Contains reports whether price falls inside the interval, endpoints
// inclusive.
func (r *PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// RatingSummary is the aggregator output: the adjusted product rating and the
// total review count.
type RatingSummary struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// FilterOption is a single entry of the category or price-range vocabulary
// supplied by the seed document.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
