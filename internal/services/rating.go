// internal/services/rating.go
package services

import (
	"math"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
)

const (
	ratingFloor         = 1.0
	ratingCeil          = 5.0
	sentimentAdjustment = 0.2
)

// RecomputeRating derives a product's displayed rating from its full review
// list. The list must already include the just-submitted review; only that
// review's sentiment nudges the arithmetic mean, by +0.2 for positive and
// -0.2 for negative. The adjusted value is clamped to [1.0, 5.0] and rounded
// half-up at the tenths digit. An empty list yields a zero summary, which
// callers treat as "leave the product unchanged".
func RecomputeRating(reviews []models.Review, latest models.Sentiment) models.RatingSummary {
	if len(reviews) == 0 {
		return models.RatingSummary{}
	}

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := sum / float64(len(reviews))

	switch latest {
	case models.SentimentPositive:
		mean += sentimentAdjustment
	case models.SentimentNegative:
		mean -= sentimentAdjustment
	}

	mean = math.Min(math.Max(mean, ratingFloor), ratingCeil)

	return models.RatingSummary{
		Rating: math.Floor(mean*10+0.5) / 10,
		Count:  len(reviews),
	}
}
