// internal/services/rating_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
)

func reviewsWithRatings(ratings ...float64) []models.Review {
	reviews := make([]models.Review, 0, len(ratings))
	for _, r := range ratings {
		reviews = append(reviews, models.Review{Rating: r})
	}
	return reviews
}

func TestRecomputeRatingPositiveAdjustment(t *testing.T) {
	// mean of [5,3,5] = 4.333, +0.2 = 4.533, rounds to 4.5
	summary := RecomputeRating(reviewsWithRatings(5, 3, 5), models.SentimentPositive)

	assert.Equal(t, 4.5, summary.Rating)
	assert.Equal(t, 3, summary.Count)
}

func TestRecomputeRatingClampsAtFloor(t *testing.T) {
	// mean of [1,1] = 1.0, -0.2 would leave the valid range
	summary := RecomputeRating(reviewsWithRatings(1, 1), models.SentimentNegative)

	assert.Equal(t, 1.0, summary.Rating)
	assert.Equal(t, 2, summary.Count)
}

func TestRecomputeRatingClampsAtCeil(t *testing.T) {
	summary := RecomputeRating(reviewsWithRatings(5, 5, 5), models.SentimentPositive)

	assert.Equal(t, 5.0, summary.Rating)
}

func TestRecomputeRatingNeutralKeepsMean(t *testing.T) {
	// mean of [4,4.5] = 4.25, rounds half-up to 4.3
	summary := RecomputeRating(reviewsWithRatings(4, 4.5), models.SentimentNeutral)

	assert.Equal(t, 4.3, summary.Rating)
}

func TestRecomputeRatingAlwaysInBounds(t *testing.T) {
	sentiments := []models.Sentiment{
		models.SentimentPositive,
		models.SentimentNegative,
		models.SentimentNeutral,
	}
	fixtures := [][]float64{
		{1},
		{5},
		{1, 5},
		{2.5, 3.5, 4.5},
		{1, 1, 1, 1.5},
		{5, 5, 4.5},
	}

	for _, sentiment := range sentiments {
		for _, ratings := range fixtures {
			summary := RecomputeRating(reviewsWithRatings(ratings...), sentiment)
			assert.GreaterOrEqual(t, summary.Rating, 1.0)
			assert.LessOrEqual(t, summary.Rating, 5.0)
			assert.Equal(t, len(ratings), summary.Count)
		}
	}
}

func TestRecomputeRatingEmptyInput(t *testing.T) {
	summary := RecomputeRating(nil, models.SentimentPositive)

	assert.Equal(t, models.RatingSummary{}, summary)
}
