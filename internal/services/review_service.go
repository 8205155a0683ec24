// internal/services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NipunRaj96/Vouch-IT/internal/models"
	"github.com/NipunRaj96/Vouch-IT/internal/store"
	"github.com/NipunRaj96/Vouch-IT/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

const anonymousReviewer = "Anonymous"

type ReviewService struct {
	store      *store.Store
	classifier SentimentClassifier
}

type SubmitReviewRequest struct {
	Rating   float64 `json:"rating" validate:"required,min=1,max=5,half_step"`
	Comment  string  `json:"comment" validate:"required,notblank"`
	UserName string  `json:"user_name,omitempty" validate:"omitempty,max=100"`
}

type RatingBucket struct {
	Stars   int `json:"stars"`
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

func NewReviewService(store *store.Store, classifier SentimentClassifier) *ReviewService {
	return &ReviewService{
		store:      store,
		classifier: classifier,
	}
}

// SubmitReview runs the full submission flow: validate, classify, prepend to
// the product's review list, then recompute the product's rating and count.
// Validation happens before any network or store interaction; a failed
// classification never blocks the submission (the review is stored with the
// neutral label).
func (s *ReviewService) SubmitReview(ctx context.Context, productID string, req *SubmitReviewRequest) (*models.Review, models.RatingSummary, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, models.RatingSummary{}, fmt.Errorf("validation failed: %w", err)
	}

	if _, ok := s.store.Product(productID); !ok {
		return nil, models.RatingSummary{}, ErrProductNotFound
	}

	sentiment := s.classifier.Classify(ctx, req.Comment)

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = anonymousReviewer
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		Sentiment: sentiment,
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}

	if !s.store.AddReview(review) {
		return nil, models.RatingSummary{}, ErrProductNotFound
	}

	summary := RecomputeRating(s.store.Reviews(productID), sentiment)
	if summary.Count > 0 {
		s.store.SetRating(productID, summary)
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"sentiment":  sentiment,
		"rating":     summary.Rating,
		"count":      summary.Count,
	}).Info("Review submitted")

	return &review, summary, nil
}

// ListReviews returns the product's reviews, newest first.
func (s *ReviewService) ListReviews(productID string) ([]models.Review, error) {
	if _, ok := s.store.Product(productID); !ok {
		return nil, ErrProductNotFound
	}

	return s.store.Reviews(productID), nil
}

// RatingDistribution buckets the product's reviews by rounded star value,
// 5 down to 1, with the share of each bucket as a whole percentage.
func (s *ReviewService) RatingDistribution(productID string) ([]RatingBucket, error) {
	reviews, err := s.ListReviews(productID)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, 5)
	for _, r := range reviews {
		counts[int(math.Round(r.Rating))]++
	}

	buckets := make([]RatingBucket, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		bucket := RatingBucket{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			bucket.Percent = int(math.Round(float64(counts[stars]) / float64(len(reviews)) * 100))
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}
