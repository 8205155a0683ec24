// internal/models/review.go
package models

import "time"

// Review belongs to exactly one product. Sentiment is always one of the three
// enum values; a stored review never carries an empty sentiment.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	Sentiment Sentiment `json:"sentiment"`
	UserName  string    `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
