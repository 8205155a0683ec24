// internal/models/product.go
package models

import "time"

// Product is a read-only catalog record seeded at process start. Rating and
// ReviewCount are the only mutable fields and are written exclusively by the
// rating recomputation path after a review submission.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Gallery     []string  `json:"gallery,omitempty"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Specs       []string  `json:"specs,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
