package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	BookID       uuid.UUID `json:"book_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddReviewRequest carries the body of a review submission; the book comes
// from the URL.
type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// RatingStats is the aggregate recomputed on every review insert.
type RatingStats struct {
	AverageRating float64
	TotalReviews  int
}
