package models

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	Stock         int64     `json:"stock"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateBookRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=300"`
	Author        string   `json:"author" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	DiscountPrice *float64 `json:"discount_price,omitempty" validate:"omitempty,gte=0"`
	Description   string   `json:"description,omitempty"`
	ImageURL      string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Stock         int64    `json:"stock" validate:"gte=0"`
}

// BookListSource reports whether a listing was served from the cache or the
// primary store.
type BookListSource string

const (
	BookListSourceCache BookListSource = "cache"
	BookListSourceDB    BookListSource = "db"
)

type BookListResponse struct {
	Books  []*Book        `json:"books"`
	Source BookListSource `json:"source"`
}
