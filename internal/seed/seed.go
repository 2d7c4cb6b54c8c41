package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type bookSeed struct {
	ID            uuid.UUID
	Title         string
	Author        string
	Price         float64
	DiscountPrice *float64
	Description   string
	ImageURL      string
	Stock         int64
}

func discounted(p float64) *float64 { return &p }

// Apply inserts a starter catalog for manual testing. Fixed IDs plus
// ON CONFLICT make it idempotent.
func Apply(ctx context.Context, db *sql.DB) error {

	books := []bookSeed{
		{
			ID:            uuid.MustParse("0b52e271-9d1b-4d5e-a2bd-81a1391bd864"),
			Title:         "The Pragmatic Programmer",
			Author:        "David Thomas, Andrew Hunt",
			Price:         49.99,
			DiscountPrice: discounted(39.99),
			Description:   "Your journey to mastery, 20th anniversary edition.",
			ImageURL:      "https://images.example.com/books/pragmatic-programmer.jpg",
			Stock:         120,
		},
		{
			ID:          uuid.MustParse("3f8a1f0e-54c3-4e3e-9c52-6f5f0a2f9d11"),
			Title:       "Designing Data-Intensive Applications",
			Author:      "Martin Kleppmann",
			Price:       54.99,
			Description: "The big ideas behind reliable, scalable, and maintainable systems.",
			ImageURL:    "https://images.example.com/books/ddia.jpg",
			Stock:       85,
		},
		{
			ID:            uuid.MustParse("8d6a7c44-2f0b-4a8e-b5d9-07f6f1f3c2a5"),
			Title:         "Clean Code",
			Author:        "Robert C. Martin",
			Price:         44.99,
			DiscountPrice: discounted(34.99),
			Description:   "A handbook of agile software craftsmanship.",
			ImageURL:      "https://images.example.com/books/clean-code.jpg",
			Stock:         200,
		},
		{
			ID:          uuid.MustParse("c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"),
			Title:       "The Go Programming Language",
			Author:      "Alan A. A. Donovan, Brian W. Kernighan",
			Price:       39.99,
			Description: "The authoritative resource for writing clear, idiomatic Go.",
			ImageURL:    "https://images.example.com/books/gopl.jpg",
			Stock:       150,
		},
		{
			ID:          uuid.MustParse("5e4d3c2b-1a09-4f8e-b7d6-c5a4b3928170"),
			Title:       "Refactoring",
			Author:      "Martin Fowler",
			Price:       47.99,
			Description: "Improving the design of existing code, second edition.",
			ImageURL:    "https://images.example.com/books/refactoring.jpg",
			Stock:       60,
		},
	}

	for _, b := range books {
		if err := upsertBook(ctx, db, b); err != nil {
			return fmt.Errorf("upsert book %q: %w", b.Title, err)
		}
	}

	return nil
}

func upsertBook(ctx context.Context, db *sql.DB, b bookSeed) error {
	const q = `
INSERT INTO books (id, title, author, price, discount_price, description, image_url, stock, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title,
    author = EXCLUDED.author,
    price = EXCLUDED.price,
    discount_price = EXCLUDED.discount_price,
    description = EXCLUDED.description,
    image_url = EXCLUDED.image_url,
    stock = EXCLUDED.stock,
    updated_at = NOW()
`
	_, err := db.ExecContext(ctx, q, b.ID, b.Title, b.Author, b.Price, b.DiscountPrice, b.Description, b.ImageURL, b.Stock)
	if err != nil {
		return err
	}
	return nil
}
