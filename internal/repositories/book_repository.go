package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

type BookRepository interface {
	CreateBook(ctx context.Context, book *models.Book) error
	GetBookByID(ctx context.Context, id uuid.UUID) (*models.Book, error)
	SearchBooks(ctx context.Context, keyword string) ([]*models.Book, error)
	UpdateRating(ctx context.Context, id uuid.UUID, stats *models.RatingStats) error
}

type bookRepository struct {
	DB *sql.DB
}

func NewBookRepo(db *sql.DB) BookRepository {
	return &bookRepository{DB: db}
}

const bookColumns = `id, title, author, price, discount_price, description, image_url, stock, average_rating, total_reviews, created_at, updated_at`

func (r *bookRepository) CreateBook(ctx context.Context, book *models.Book) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO books (title, author, price, discount_price, description, image_url, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		book.Title, book.Author, book.Price, book.DiscountPrice, book.Description, book.ImageURL, book.Stock).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *bookRepository) GetBookByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	book := &models.Book{}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&book.ID, &book.Title, &book.Author, &book.Price, &book.DiscountPrice, &book.Description,
			&book.ImageURL, &book.Stock, &book.AverageRating, &book.TotalReviews, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return book, nil
}

// SearchBooks runs a case-insensitive substring match against the title; an
// empty keyword returns the whole catalog.
func (r *bookRepository) SearchBooks(ctx context.Context, keyword string) ([]*models.Book, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}

	defer rows.Close()

	var books []*models.Book

	for rows.Next() {

		book := &models.Book{}

		err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Price, &book.DiscountPrice, &book.Description,
			&book.ImageURL, &book.Stock, &book.AverageRating, &book.TotalReviews, &book.CreatedAt, &book.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepository) UpdateRating(ctx context.Context, id uuid.UUID, stats *models.RatingStats) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE books SET average_rating = $1, total_reviews = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, stats.AverageRating, stats.TotalReviews, id)
	if err != nil {
		return fmt.Errorf("failed to update book rating: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
