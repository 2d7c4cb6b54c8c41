package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

type ReviewRepository interface {
	// CreateReviewWithAggregates inserts the review and writes the book's
	// recomputed average rating and review count in the same transaction.
	CreateReviewWithAggregates(ctx context.Context, review *models.Review) (*models.RatingStats, error)
	GetReviewByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*models.Review, error)
	ListReviewsByBook(ctx context.Context, bookID uuid.UUID) ([]*models.Review, error)
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) CreateReviewWithAggregates(ctx context.Context, review *models.Review) (*models.RatingStats, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	insertQuery := `
		INSERT INTO reviews (id, user_id, book_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err = tx.QueryRowContext(dbCtx, insertQuery,
		review.ID, review.UserID, review.BookID, review.Rating, review.Comment).
		Scan(&review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	statsQuery := `SELECT AVG(rating), COUNT(*) FROM reviews WHERE book_id = $1`

	stats := &models.RatingStats{}

	var avg float64

	if err := tx.QueryRowContext(dbCtx, statsQuery, review.BookID).Scan(&avg, &stats.TotalReviews); err != nil {
		return nil, fmt.Errorf("failed to compute rating stats: %w", err)
	}

	// Mean of all ratings, rounded to 1 decimal.
	stats.AverageRating = math.Round(avg*10) / 10

	updateQuery := `
		UPDATE books SET average_rating = $1, total_reviews = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := tx.ExecContext(dbCtx, updateQuery, stats.AverageRating, stats.TotalReviews, review.BookID); err != nil {
		return nil, fmt.Errorf("failed to update book rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review transaction: %w", err)
	}

	return stats, nil
}

func (r *reviewRepository) GetReviewByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*models.Review, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	review := &models.Review{}

	query := `
		SELECT id, user_id, book_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND book_id = $2
	`

	err := r.DB.QueryRowContext(dbCtx, query, userID, bookID).
		Scan(&review.ID, &review.UserID, &review.BookID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviewsByBook returns the book's reviews newest first with the
// reviewer's display name joined in.
func (r *reviewRepository) ListReviewsByBook(ctx context.Context, bookID uuid.UUID) ([]*models.Review, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT r.id, r.user_id, r.book_id, r.rating, r.comment, r.created_at, u.name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	defer rows.Close()

	var reviews []*models.Review

	for rows.Next() {

		review := &models.Review{}

		err := rows.Scan(&review.ID, &review.UserID, &review.BookID, &review.Rating, &review.Comment,
			&review.CreatedAt, &review.ReviewerName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
