package service

import (
	"context"
	"database/sql"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/google/uuid"
)

type ReviewService interface {
	AddReview(ctx context.Context, userID uuid.UUID, bookID uuid.UUID, req *models.AddReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, bookID uuid.UUID) ([]*models.Review, error)
}

type reviewService struct {
	repo     repository.ReviewRepository
	bookRepo repository.BookRepository
}

func NewReviewService(repo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{repo: repo, bookRepo: bookRepo}
}

// AddReview records one review per user per book and folds it into the
// book's aggregate rating atomically.
func (s *reviewService) AddReview(ctx context.Context, userID uuid.UUID, bookID uuid.UUID, req *models.AddReviewRequest) (*models.Review, error) {

	if _, err := s.bookRepo.GetBookByID(ctx, bookID); err != nil {
		return nil, errors.NotFoundError("Book not found").WithError(err)
	}

	existing, err := s.repo.GetReviewByUserAndBook(ctx, userID, bookID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.DatabaseError("Failed to check for an existing review").WithError(err)
	}

	if existing != nil {
		return nil, errors.BadRequestError("You have already reviewed this book")
	}

	review := &models.Review{
		ID:      uuid.New(),
		UserID:  userID,
		BookID:  bookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if _, err := s.repo.CreateReviewWithAggregates(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to create review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, bookID uuid.UUID) ([]*models.Review, error) {

	if _, err := s.bookRepo.GetBookByID(ctx, bookID); err != nil {
		return nil, errors.NotFoundError("Book not found").WithError(err)
	}

	reviews, err := s.repo.ListReviewsByBook(ctx, bookID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch reviews").WithError(err)
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}

	return reviews, nil
}
