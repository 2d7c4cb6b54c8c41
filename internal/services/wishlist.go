package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/google/uuid"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]models.WishlistItemDetail, error)
	AddToWishlist(ctx context.Context, userID uuid.UUID, req *models.AddToWishlistRequest) ([]models.WishlistItemDetail, error)
	RemoveFromWishlist(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) ([]models.WishlistItemDetail, error)
}

type wishlistService struct {
	repo     repository.WishlistRepository
	bookRepo repository.BookRepository
}

func NewWishlistService(repo repository.WishlistRepository, bookRepo repository.BookRepository) WishlistService {
	return &wishlistService{repo: repo, bookRepo: bookRepo}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]models.WishlistItemDetail, error) {

	wishlist, err := s.getOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.expandWishlist(ctx, wishlist), nil
}

// AddToWishlist keeps each book at most once; adding it again is rejected.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID uuid.UUID, req *models.AddToWishlistRequest) ([]models.WishlistItemDetail, error) {

	if _, err := s.bookRepo.GetBookByID(ctx, req.BookID); err != nil {
		return nil, errors.NotFoundError("Book not found").WithError(err)
	}

	wishlist, err := s.getOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range wishlist.Items {
		if item.BookID == req.BookID {
			return nil, errors.BadRequestError("Book is already in the wishlist")
		}
	}

	wishlist.Items = append(wishlist.Items, models.WishlistItem{BookID: req.BookID, AddedAt: time.Now()})
	wishlist.UpdatedAt = time.Now()

	if err := s.repo.UpdateWishlist(ctx, wishlist); err != nil {
		return nil, errors.DatabaseError("Failed to update wishlist").WithError(err)
	}

	return s.expandWishlist(ctx, wishlist), nil
}

// RemoveFromWishlist is idempotent, removing an absent book succeeds.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) ([]models.WishlistItemDetail, error) {

	wishlist, err := s.getOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := wishlist.Items[:0]

	for _, item := range wishlist.Items {
		if item.BookID != bookID {
			items = append(items, item)
		}
	}

	wishlist.Items = items
	wishlist.UpdatedAt = time.Now()

	if err := s.repo.UpdateWishlist(ctx, wishlist); err != nil {
		return nil, errors.DatabaseError("Failed to update wishlist").WithError(err)
	}

	return s.expandWishlist(ctx, wishlist), nil
}

func (s *wishlistService) getOrCreateWishlist(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {

	wishlist, err := s.repo.GetWishlistByUserID(ctx, userID)
	if err == nil {
		return wishlist, nil
	}

	if err != sql.ErrNoRows {
		return nil, errors.DatabaseError("Failed to fetch wishlist").WithError(err)
	}

	wishlist = &models.Wishlist{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []models.WishlistItem{},
	}

	if err := s.repo.CreateWishlist(ctx, wishlist); err != nil {
		return nil, errors.DatabaseError("Failed to create wishlist").WithError(err)
	}

	return wishlist, nil
}

func (s *wishlistService) expandWishlist(ctx context.Context, wishlist *models.Wishlist) []models.WishlistItemDetail {

	details := []models.WishlistItemDetail{}

	for _, item := range wishlist.Items {

		book, err := s.bookRepo.GetBookByID(ctx, item.BookID)
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Wishlist references a missing book",
				slog.String("bookId", item.BookID.String()), slog.Any("error", err))

			continue
		}

		details = append(details, models.WishlistItemDetail{Book: book, AddedAt: item.AddedAt})
	}

	return details
}
