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

// Bound on optimistic retries when a cart write loses to a concurrent one.
const maxCartUpdateRetries = 3

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartDetail, error)
	AddToCart(ctx context.Context, userID uuid.UUID, req *models.AddToCartRequest) (*models.CartDetail, error)
	RemoveFromCart(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*models.CartDetail, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	repo     repository.CartRepository
	bookRepo repository.BookRepository
}

func NewCartService(repo repository.CartRepository, bookRepo repository.BookRepository) CartService {
	return &cartService{repo: repo, bookRepo: bookRepo}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartDetail, error) {

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.expandCart(ctx, cart)
}

func (s *cartService) AddToCart(ctx context.Context, userID uuid.UUID, req *models.AddToCartRequest) (*models.CartDetail, error) {

	// the book must exist before it can be referenced from a cart
	if _, err := s.bookRepo.GetBookByID(ctx, req.BookID); err != nil {
		return nil, errors.NotFoundError("Book not found").WithError(err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart, err := s.mutateCart(ctx, userID, func(cart *models.Cart) {
		for i := range cart.Items {
			if cart.Items[i].BookID == req.BookID {
				cart.Items[i].Quantity += quantity
				return
			}
		}

		cart.Items = append(cart.Items, models.CartItem{BookID: req.BookID, Quantity: quantity})
	})
	if err != nil {
		return nil, err
	}

	return s.expandCart(ctx, cart)
}

// RemoveFromCart drops the book from the cart. Removing a book that is not
// in the cart is a no-op, not an error.
func (s *cartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*models.CartDetail, error) {

	cart, err := s.mutateCart(ctx, userID, func(cart *models.Cart) {
		items := cart.Items[:0]

		for _, item := range cart.Items {
			if item.BookID != bookID {
				items = append(items, item)
			}
		}

		cart.Items = items
	})
	if err != nil {
		return nil, err
	}

	return s.expandCart(ctx, cart)
}

// ClearCart empties the cart. Clearing a missing or already empty cart
// succeeds.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {

	_, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}

		return errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	_, err = s.mutateCart(ctx, userID, func(cart *models.Cart) {
		cart.Items = []models.CartItem{}
	})

	return err
}

// mutateCart runs the read-modify-write cycle under optimistic concurrency,
// re-reading and reapplying the mutation when a concurrent write wins.
func (s *cartService) mutateCart(ctx context.Context, userID uuid.UUID, mutate func(cart *models.Cart)) (*models.Cart, error) {

	for attempt := range maxCartUpdateRetries {

		cart, err := s.getOrCreateCart(ctx, userID)
		if err != nil {
			return nil, err
		}

		mutate(cart)
		cart.UpdatedAt = time.Now()

		err = s.repo.UpdateCart(ctx, cart)
		if err == nil {
			return cart, nil
		}

		if err != repository.ErrStaleVersion {
			return nil, errors.DatabaseError("Failed to update cart").WithError(err)
		}

		middleware.LoggerFromContext(ctx).Debug("Cart version conflict, retrying",
			slog.String("userId", userID.String()), slog.Int("attempt", attempt+1))
	}

	return nil, errors.ConflictError("Cart was modified concurrently, please retry")
}

func (s *cartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}

	if err != sql.ErrNoRows {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart = &models.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []models.CartItem{},
	}

	if err := s.repo.CreateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

// expandCart joins the raw book references with their catalog records.
// Books that vanished from the catalog are dropped from the view.
func (s *cartService) expandCart(ctx context.Context, cart *models.Cart) (*models.CartDetail, error) {

	detail := &models.CartDetail{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     []models.CartItemDetail{},
		UpdatedAt: cart.UpdatedAt,
	}

	for _, item := range cart.Items {

		book, err := s.bookRepo.GetBookByID(ctx, item.BookID)
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Cart references a missing book",
				slog.String("bookId", item.BookID.String()), slog.Any("error", err))

			continue
		}

		detail.Items = append(detail.Items, models.CartItemDetail{Book: book, Quantity: item.Quantity})
	}

	return detail, nil
}
