package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	service "github.com/aaravmahajanofficial/online-bookstore-platform/internal/services"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the authenticated user's cart
//	@Description	Returns the cart with book details expanded. A user without a cart gets an empty one.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartDetail		"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddToCart godoc
//	@Summary		Add a book to the cart
//	@Description	Adds the book with the given quantity (default 1). Adding a book already in the cart merges quantities.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddToCartRequest	true	"Book and quantity"
//	@Success		200		{object}	models.CartDetail		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Book not found"
//	@Failure		409		{object}	response.ErrorResponse	"Concurrent cart modification"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart modification attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddToCart(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add to cart", slog.String("bookId", req.BookID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Book added to cart", slog.String("bookId", req.BookID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveFromCart godoc
//	@Summary		Remove a book from the cart
//	@Description	Removes the book entirely. Removing a book that is not in the cart succeeds.
//	@Tags			Cart
//	@Produce		json
//	@Param			bookId	path		string					true	"Book ID (UUID)"	Format(uuid)
//	@Success		200		{object}	models.CartDetail		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid book ID format"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart/items/{bookId} [delete]
func (h *CartHandler) RemoveFromCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart modification attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		bookID, err := utils.ParseID(r, "bookId")
		if err != nil {
			logger.Warn("Invalid book id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveFromCart(r.Context(), claims.UserID, bookID)
		if err != nil {
			logger.Error("Failed to remove from cart", slog.String("bookId", bookID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Book removed from cart", slog.String("bookId", bookID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	map[string]string		"Cart cleared"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart modification attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.cartService.ClearCart(r.Context(), claims.UserID); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
	}
}
