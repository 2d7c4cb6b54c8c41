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

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, validator: validator.New()}
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized wishlist access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		items, err := h.wishlistService.GetWishlist(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// AddToWishlist rejects books that are already wishlisted.
func (h *WishlistHandler) AddToWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized wishlist modification attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddToWishlistRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to wishlist input")
			return
		}

		items, err := h.wishlistService.AddToWishlist(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to add to wishlist", slog.String("bookId", req.BookID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Book added to wishlist", slog.String("bookId", req.BookID.String()))
		response.Success(w, http.StatusOK, items)
	}
}

func (h *WishlistHandler) RemoveFromWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized wishlist modification attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		bookID, err := utils.ParseID(r, "bookId")
		if err != nil {
			logger.Warn("Invalid book id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		items, err := h.wishlistService.RemoveFromWishlist(r.Context(), claims.UserID, bookID)
		if err != nil {
			logger.Error("Failed to remove from wishlist", slog.String("bookId", bookID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Book removed from wishlist", slog.String("bookId", bookID.String()))
		response.Success(w, http.StatusOK, items)
	}
}
