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

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// AddReview godoc
//	@Summary		Review a book
//	@Description	Records a 1-5 star review. Each user can review a book once; the book's aggregate rating is updated atomically.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			bookId	path		string					true	"Book ID (UUID)"	Format(uuid)
//	@Param			review	body		models.AddReviewRequest	true	"Rating and comment"
//	@Success		201		{object}	models.Review			"Created review"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or already reviewed"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Book not found"
//	@Security		BearerAuth
//	@Router			/books/{bookId}/reviews [post]
func (h *ReviewHandler) AddReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized review attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		bookID, err := utils.ParseID(r, "bookId")
		if err != nil {
			logger.Warn("Invalid book id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AddReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.reviewService.AddReview(r.Context(), claims.UserID, bookID, &req)
		if err != nil {
			logger.Warn("Failed to add review", slog.String("bookId", bookID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review added", slog.String("bookId", bookID.String()), slog.Int("rating", review.Rating))
		response.Success(w, http.StatusCreated, review)
	}
}

// ListReviews godoc
//	@Summary		List a book's reviews
//	@Tags			Reviews
//	@Produce		json
//	@Param			bookId	path		string					true	"Book ID (UUID)"	Format(uuid)
//	@Success		200		{array}		models.Review			"Reviews, newest first"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid book ID format"
//	@Failure		404		{object}	response.ErrorResponse	"Book not found"
//	@Router			/books/{bookId}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		bookID, err := utils.ParseID(r, "bookId")
		if err != nil {
			logger.Warn("Invalid book id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		reviews, err := h.reviewService.ListReviews(r.Context(), bookID)
		if err != nil {
			logger.Warn("Failed to list reviews", slog.String("bookId", bookID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}
