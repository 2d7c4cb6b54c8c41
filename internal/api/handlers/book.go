package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	service "github.com/aaravmahajanofficial/online-bookstore-platform/internal/services"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type BookHandler struct {
	bookService service.BookService
	validator   *validator.Validate
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService, validator: validator.New()}
}

// ListBooks godoc
//	@Summary		List or search books
//	@Description	Returns the catalog, filtered by an optional keyword against the title. Listings are served from the cache when possible.
//	@Tags			Books
//	@Produce		json
//	@Param			keyword	query		string					false	"Title keyword filter"
//	@Success		200		{object}	models.BookListResponse	"Books with their source (cache or db)"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/books [get]
func (h *BookHandler) ListBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		keyword := r.URL.Query().Get("keyword")

		resp, err := h.bookService.ListBooks(r.Context(), keyword)
		if err != nil {
			logger.Error("Failed to list books", slog.String("keyword", keyword), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Books listed", slog.Int("count", len(resp.Books)), slog.String("source", string(resp.Source)))
		response.Success(w, http.StatusOK, resp)
	}
}

// GetBook godoc
//	@Summary		Get a book by ID
//	@Tags			Books
//	@Produce		json
//	@Param			id	path		string					true	"Book ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Book				"Book"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid book ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Book not found"
//	@Router			/books/{id} [get]
func (h *BookHandler) GetBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid book id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		book, err := h.bookService.GetBookByID(r.Context(), id)
		if err != nil {
			logger.Warn("Book not found", slog.String("bookId", id.String()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, book)
	}
}

// CreateBook godoc
//	@Summary		Add a book to the catalog
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			book	body		models.CreateBookRequest	true	"Book details"
//	@Success		201		{object}	models.Book					"Created book"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/books [post]
func (h *BookHandler) CreateBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateBookRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create book input")
			return
		}

		book, err := h.bookService.CreateBook(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create book", slog.String("title", req.Title), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Book created", slog.String("bookId", book.ID.String()))
		response.Success(w, http.StatusCreated, book)
	}
}
