package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/cache"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/google/uuid"
)

type BookService interface {
	ListBooks(ctx context.Context, keyword string) (*models.BookListResponse, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (*models.Book, error)
	CreateBook(ctx context.Context, req *models.CreateBookRequest) (*models.Book, error)
}

type bookService struct {
	repo  repository.BookRepository
	cache cache.Cache
}

func NewBookService(repo repository.BookRepository, cache cache.Cache) BookService {
	return &bookService{repo: repo, cache: cache}
}

// ListBooks serves the listing from the cache when it can. Cache errors are
// treated as misses, the database stays the source of truth.
func (s *bookService) ListBooks(ctx context.Context, keyword string) (*models.BookListResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := cache.BookListKey(keyword)

	var cached []*models.Book

	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Cache lookup failed, falling back to database", slog.String("key", key), slog.Any("error", err))
	}

	if hit {
		return &models.BookListResponse{Books: cached, Source: models.BookListSourceCache}, nil
	}

	books, err := s.repo.SearchBooks(ctx, keyword)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch books").WithError(err)
	}

	if books == nil {
		books = []*models.Book{}
	}

	if err := s.cache.Set(ctx, key, books, 0); err != nil {
		logger.Warn("Failed to populate the book list cache", slog.String("key", key), slog.Any("error", err))
	}

	return &models.BookListResponse{Books: books, Source: models.BookListSourceDB}, nil
}

func (s *bookService) GetBookByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {

	book, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Book not found").WithError(err)
	}

	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, req *models.CreateBookRequest) (*models.Book, error) {

	book := &models.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		Author:        req.Author,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Stock:         req.Stock,
	}

	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, errors.DatabaseError("Failed to create book").WithError(err)
	}

	// Cached listings are not invalidated, new books show up once the TTL
	// ages the entry out.
	return book, nil
}
