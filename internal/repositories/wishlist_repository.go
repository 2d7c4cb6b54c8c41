package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

type WishlistRepository interface {
	CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error
	GetWishlistByUserID(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error)
	UpdateWishlist(ctx context.Context, wishlist *models.Wishlist) error
}

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepo(db *sql.DB) WishlistRepository {
	return &wishlistRepository{DB: db}
}

func (r *wishlistRepository) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(wishlist.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist items: %w", err)
	}

	query := `
		INSERT INTO wishlists (id, user_id, items, created_at, updated_at)
		VALUES($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, wishlist.ID, wishlist.UserID, itemsJSON).
		Scan(&wishlist.ID, &wishlist.CreatedAt, &wishlist.UpdatedAt)
}

func (r *wishlistRepository) GetWishlistByUserID(ctx context.Context, userID uuid.UUID) (*models.Wishlist, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, items, created_at, updated_at
		FROM wishlists
		WHERE user_id = $1
	`

	wishlist := &models.Wishlist{}

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).
		Scan(&wishlist.ID, &wishlist.UserID, &itemsJSON, &wishlist.CreatedAt, &wishlist.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &wishlist.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wishlist items: %w", err)
	}

	return wishlist, nil
}

func (r *wishlistRepository) UpdateWishlist(ctx context.Context, wishlist *models.Wishlist) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(wishlist.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist items: %w", err)
	}

	query := `
		UPDATE wishlists
		SET items = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, itemsJSON, wishlist.ID)
	if err != nil {
		return fmt.Errorf("failed to update the wishlist: %w", err)
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
