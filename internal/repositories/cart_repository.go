package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

// ErrStaleVersion is returned when an optimistic version check loses to a
// concurrent writer. Callers re-read and retry, or give up with a conflict.
var ErrStaleVersion = errors.New("stale version: concurrent modification")

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	query := `
		INSERT INTO carts (id, user_id, items, version, created_at, updated_at)
		VALUES($1, $2, $3, 1, NOW(), NOW())
		RETURNING id, version, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.UserID, itemsJSON).
		Scan(&cart.ID, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, items, version, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	cart := &models.Cart{}

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).
		Scan(&cart.ID, &cart.UserID, &itemsJSON, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return cart, nil
}

// UpdateCart writes the item list guarded by the cart's version; a stale
// version yields ErrStaleVersion and no row is touched.
func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	query := `
		UPDATE carts
		SET items = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, itemsJSON, cart.ID, cart.Version)
	if err != nil {
		return fmt.Errorf("failed to update the cart: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return ErrStaleVersion
	}

	cart.Version++

	return nil
}
