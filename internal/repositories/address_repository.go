package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, user_id, name, phone, street, city, state, postal_code, type, created_at, updated_at`

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (user_id, name, phone, street, city, state, postal_code, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		address.UserID, address.Name, address.Phone, address.Street, address.City, address.State,
		address.PostalCode, address.Type).
		Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	address := &models.Address{}

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&address.ID, &address.UserID, &address.Name, &address.Phone, &address.Street, &address.City,
			&address.State, &address.PostalCode, &address.Type, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (r *addressRepository) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	defer rows.Close()

	var addresses []*models.Address

	for rows.Next() {

		address := &models.Address{}

		err := rows.Scan(&address.ID, &address.UserID, &address.Name, &address.Phone, &address.Street,
			&address.City, &address.State, &address.PostalCode, &address.Type, &address.CreatedAt, &address.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}

		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET name = $1, phone = $2, street = $3, city = $4, state = $5, postal_code = $6, type = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		address.Name, address.Phone, address.Street, address.City, address.State, address.PostalCode,
		address.Type, address.ID).
		Scan(&address.UpdatedAt)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
