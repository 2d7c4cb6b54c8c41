package repository

import (
	"context"
	"database/sql"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users(name, email, password, mobile, created_at, updated_at)
		VALUES($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Name, user.Email, user.Password, user.Mobile).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	query := `SELECT id, name, email, password, mobile, created_at, updated_at
			  FROM users
			  WHERE email = $1`

	err := r.DB.QueryRowContext(dbCtx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Mobile, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	query := `
		SELECT id, name, email, mobile, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Mobile, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users SET name = $1, mobile = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, user.Name, user.Mobile, user.ID).Scan(&user.UpdatedAt)
}
