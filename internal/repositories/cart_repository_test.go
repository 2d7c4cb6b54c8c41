package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepoTest(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCartRepo(db)
	require.NotNil(t, repo, "NewCartRepo should return a non-nil repository")

	return repo, mock
}

func TestNewCartRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	assert.NotNil(t, repo, "NewCartRepo should return a non-nil repository")
}

func TestCreateCart(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	cartID := uuid.New()
	now := time.Now()
	cart := &models.Cart{
		ID:     cartID,
		UserID: userID,
		Items:  []models.CartItem{},
	}
	expectedItemsJSON, err := json.Marshal(cart.Items)
	require.NoError(t, err, "Failed to marshal empty items for test setup")

	expectedSQL := regexp.QuoteMeta(`
		INSERT INTO carts (id, user_id, items, version, created_at, updated_at)
		VALUES($1, $2, $3, 1, NOW(), NOW())
		RETURNING id, version, created_at, updated_at
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).
			WithArgs(cart.ID, cart.UserID, expectedItemsJSON).
			WillReturnRows(sqlmock.NewRows([]string{"id", "version", "created_at", "updated_at"}).
				AddRow(cartID, int64(1), now, now))

		// Act
		err := repo.CreateCart(ctx, cart)

		// Assert
		require.NoError(t, err, "CreateCart should not return an error on success")
		assert.Equal(t, cartID, cart.ID, "Cart ID should remain the same")
		assert.Equal(t, int64(1), cart.Version, "A fresh cart should start at version 1")
		assert.WithinDuration(t, now, cart.CreatedAt, time.Second, "Cart CreatedAt should be updated")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database insertion error")
		mock.ExpectQuery(expectedSQL).
			WithArgs(cart.ID, cart.UserID, expectedItemsJSON).
			WillReturnError(dbError)

		// Act
		err := repo.CreateCart(ctx, cart)

		// Assert
		require.Error(t, err, "CreateCart should return an error on DB failure")
		assert.Equal(t, dbError, err, "Returned error should match the expected database error")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestGetCartByUserID(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	cartID := uuid.New()
	bookID := uuid.New()
	now := time.Now()
	expectedItems := []models.CartItem{
		{BookID: bookID, Quantity: 2},
	}
	expectedItemsJSON, err := json.Marshal(expectedItems)
	require.NoError(t, err, "Failed to marshal items for test setup")

	expectedSQL := regexp.QuoteMeta(`
		SELECT id, user_id, items, version, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows([]string{"id", "user_id", "items", "version", "created_at", "updated_at"}).
			AddRow(cartID, userID, expectedItemsJSON, int64(4), now, now)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(rows)

		// Act
		cart, err := repo.GetCartByUserID(ctx, userID)

		// Assert
		require.NoError(t, err, "GetCartByUserID should not return an error when cart is found")
		require.NotNil(t, cart, "Returned cart should not be nil")
		assert.Equal(t, cartID, cart.ID)
		assert.Equal(t, userID, cart.UserID)
		assert.Equal(t, expectedItems, cart.Items)
		assert.Equal(t, int64(4), cart.Version, "Version should round-trip from the row")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		// Act
		cart, err := repo.GetCartByUserID(ctx, userID)

		// Assert
		require.Error(t, err, "GetCartByUserID should return an error when cart is not found")
		assert.ErrorIs(t, err, sql.ErrNoRows, "Error should be sql.ErrNoRows")
		assert.Nil(t, cart, "Returned cart should be nil")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		invalidJSON := []byte(`[{"invalid"`)
		rows := sqlmock.NewRows([]string{"id", "user_id", "items", "version", "created_at", "updated_at"}).
			AddRow(cartID, userID, invalidJSON, int64(1), now, now)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(rows)

		// Act
		cart, err := repo.GetCartByUserID(ctx, userID)

		// Assert
		require.Error(t, err, "GetCartByUserID should return an error on unmarshal failure")
		assert.ErrorContains(t, err, "failed to unmarshal cart items", "Error message should indicate unmarshal failure")
		assert.Nil(t, cart, "Returned cart should be nil")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestUpdateCart(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()

	cartID := uuid.New()
	userID := uuid.New()
	bookID := uuid.New()
	updatedItems := []models.CartItem{
		{BookID: bookID, Quantity: 3},
	}
	cartToUpdate := &models.Cart{
		ID:      cartID,
		UserID:  userID,
		Items:   updatedItems,
		Version: 2,
	}
	expectedItemsJSON, err := json.Marshal(updatedItems)
	require.NoError(t, err, "Failed to marshal updated items for test setup")

	expectedSQL := regexp.QuoteMeta(`
		UPDATE carts
		SET items = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(expectedSQL).
			WithArgs(expectedItemsJSON, cartToUpdate.ID, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateCart(ctx, cartToUpdate)

		// Assert
		require.NoError(t, err, "UpdateCart should not return an error on success")
		assert.Equal(t, int64(3), cartToUpdate.Version, "Version should advance after a successful write")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Stale Version", func(t *testing.T) {
		// Arrange
		staleCart := &models.Cart{
			ID:      cartID,
			UserID:  userID,
			Items:   updatedItems,
			Version: 1,
		}
		mock.ExpectExec(expectedSQL).
			WithArgs(expectedItemsJSON, staleCart.ID, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateCart(ctx, staleCart)

		// Assert
		require.Error(t, err, "UpdateCart should return an error when the version check loses")
		assert.ErrorIs(t, err, repository.ErrStaleVersion, "Error should be ErrStaleVersion")
		assert.Equal(t, int64(1), staleCart.Version, "Version should not advance on a lost write")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database update error")
		mock.ExpectExec(expectedSQL).
			WithArgs(expectedItemsJSON, cartToUpdate.ID, cartToUpdate.Version).
			WillReturnError(dbError)

		// Act
		err := repo.UpdateCart(ctx, cartToUpdate)

		// Assert
		require.Error(t, err, "UpdateCart should return an error on DB failure")
		assert.ErrorIs(t, err, dbError, "Returned error should wrap the expected database error")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}
