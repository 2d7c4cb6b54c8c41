package repository_test

import (
	"database/sql"
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

var addressColumns = []string{
	"id", "user_id", "name", "phone", "street", "city", "state", "postal_code", "type", "created_at", "updated_at",
}

func setupAddressRepoTest(t *testing.T) (repository.AddressRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewAddressRepo(db)
	require.NotNil(t, repo, "NewAddressRepo should return a non-nil repository")

	return repo, mock
}

func newTestAddress(userID uuid.UUID) *models.Address {
	return &models.Address{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Asha",
		Phone:      "+911234567890",
		Street:     "12 Library Lane",
		City:       "Pune",
		State:      "MH",
		PostalCode: "411001",
		Type:       models.AddressTypeHome,
	}
}

func TestNewAddressRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewAddressRepo(db)
	assert.NotNil(t, repo, "NewAddressRepo should return a non-nil repository")
}

func TestCreateAddressRow(t *testing.T) {
	repo, mock := setupAddressRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	now := time.Now()

	expectedSQL := regexp.QuoteMeta(`
		INSERT INTO addresses (user_id, name, phone, street, city, state, postal_code, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		address := newTestAddress(userID)
		generatedID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(generatedID, now, now)
		mock.ExpectQuery(expectedSQL).
			WithArgs(address.UserID, address.Name, address.Phone, address.Street, address.City,
				address.State, address.PostalCode, address.Type).
			WillReturnRows(rows)

		// Act
		err := repo.CreateAddress(ctx, address)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, generatedID, address.ID, "Database-generated ID should be scanned back")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		address := newTestAddress(userID)
		dbErr := errors.New("insert failed")

		mock.ExpectQuery(expectedSQL).
			WithArgs(address.UserID, address.Name, address.Phone, address.Street, address.City,
				address.State, address.PostalCode, address.Type).
			WillReturnError(dbErr)

		// Act
		err := repo.CreateAddress(ctx, address)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestGetAddressByID(t *testing.T) {
	repo, mock := setupAddressRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	now := time.Now()

	expectedSQL := regexp.QuoteMeta(
		`SELECT id, user_id, name, phone, street, city, state, postal_code, type, created_at, updated_at FROM addresses WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		address := newTestAddress(userID)

		rows := sqlmock.NewRows(addressColumns).
			AddRow(address.ID, address.UserID, address.Name, address.Phone, address.Street,
				address.City, address.State, address.PostalCode, address.Type, now, now)
		mock.ExpectQuery(expectedSQL).WithArgs(address.ID).WillReturnRows(rows)

		// Act
		got, err := repo.GetAddressByID(ctx, address.ID)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, address.ID, got.ID)
		assert.Equal(t, models.AddressTypeHome, got.Type)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		missingID := uuid.New()
		mock.ExpectQuery(expectedSQL).WithArgs(missingID).WillReturnError(sql.ErrNoRows)

		// Act
		got, err := repo.GetAddressByID(ctx, missingID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestListAddressesByUser(t *testing.T) {
	repo, mock := setupAddressRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	now := time.Now()

	expectedSQL := regexp.QuoteMeta(
		`SELECT id, user_id, name, phone, street, city, state, postal_code, type, created_at, updated_at FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		first := newTestAddress(userID)
		second := newTestAddress(userID)
		second.Type = models.AddressTypeWork

		rows := sqlmock.NewRows(addressColumns).
			AddRow(first.ID, first.UserID, first.Name, first.Phone, first.Street, first.City,
				first.State, first.PostalCode, first.Type, now, now).
			AddRow(second.ID, second.UserID, second.Name, second.Phone, second.Street, second.City,
				second.State, second.PostalCode, second.Type, now, now)
		mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnRows(rows)

		// Act
		addresses, err := repo.ListAddressesByUser(ctx, userID)

		// Assert
		require.NoError(t, err)
		require.Len(t, addresses, 2)
		assert.Equal(t, first.ID, addresses[0].ID)
		assert.Equal(t, models.AddressTypeWork, addresses[1].Type)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - No Addresses", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnRows(sqlmock.NewRows(addressColumns))

		// Act
		addresses, err := repo.ListAddressesByUser(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, addresses)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("query failed")
		mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnError(dbErr)

		// Act
		addresses, err := repo.ListAddressesByUser(ctx, userID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, addresses)
		assert.ErrorIs(t, err, dbErr)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestUpdateAddressRow(t *testing.T) {
	repo, mock := setupAddressRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	updatedAt := time.Now()

	expectedSQL := regexp.QuoteMeta(`
		UPDATE addresses
		SET name = $1, phone = $2, street = $3, city = $4, state = $5, postal_code = $6, type = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		address := newTestAddress(userID)
		address.City = "Mumbai"

		rows := sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt)
		mock.ExpectQuery(expectedSQL).
			WithArgs(address.Name, address.Phone, address.Street, address.City, address.State,
				address.PostalCode, address.Type, address.ID).
			WillReturnRows(rows)

		// Act
		err := repo.UpdateAddress(ctx, address)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, updatedAt, address.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Address Vanished", func(t *testing.T) {
		// Arrange
		address := newTestAddress(userID)

		mock.ExpectQuery(expectedSQL).
			WithArgs(address.Name, address.Phone, address.Street, address.City, address.State,
				address.PostalCode, address.Type, address.ID).
			WillReturnError(sql.ErrNoRows)

		// Act
		err := repo.UpdateAddress(ctx, address)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestDeleteAddressRow(t *testing.T) {
	repo, mock := setupAddressRepoTest(t)
	ctx := t.Context()

	addressID := uuid.New()

	expectedSQL := regexp.QuoteMeta(`DELETE FROM addresses WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(expectedSQL).WithArgs(addressID).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.DeleteAddress(ctx, addressID)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Address Vanished", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(expectedSQL).WithArgs(addressID).WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.DeleteAddress(ctx, addressID)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows, "Deleting a missing address should report no rows")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}
