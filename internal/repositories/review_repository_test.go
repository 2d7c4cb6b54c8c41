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

func setupReviewRepoTest(t *testing.T) (repository.ReviewRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewReviewRepo(db)
	require.NotNil(t, repo, "NewReviewRepo should return a non-nil repository")

	return repo, mock
}

func TestCreateReviewWithAggregates(t *testing.T) {
	repo, mock := setupReviewRepoTest(t)
	ctx := t.Context()

	reviewID := uuid.New()
	userID := uuid.New()
	bookID := uuid.New()
	now := time.Now()

	review := &models.Review{
		ID:      reviewID,
		UserID:  userID,
		BookID:  bookID,
		Rating:  3,
		Comment: "Solid reference, dry in places.",
	}

	expectedInsertSQL := regexp.QuoteMeta(`
		INSERT INTO reviews (id, user_id, book_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`)
	expectedStatsSQL := regexp.QuoteMeta(`SELECT AVG(rating), COUNT(*) FROM reviews WHERE book_id = $1`)
	expectedUpdateSQL := regexp.QuoteMeta(`
		UPDATE books SET average_rating = $1, total_reviews = $2, updated_at = NOW()
		WHERE id = $3
	`)

	t.Run("Success - Aggregate Recomputed And Rounded", func(t *testing.T) {
		// Arrange: ratings 4, 5 and this 3 average to exactly 4.0.
		mock.ExpectBegin()
		mock.ExpectQuery(expectedInsertSQL).
			WithArgs(review.ID, review.UserID, review.BookID, review.Rating, review.Comment).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectQuery(expectedStatsSQL).
			WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.0, 3))
		mock.ExpectExec(expectedUpdateSQL).
			WithArgs(4.0, 3, bookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		stats, err := repo.CreateReviewWithAggregates(ctx, review)

		// Assert
		require.NoError(t, err, "CreateReviewWithAggregates should succeed")
		require.NotNil(t, stats, "Stats should not be nil")
		assert.InDelta(t, 4.0, stats.AverageRating, 1e-9, "Average should be the mean of all ratings")
		assert.Equal(t, 3, stats.TotalReviews, "Count should include the new review")
		assert.WithinDuration(t, now, review.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - Average Rounds To One Decimal", func(t *testing.T) {
		// Arrange: 4.666... from the database should come back as 4.7.
		mock.ExpectBegin()
		mock.ExpectQuery(expectedInsertSQL).
			WithArgs(review.ID, review.UserID, review.BookID, review.Rating, review.Comment).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectQuery(expectedStatsSQL).
			WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.666666666666667, 3))
		mock.ExpectExec(expectedUpdateSQL).
			WithArgs(4.7, 3, bookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		stats, err := repo.CreateReviewWithAggregates(ctx, review)

		// Assert
		require.NoError(t, err, "CreateReviewWithAggregates should succeed")
		assert.InDelta(t, 4.7, stats.AverageRating, 1e-9, "Average should round to 1 decimal")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Insert Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("unique constraint violation")
		mock.ExpectBegin()
		mock.ExpectQuery(expectedInsertSQL).
			WithArgs(review.ID, review.UserID, review.BookID, review.Rating, review.Comment).
			WillReturnError(dbErr)
		mock.ExpectRollback()

		// Act
		stats, err := repo.CreateReviewWithAggregates(ctx, review)

		// Assert
		require.Error(t, err, "CreateReviewWithAggregates should fail when the insert fails")
		assert.ErrorContains(t, err, "failed to insert review", "Error message should indicate insert failure")
		assert.ErrorIs(t, err, dbErr, "Error should wrap the original DB error")
		assert.Nil(t, stats, "Stats should be nil on failure")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Book Update Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("book update failed")
		mock.ExpectBegin()
		mock.ExpectQuery(expectedInsertSQL).
			WithArgs(review.ID, review.UserID, review.BookID, review.Rating, review.Comment).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectQuery(expectedStatsSQL).
			WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(3.0, 1))
		mock.ExpectExec(expectedUpdateSQL).
			WithArgs(3.0, 1, bookID).
			WillReturnError(dbErr)
		mock.ExpectRollback()

		// Act
		stats, err := repo.CreateReviewWithAggregates(ctx, review)

		// Assert
		require.Error(t, err, "CreateReviewWithAggregates should fail when the book update fails")
		assert.ErrorContains(t, err, "failed to update book rating", "Error message should indicate update failure")
		assert.Nil(t, stats, "Stats should be nil on failure")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestGetReviewByUserAndBook(t *testing.T) {
	repo, mock := setupReviewRepoTest(t)
	ctx := t.Context()

	reviewID := uuid.New()
	userID := uuid.New()
	bookID := uuid.New()
	now := time.Now()

	expectedSQL := regexp.QuoteMeta(`
		SELECT id, user_id, book_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND book_id = $2
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows([]string{"id", "user_id", "book_id", "rating", "comment", "created_at"}).
			AddRow(reviewID, userID, bookID, 5, "Loved it", now)
		mock.ExpectQuery(expectedSQL).WithArgs(userID, bookID).WillReturnRows(rows)

		// Act
		review, err := repo.GetReviewByUserAndBook(ctx, userID, bookID)

		// Assert
		require.NoError(t, err, "GetReviewByUserAndBook should succeed")
		require.NotNil(t, review, "Returned review should not be nil")
		assert.Equal(t, reviewID, review.ID)
		assert.Equal(t, 5, review.Rating)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).WithArgs(userID, bookID).WillReturnError(sql.ErrNoRows)

		// Act
		review, err := repo.GetReviewByUserAndBook(ctx, userID, bookID)

		// Assert
		require.Error(t, err, "GetReviewByUserAndBook should fail when no review exists")
		assert.ErrorIs(t, err, sql.ErrNoRows, "Error should be sql.ErrNoRows")
		assert.Nil(t, review, "Returned review should be nil")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}

func TestListReviewsByBook(t *testing.T) {
	repo, mock := setupReviewRepoTest(t)
	ctx := t.Context()

	bookID := uuid.New()
	now := time.Now()

	expectedSQL := regexp.QuoteMeta(`
		SELECT r.id, r.user_id, r.book_id, r.rating, r.comment, r.created_at, u.name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC
	`)

	reviewColumns := []string{"id", "user_id", "book_id", "rating", "comment", "created_at", "name"}

	t.Run("Success - Multiple Reviews", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows(reviewColumns).
			AddRow(uuid.New(), uuid.New(), bookID, 5, "Great", now, "Asha").
			AddRow(uuid.New(), uuid.New(), bookID, 4, "Good", now.Add(-time.Hour), "Ravi")
		mock.ExpectQuery(expectedSQL).WithArgs(bookID).WillReturnRows(rows)

		// Act
		reviews, err := repo.ListReviewsByBook(ctx, bookID)

		// Assert
		require.NoError(t, err, "ListReviewsByBook should succeed")
		require.Len(t, reviews, 2, "Both reviews should be returned")
		assert.Equal(t, "Asha", reviews[0].ReviewerName, "Reviewer name should be joined in")
		assert.Equal(t, 4, reviews[1].Rating)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - No Reviews", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).WithArgs(bookID).WillReturnRows(sqlmock.NewRows(reviewColumns))

		// Act
		reviews, err := repo.ListReviewsByBook(ctx, bookID)

		// Assert
		require.NoError(t, err, "ListReviewsByBook should succeed with no reviews")
		assert.Empty(t, reviews, "Returned slice should be empty")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("list reviews query failed")
		mock.ExpectQuery(expectedSQL).WithArgs(bookID).WillReturnError(dbErr)

		// Act
		reviews, err := repo.ListReviewsByBook(ctx, bookID)

		// Assert
		require.Error(t, err, "ListReviewsByBook should fail on query error")
		assert.ErrorContains(t, err, "failed to list reviews", "Error message should indicate failure")
		assert.Nil(t, reviews, "Returned slice should be nil")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}
