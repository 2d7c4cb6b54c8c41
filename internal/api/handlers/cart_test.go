package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/services/mocks"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/testutils"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartHandler(t *testing.T) (*mocks.MockCartService, *handlers.CartHandler) {
	t.Helper()

	cartService := mocks.NewMockCartService(t)
	handler := handlers.NewCartHandler(cartService)

	return cartService, handler
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), "Response body should be a valid envelope")

	return &resp
}

func TestCartHandlerGetCart(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cart := &models.CartDetail{ID: uuid.New(), UserID: userID, Items: []models.CartItemDetail{}}

		cartService.On("GetCart", mock.Anything, userID).Return(cart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error.Message, "Authentication required")
		cartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cartService.On("GetCart", mock.Anything, userID).
			Return(nil, appErrors.DatabaseError("Failed to fetch cart")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
	})
}

func TestCartHandlerAddToCart(t *testing.T) {
	userID := uuid.New()
	bookID := uuid.New()

	validBody := func(t *testing.T) *bytes.Buffer {
		t.Helper()
		body, err := json.Marshal(models.AddToCartRequest{BookID: bookID, Quantity: 2})
		require.NoError(t, err)
		return bytes.NewBuffer(body)
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cart := &models.CartDetail{
			ID:     uuid.New(),
			UserID: userID,
			Items:  []models.CartItemDetail{{Book: &models.Book{ID: bookID}, Quantity: 2}},
		}

		cartService.On("AddToCart", mock.Anything, userID, mock.MatchedBy(func(req *models.AddToCartRequest) bool {
			return req.BookID == bookID && req.Quantity == 2
		})).Return(cart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", validBody(t), userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.AddToCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/cart/items", validBody(t), nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.AddToCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		cartService.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)

		body := bytes.NewBufferString(`{"book_id": "not-a-uuid"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", body, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.AddToCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		cartService.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Book", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cartService.On("AddToCart", mock.Anything, userID, mock.AnythingOfType("*models.AddToCartRequest")).
			Return(nil, appErrors.NotFoundError("Book not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", validBody(t), userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.AddToCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Failure - Concurrent Modification", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cartService.On("AddToCart", mock.Anything, userID, mock.AnythingOfType("*models.AddToCartRequest")).
			Return(nil, appErrors.ConflictError("Cart was modified concurrently, please retry")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", validBody(t), userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.AddToCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
	})
}

func TestCartHandlerRemoveFromCart(t *testing.T) {
	userID := uuid.New()
	bookID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cart := &models.CartDetail{ID: uuid.New(), UserID: userID, Items: []models.CartItemDetail{}}

		cartService.On("RemoveFromCart", mock.Anything, userID, bookID).Return(cart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/"+bookID.String(), nil,
			userID, map[string]string{"bookId": bookID.String()})
		recorder := httptest.NewRecorder()

		// Act
		handler.RemoveFromCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Invalid Book ID", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/abc", nil,
			userID, map[string]string{"bookId": "abc"})
		recorder := httptest.NewRecorder()

		// Act
		handler.RemoveFromCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		cartService.AssertNotCalled(t, "RemoveFromCart", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandlerClearCart(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cartService.On("ClearCart", mock.Anything, userID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.ClearCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		cartService, handler := setupCartHandler(t)
		cartService.On("ClearCart", mock.Anything, userID).
			Return(appErrors.ConflictError("Cart was modified concurrently, please retry")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, userID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.ClearCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}
