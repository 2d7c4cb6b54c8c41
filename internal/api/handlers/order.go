package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	service "github.com/aaravmahajanofficial/online-bookstore-platform/internal/services"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// PlaceOrder godoc
//	@Summary		Place an order from the current cart
//	@Description	Prices the cart from the catalog, charges the payment gateway, persists the order and empties the cart atomically, then queues a confirmation email. Requires authentication.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	true	"Shipping address reference"
//	@Success		201		{object}	models.Order				"Successfully placed order"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error, empty cart, or payment failure"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Address or book not found"
//	@Failure		409		{object}	response.ErrorResponse		"Cart changed during checkout"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order placement attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid place order input")
			return
		}

		order, err := h.orderService.PlaceOrder(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.String("orderId", order.ID.String()),
			slog.Float64("totalAmount", order.TotalAmount))
		response.Success(w, http.StatusCreated, order)
	}
}

// ListOrders godoc
//	@Summary		List the authenticated user's orders
//	@Description	Returns the user's orders newest first, with line items and shipping address expanded. Requires authentication.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		models.Order			"Orders"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		orders, err := h.orderService.GetUserOrders(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed", slog.Int("count", len(orders)))
		response.Success(w, http.StatusOK, orders)
	}
}
