package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/queue"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/aaravmahajanofficial/online-bookstore-platform/pkg/payment"
	"github.com/google/uuid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *models.PlaceOrderRequest) (*models.Order, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	bookRepo    repository.BookRepository
	userRepo    repository.UserRepository
	gateway     payment.Gateway
	publisher   queue.Publisher
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	gateway payment.Gateway,
	publisher queue.Publisher,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		bookRepo:    bookRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		publisher:   publisher,
	}
}

// PlaceOrder turns the user's cart into an order: price the items from the
// catalog, charge the gateway, then persist the order and empty the cart in
// one transaction guarded by the cart version. A concurrent cart change
// after the charge surfaces as a conflict instead of silently reordering.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *models.PlaceOrderRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	// The shipping address is validated before anything else, a client with
	// a bad address learns that even when its cart is also unusable.
	address, err := s.addressRepo.GetAddressByID(ctx, req.AddressID)
	if err != nil {
		return nil, errors.NotFoundError("Address not found").WithError(err)
	}

	if address.UserID != userID {
		return nil, errors.UnauthorizedError("Not authorized to use this address")
	}

	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.BadRequestError("Cannot place an order with an empty cart")
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, errors.BadRequestError("Cannot place an order with an empty cart")
	}

	// Price every line from the catalog, the client never supplies prices.
	orderID := uuid.New()

	var totalAmount float64

	items := make([]models.OrderItem, 0, len(cart.Items))

	for _, cartItem := range cart.Items {

		book, err := s.bookRepo.GetBookByID(ctx, cartItem.BookID)
		if err != nil {
			return nil, errors.NotFoundError("Book not found: " + cartItem.BookID.String()).WithError(err)
		}

		// The list price is snapshotted as-is, discounts are a storefront
		// display concern and never reprice an order line.
		totalAmount += book.Price * float64(cartItem.Quantity)

		items = append(items, models.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			BookID:          cartItem.BookID,
			Quantity:        cartItem.Quantity,
			PriceAtPurchase: book.Price,
			Book:            book,
		})
	}

	result, err := s.gateway.Charge(ctx, &payment.ChargeRequest{
		Amount:      totalAmount,
		Currency:    "USD",
		Description: fmt.Sprintf("Bookstore order %s", orderID),
		ItemCount:   len(items),
		AddressCity: address.City,
	})
	if err != nil {
		logger.Warn("Payment was declined", slog.String("orderId", orderID.String()), slog.Any("error", err))

		return nil, errors.PaymentFailedError("Payment failed").WithError(err)
	}

	order := &models.Order{
		ID:            orderID,
		UserID:        userID,
		Items:         items,
		AddressID:     address.ID,
		Address:       address,
		TotalAmount:   totalAmount,
		PaymentStatus: models.PaymentStatusSuccess,
		TransactionID: result.TransactionID,
	}

	if err := s.orderRepo.CreateOrderWithCartClear(ctx, order, cart); err != nil {

		if err == repository.ErrStaleVersion {
			// The payment already went through; surface the conflict rather
			// than retrying against a cart that no longer matches the charge.
			logger.Error("Cart changed between pricing and persistence",
				slog.String("orderId", orderID.String()), slog.String("transactionId", result.TransactionID))

			return nil, errors.ConflictError("Cart was modified during checkout, please review it and retry")
		}

		return nil, errors.DatabaseError("Failed to persist order").WithError(err)
	}

	s.publishConfirmation(ctx, order)

	return order, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {

	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return orders, nil
}

// publishConfirmation is best effort, the order stands even when the broker
// is unavailable.
func (s *orderService) publishConfirmation(ctx context.Context, order *models.Order) {

	user, err := s.userRepo.GetUserById(ctx, order.UserID)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to resolve the order's user for the confirmation email",
			slog.String("orderId", order.ID.String()), slog.Any("error", err))

		return
	}

	msg := &models.EmailMessage{
		Type:    models.EmailTypeOrderConfirmation,
		Email:   user.Email,
		Name:    user.Name,
		OrderID: order.ID.String(),
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to enqueue the order confirmation email",
			slog.String("orderId", order.ID.String()), slog.Any("error", err))
	}
}
