package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	// CreateOrderWithCartClear persists the order and its items and empties
	// the cart in one database transaction, guarded by the cart's version.
	CreateOrderWithCartClear(ctx context.Context, order *models.Order, cart *models.Cart) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrderWithCartClear(ctx context.Context, order *models.Order, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, user_id, address_id, total_amount, payment_status, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query,
		order.ID, order.UserID, order.AddressID, order.TotalAmount, order.PaymentStatus, order.TransactionID).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, book_id, quantity, price_at_purchase)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i := range order.Items {
		item := &order.Items[i]

		if _, err := tx.ExecContext(dbCtx, itemQuery,
			item.ID, order.ID, item.BookID, item.Quantity, item.PriceAtPurchase); err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	clearQuery := `
		UPDATE carts
		SET items = '[]', version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
	`

	result, err := tx.ExecContext(dbCtx, clearQuery, cart.ID, cart.Version)
	if err != nil {
		return fmt.Errorf("failed to clear the cart: %w", err)
	}

	clearedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get cleared rows: %w", err)
	}

	// Someone mutated the cart after we priced it; abort so no order is
	// persisted against a cart snapshot that no longer exists.
	if clearedRows == 0 {
		return ErrStaleVersion
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order transaction: %w", err)
	}

	cart.Items = []models.CartItem{}
	cart.Version++

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{ID: id}

	query := `
		SELECT user_id, address_id, total_amount, payment_status, transaction_id, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&order.UserID, &order.AddressID, &order.TotalAmount, &order.PaymentStatus, &order.TransactionID,
			&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.listOrderItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

// ListOrdersByUser returns the user's orders newest first, with line items,
// book records and the shipping address expanded.
func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT o.id, o.address_id, o.total_amount, o.payment_status, o.transaction_id, o.created_at, o.updated_at,
			   a.user_id, a.name, a.phone, a.street, a.city, a.state, a.postal_code, a.type, a.created_at, a.updated_at
		FROM orders o
		JOIN addresses a ON o.address_id = a.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {

		order := models.Order{UserID: userID}
		address := models.Address{}

		err := rows.Scan(&order.ID, &order.AddressID, &order.TotalAmount, &order.PaymentStatus, &order.TransactionID,
			&order.CreatedAt, &order.UpdatedAt,
			&address.UserID, &address.Name, &address.Phone, &address.Street, &address.City, &address.State,
			&address.PostalCode, &address.Type, &address.CreatedAt, &address.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the orders: %w", err)
		}

		address.ID = order.AddressID
		order.Address = &address

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {

		items, err := r.listOrderItems(dbCtx, orders[i].ID)
		if err != nil {
			return nil, err
		}

		orders[i].Items = items
	}

	return orders, nil
}

func (r *orderRepository) listOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {

	query := `
		SELECT oi.id, oi.book_id, oi.quantity, oi.price_at_purchase,
			   b.title, b.author, b.price, b.discount_price, b.description, b.image_url, b.stock,
			   b.average_rating, b.total_reviews, b.created_at, b.updated_at
		FROM order_items oi
		JOIN books b ON oi.book_id = b.id
		WHERE oi.order_id = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {

		var item models.OrderItem
		book := &models.Book{}

		err := rows.Scan(&item.ID, &item.BookID, &item.Quantity, &item.PriceAtPurchase,
			&book.Title, &book.Author, &book.Price, &book.DiscountPrice, &book.Description, &book.ImageURL,
			&book.Stock, &book.AverageRating, &book.TotalReviews, &book.CreatedAt, &book.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = orderID
		book.ID = item.BookID
		item.Book = book

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
