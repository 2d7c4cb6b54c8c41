package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// OrderItem snapshots the book price at purchase time; later price changes
// on the book never touch existing orders.
type OrderItem struct {
	ID              uuid.UUID `json:"id"`
	OrderID         uuid.UUID `json:"order_id"`
	BookID          uuid.UUID `json:"book_id"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase float64   `json:"price_at_purchase"`
	Book            *Book     `json:"book,omitempty"`
}

type Order struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	Items         []OrderItem   `json:"items"`
	AddressID     uuid.UUID     `json:"address_id"`
	Address       *Address      `json:"address,omitempty"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID string        `json:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type PlaceOrderRequest struct {
	AddressID uuid.UUID `json:"address_id" validate:"required"`
}
