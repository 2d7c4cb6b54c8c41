package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	BookID   uuid.UUID `json:"book_id"`
	Quantity int       `json:"quantity"`
}

// Cart stores raw book references; Version is the optimistic concurrency
// token checked on every write, so two racing mutations cannot both win.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Items     []CartItem `json:"items"`
	Version   int64      `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartDetail is the cart with book references expanded for display.
type CartDetail struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Items     []CartItemDetail `json:"items"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CartItemDetail struct {
	Book     *Book `json:"book"`
	Quantity int   `json:"quantity"`
}

type AddToCartRequest struct {
	BookID   uuid.UUID `json:"book_id" validate:"required"`
	Quantity int       `json:"quantity,omitempty" validate:"omitempty,min=1"`
}
