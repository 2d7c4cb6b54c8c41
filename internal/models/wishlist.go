package models

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	BookID  uuid.UUID `json:"book_id"`
	AddedAt time.Time `json:"added_at"`
}

type Wishlist struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type WishlistItemDetail struct {
	Book    *Book     `json:"book"`
	AddedAt time.Time `json:"added_at"`
}

type AddToWishlistRequest struct {
	BookID uuid.UUID `json:"book_id" validate:"required"`
}
