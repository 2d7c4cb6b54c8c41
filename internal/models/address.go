package models

import (
	"time"

	"github.com/google/uuid"
)

type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

type Address struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	Street     string      `json:"street"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	PostalCode string      `json:"postal_code"`
	Type       AddressType `json:"type"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreateAddressRequest struct {
	Name       string      `json:"name" validate:"required"`
	Phone      string      `json:"phone" validate:"required"`
	Street     string      `json:"street" validate:"required"`
	City       string      `json:"city" validate:"required"`
	State      string      `json:"state" validate:"required"`
	PostalCode string      `json:"postal_code" validate:"required"`
	Type       AddressType `json:"type" validate:"required,oneof=HOME WORK OTHER"`
}

type UpdateAddressRequest struct {
	Name       *string      `json:"name,omitempty"`
	Phone      *string      `json:"phone,omitempty"`
	Street     *string      `json:"street,omitempty"`
	City       *string      `json:"city,omitempty"`
	State      *string      `json:"state,omitempty"`
	PostalCode *string      `json:"postal_code,omitempty"`
	Type       *AddressType `json:"type,omitempty" validate:"omitempty,oneof=HOME WORK OTHER"`
}
