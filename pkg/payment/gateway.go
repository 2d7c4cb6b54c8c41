package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ChargeRequest carries the amount plus the order metadata a real provider
// would want on the charge record.
type ChargeRequest struct {
	Amount      float64
	Currency    string
	Description string
	ItemCount   int
	AddressCity string
}

// Result of a charge attempt.
type Result struct {
	TransactionID string
	Status        string
}

// Gateway is the payment collaborator of the checkout flow. The mock
// implementation stands in for a real provider integration.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*Result, error)
}

type mockGateway struct{}

func NewMockGateway() Gateway {
	return &mockGateway{}
}

// Charge always succeeds with a generated transaction id. Amounts must
// still be positive so the caller's math errors surface here.
func (g *mockGateway) Charge(ctx context.Context, req *ChargeRequest) (*Result, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount: %.2f", req.Amount)
	}

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	return &Result{
		TransactionID: "TXN" + hex.EncodeToString(buf),
		Status:        "succeeded",
	}, nil
}
