package payment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/online-bookstore-platform/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChargeRequest(amount float64) *payment.ChargeRequest {
	return &payment.ChargeRequest{
		Amount:      amount,
		Currency:    "USD",
		Description: "Order 3f1d2a9c",
		ItemCount:   2,
		AddressCity: "Pune",
	}
}

func TestMockGatewayCharge(t *testing.T) {
	gateway := payment.NewMockGateway()

	t.Run("Success", func(t *testing.T) {
		// Act
		result, err := gateway.Charge(t.Context(), newChargeRequest(42.50))

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "succeeded", result.Status)
		assert.True(t, strings.HasPrefix(result.TransactionID, "TXN"), "Transaction IDs carry the TXN prefix")
		assert.Len(t, result.TransactionID, 19, "TXN prefix plus 8 hex-encoded bytes")
	})

	t.Run("Success - Transaction IDs Are Unique", func(t *testing.T) {
		// Act
		first, err := gateway.Charge(t.Context(), newChargeRequest(10.00))
		require.NoError(t, err)
		second, err := gateway.Charge(t.Context(), newChargeRequest(10.00))
		require.NoError(t, err)

		// Assert
		assert.NotEqual(t, first.TransactionID, second.TransactionID)
	})

	t.Run("Failure - Zero Amount", func(t *testing.T) {
		// Act
		result, err := gateway.Charge(t.Context(), newChargeRequest(0))

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid charge amount")
	})

	t.Run("Failure - Negative Amount", func(t *testing.T) {
		// Act
		result, err := gateway.Charge(t.Context(), newChargeRequest(-5.00))

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Failure - Cancelled Context", func(t *testing.T) {
		// Arrange
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Act
		result, err := gateway.Charge(ctx, newChargeRequest(42.50))

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
