// Package payment provides the payment capability port used at checkout.
// The simulator stands in for a real gateway; swapping in a live adapter
// does not touch the checkout service.
package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the outcome of a charge attempt
type Result struct {
	TransactionID string
}

// Provider charges a user for an amount and returns an opaque transaction id
type Provider interface {
	Charge(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*Result, error)
}
