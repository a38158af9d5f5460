package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Simulator is a payment provider that always succeeds. Each charge yields a
// fresh transaction id; there is no idempotency key, so retries produce new
// transactions.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a simulated payment provider
func NewSimulator(logger *zap.Logger) *Simulator {
	return &Simulator{logger: logger.Named("payment")}
}

// Charge simulates a successful payment
func (s *Simulator) Charge(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*Result, error) {
	transactionID := fmt.Sprintf("txn_%s", uuid.New())

	s.logger.Info("Simulated payment",
		zap.String("user_id", userID.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("transaction_id", transactionID),
	)

	return &Result{TransactionID: transactionID}, nil
}
