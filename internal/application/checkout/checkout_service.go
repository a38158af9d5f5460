package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/shared"
	"github.com/walkout/backend/internal/infrastructure/payment"
	"go.uber.org/zap"
)

// CheckoutService finalizes shopping sessions: it charges the user for the
// cart total and produces an immutable receipt.
type CheckoutService struct {
	sessionRepo     checkout.SessionRepository
	cartRepo        checkout.CartRepository
	receiptRepo     checkout.ReceiptRepository
	paymentProvider payment.Provider
	logger          *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	sessionRepo checkout.SessionRepository,
	cartRepo checkout.CartRepository,
	receiptRepo checkout.ReceiptRepository,
	paymentProvider payment.Provider,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		sessionRepo:     sessionRepo,
		cartRepo:        cartRepo,
		receiptRepo:     receiptRepo,
		paymentProvider: paymentProvider,
		logger:          logger,
	}
}

// Checkout charges the session's cart total and completes the session. The
// receipt totals come from each line's price_at_pickup, so catalog price
// changes after pickup never affect what the user pays.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID uuid.UUID) (*ReceiptResponse, error) {
	session, err := s.sessionRepo.FindActiveByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Active session not found")
		}
		return nil, err
	}

	snapshot, err := s.cartRepo.Snapshot(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	result, err := s.paymentProvider.Charge(ctx, session.UserID, snapshot.CurrentTotal)
	if err != nil {
		s.logger.Error("Payment charge failed",
			zap.String("session_id", session.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Payment failed")
	}

	lines := make([]checkout.ReceiptLine, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		lines = append(lines, checkout.ReceiptLine{
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
		})
	}

	receipt, err := checkout.NewReceipt(session.ID, result.TransactionID, lines)
	if err != nil {
		return nil, err
	}

	if err := session.Complete(); err != nil {
		return nil, err
	}

	// One transaction: persist the receipt with its lines and flip the
	// session to completed. A concurrent checkout of the same session
	// loses the conditional status update and surfaces as not found.
	if err := s.receiptRepo.CreateForCheckout(ctx, receipt, session); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Active session not found")
		}
		return nil, err
	}

	s.logger.Info("Checkout completed",
		zap.String("session_id", session.ID.String()),
		zap.String("transaction_id", receipt.TransactionID),
		zap.String("total", receipt.TotalAmount.String()))

	return ToReceiptResponse(receipt), nil
}

// Receipt returns the receipt for a completed session
func (s *CheckoutService) Receipt(ctx context.Context, sessionID uuid.UUID) (*ReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "No receipt for this session")
		}
		return nil, err
	}
	return ToReceiptResponse(receipt), nil
}
