package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walkout/backend/internal/domain/shared"
)

// Receipt is the immutable record created at checkout summarizing the final
// cart and the (simulated) payment outcome.
type Receipt struct {
	shared.BaseEntity
	SessionID     uuid.UUID
	TotalAmount   decimal.Decimal
	TransactionID string
	Items         []ReceiptItem
}

// ReceiptItem snapshots one cart line at checkout time. The product name is
// copied so later catalog edits cannot alter past receipts.
type ReceiptItem struct {
	shared.BaseEntity
	ReceiptID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// NewReceipt builds a receipt from a session's cart line items. The total is
// computed from each line's price_at_pickup, rounded to 2 decimal places.
func NewReceipt(sessionID uuid.UUID, transactionID string, lines []ReceiptLine) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if transactionID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction ID cannot be empty")
	}

	receipt := &Receipt{
		BaseEntity:    shared.NewBaseEntity(),
		SessionID:     sessionID,
		TransactionID: transactionID,
	}

	total := decimal.Zero
	receipt.Items = make([]ReceiptItem, 0, len(lines))
	for _, line := range lines {
		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		receipt.Items = append(receipt.Items, ReceiptItem{
			BaseEntity:  shared.NewBaseEntity(),
			ReceiptID:   receipt.ID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    subtotal.Round(2),
		})
	}
	receipt.TotalAmount = total.Round(2)

	return receipt, nil
}

// ReceiptLine is the input for one receipt item
type ReceiptLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}
