package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walkout/backend/internal/domain/checkout"
)

// SessionResponse is the public representation of a shopping session
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSessionResponse converts a domain session to its response representation
func ToSessionResponse(session *checkout.ShoppingSession) *SessionResponse {
	return &SessionResponse{
		ID:        session.ID,
		UserID:    session.UserID,
		Status:    string(session.Status),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

// AddItemInput is the input for adding a product to a cart
type AddItemInput struct {
	SessionID uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// ReceiptItemResponse is one line of a receipt
type ReceiptItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ReceiptResponse is the public representation of a checkout receipt
type ReceiptResponse struct {
	ID            uuid.UUID             `json:"id"`
	SessionID     uuid.UUID             `json:"session_id"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	TransactionID string                `json:"transaction_id"`
	Items         []ReceiptItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ToReceiptResponse converts a domain receipt to its response representation
func ToReceiptResponse(receipt *checkout.Receipt) *ReceiptResponse {
	items := make([]ReceiptItemResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, ReceiptItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return &ReceiptResponse{
		ID:            receipt.ID,
		SessionID:     receipt.SessionID,
		TotalAmount:   receipt.TotalAmount,
		TransactionID: receipt.TransactionID,
		Items:         items,
		CreatedAt:     receipt.CreatedAt,
	}
}
