package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnapshotItem is one line of a cart snapshot, joined with the product name
type SnapshotItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CartSnapshot is the cart state delivered to push subscribers and returned
// from cart mutations. The authoritative state remains in the store; the
// snapshot is a read model.
type CartSnapshot struct {
	SessionID    uuid.UUID       `json:"sessionId"`
	Items        []SnapshotItem  `json:"items"`
	CurrentTotal decimal.Decimal `json:"currentTotal"`
}

// NewCartSnapshot builds a snapshot from line items, computing the total as
// sum(quantity x price) rounded to 2 decimal places
func NewCartSnapshot(sessionID uuid.UUID, items []SnapshotItem) CartSnapshot {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if items == nil {
		items = []SnapshotItem{}
	}

	return CartSnapshot{
		SessionID:    sessionID,
		Items:        items,
		CurrentTotal: total.Round(2),
	}
}
