package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walkout/backend/internal/domain/shared"
)

// CartItem is one product's accumulated quantity within a session's cart.
// The unit price is captured when the product first enters the cart and is
// never re-priced, even if the catalog price changes afterwards.
type CartItem struct {
	shared.BaseEntity
	SessionID     uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	PriceAtPickup decimal.Decimal
}

// NewCartItem creates a line item for the first add of a product,
// capturing the product's current price
func NewCartItem(sessionID, productID uuid.UUID, quantity int, price decimal.Decimal) (*CartItem, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be a positive integer")
	}

	return &CartItem{
		BaseEntity:    shared.NewBaseEntity(),
		SessionID:     sessionID,
		ProductID:     productID,
		Quantity:      quantity,
		PriceAtPickup: price,
	}, nil
}

// Add increments the quantity by the given positive amount
func (i *CartItem) Add(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be a positive integer")
	}
	i.Quantity += quantity
	i.Touch()
	return nil
}

// RemoveOne decrements the quantity by exactly 1 and reports whether the
// line item is now empty and should be deleted
func (i *CartItem) RemoveOne() (empty bool) {
	i.Quantity--
	i.Touch()
	return i.Quantity <= 0
}

// Subtotal returns quantity x price_at_pickup
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.PriceAtPickup.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
