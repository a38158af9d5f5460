package checkout

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for shopping session persistence
type SessionRepository interface {
	// FindByID finds a session by its ID regardless of status
	FindByID(ctx context.Context, id uuid.UUID) (*ShoppingSession, error)

	// FindActiveByID finds a session by ID only if it is still active
	FindActiveByID(ctx context.Context, id uuid.UUID) (*ShoppingSession, error)

	// FindActiveByUser finds a user's active session, if any
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*ShoppingSession, error)

	// Save creates a session. The store enforces at most one active
	// session per user; a violation surfaces as ErrAlreadyExists.
	Save(ctx context.Context, session *ShoppingSession) error
}

// CartRepository defines the interface for cart line item persistence
type CartRepository interface {
	// FindItem finds the line item for a (session, product) pair
	FindItem(ctx context.Context, sessionID, productID uuid.UUID) (*CartItem, error)

	// CreateItem inserts a new line item
	CreateItem(ctx context.Context, item *CartItem) error

	// UpdateQuantity sets a line item's quantity only when the stored
	// quantity still equals expected. Returns ErrConcurrencyConflict when
	// a concurrent mutation got there first.
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, expected, quantity int) error

	// DeleteItem removes a line item only when the stored quantity still
	// equals expected. Returns ErrConcurrencyConflict on a lost race.
	DeleteItem(ctx context.Context, itemID uuid.UUID, expected int) error

	// Snapshot returns the session's cart joined with product names
	Snapshot(ctx context.Context, sessionID uuid.UUID) (CartSnapshot, error)
}

// ReceiptRepository defines the interface for receipt persistence
type ReceiptRepository interface {
	// CreateForCheckout persists the receipt with its line items and marks
	// the session completed, all within one transaction
	CreateForCheckout(ctx context.Context, receipt *Receipt, session *ShoppingSession) error

	// FindBySession finds a session's receipt
	FindBySession(ctx context.Context, sessionID uuid.UUID) (*Receipt, error)
}
