package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/catalog"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/shared"
	"github.com/walkout/backend/internal/infrastructure/realtime"
	"go.uber.org/zap"
)

// cartMutationAttempts bounds retries when a conditional cart update loses
// a race with a concurrent mutation of the same line item.
const cartMutationAttempts = 2

// CartService handles cart mutations within an active shopping session.
// Every successful mutation recomputes the cart snapshot, publishes it to
// the session's live subscriber (best effort), and returns it to the caller.
type CartService struct {
	sessionRepo checkout.SessionRepository
	cartRepo    checkout.CartRepository
	productRepo catalog.ProductRepository
	registry    *realtime.Registry
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	sessionRepo checkout.SessionRepository,
	cartRepo checkout.CartRepository,
	productRepo catalog.ProductRepository,
	registry *realtime.Registry,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		registry:    registry,
		logger:      logger,
	}
}

// AddItem adds quantity units of a product to the session's cart. The first
// add of a product captures its current catalog price as price_at_pickup;
// later adds accumulate quantity without re-pricing.
func (s *CartService) AddItem(ctx context.Context, input AddItemInput) (*checkout.CartSnapshot, error) {
	if input.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be a positive integer")
	}

	session, err := s.sessionRepo.FindActiveByID(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Active session not found")
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	if err := s.addWithRetry(ctx, session.ID, product, input.Quantity); err != nil {
		return nil, err
	}

	return s.snapshotAndPublish(ctx, session.ID)
}

// addWithRetry performs the insert-or-accumulate mutation, retrying once
// when a concurrent mutation of the same line item wins the race.
func (s *CartService) addWithRetry(ctx context.Context, sessionID uuid.UUID, product *catalog.Product, quantity int) error {
	var lastErr error
	for attempt := 0; attempt < cartMutationAttempts; attempt++ {
		item, err := s.cartRepo.FindItem(ctx, sessionID, product.ID)
		if errors.Is(err, shared.ErrNotFound) {
			newItem, err := checkout.NewCartItem(sessionID, product.ID, quantity, product.Price)
			if err != nil {
				return err
			}
			err = s.cartRepo.CreateItem(ctx, newItem)
			if errors.Is(err, shared.ErrAlreadyExists) {
				// Concurrent first add of the same product; fall back
				// to the accumulate path.
				lastErr = shared.ErrConcurrencyConflict
				continue
			}
			return err
		}
		if err != nil {
			return err
		}

		expected := item.Quantity
		if err := item.Add(quantity); err != nil {
			return err
		}
		err = s.cartRepo.UpdateQuantity(ctx, item.ID, expected, item.Quantity)
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

// RemoveItem decrements the product's quantity in the cart by exactly one,
// deleting the line item when it reaches zero.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID uuid.UUID) (*checkout.CartSnapshot, error) {
	session, err := s.sessionRepo.FindActiveByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Active session not found")
		}
		return nil, err
	}

	if err := s.removeWithRetry(ctx, session.ID, productID); err != nil {
		return nil, err
	}

	return s.snapshotAndPublish(ctx, session.ID)
}

func (s *CartService) removeWithRetry(ctx context.Context, sessionID, productID uuid.UUID) error {
	var lastErr error
	for attempt := 0; attempt < cartMutationAttempts; attempt++ {
		item, err := s.cartRepo.FindItem(ctx, sessionID, productID)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Product is not in the cart")
		}
		if err != nil {
			return err
		}

		expected := item.Quantity
		if empty := item.RemoveOne(); empty {
			err = s.cartRepo.DeleteItem(ctx, item.ID, expected)
		} else {
			err = s.cartRepo.UpdateQuantity(ctx, item.ID, expected, item.Quantity)
		}
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

// snapshotAndPublish recomputes the cart snapshot, pushes it to the
// session's subscriber if one is connected, and returns it.
func (s *CartService) snapshotAndPublish(ctx context.Context, sessionID uuid.UUID) (*checkout.CartSnapshot, error) {
	snapshot, err := s.cartRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.registry.Publish(sessionID, snapshot)

	s.logger.Debug("Cart updated",
		zap.String("session_id", sessionID.String()),
		zap.Int("lines", len(snapshot.Items)),
		zap.String("total", snapshot.CurrentTotal.String()))

	return &snapshot, nil
}

// Snapshot returns the session's current cart without mutating it
func (s *CartService) Snapshot(ctx context.Context, sessionID uuid.UUID) (*checkout.CartSnapshot, error) {
	if _, err := s.sessionRepo.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Session not found")
		}
		return nil, err
	}

	snapshot, err := s.cartRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
