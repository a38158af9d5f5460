package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/shared"
	"github.com/walkout/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindItem finds the line item for a (session, product) pair
func (r *GormCartRepository) FindItem(ctx context.Context, sessionID, productID uuid.UUID) (*checkout.CartItem, error) {
	var model models.CartItemModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CreateItem inserts a new line item
func (r *GormCartRepository) CreateItem(ctx context.Context, item *checkout.CartItem) error {
	model := models.CartItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateQuantity sets a line item's quantity conditioned on the expected
// prior quantity, so concurrent mutations cannot silently lose an update.
func (r *GormCartRepository) UpdateQuantity(ctx context.Context, itemID uuid.UUID, expected, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.CartItemModel{}).
		Where("id = ? AND quantity = ?", itemID, expected).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// DeleteItem removes a line item conditioned on the expected prior quantity
func (r *GormCartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID, expected int) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND quantity = ?", itemID, expected).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// snapshotRow is the scan target for the cart/product join
type snapshotRow struct {
	ProductID     uuid.UUID
	Name          string
	Quantity      int
	PriceAtPickup decimal.Decimal
}

// Snapshot returns the session's cart joined with product names. The total is
// recomputed from price_at_pickup, never from live product prices.
func (r *GormCartRepository) Snapshot(ctx context.Context, sessionID uuid.UUID) (checkout.CartSnapshot, error) {
	var rows []snapshotRow
	err := r.db.WithContext(ctx).
		Model(&models.CartItemModel{}).
		Select("cart_items.product_id, products.name, cart_items.quantity, cart_items.price_at_pickup").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.session_id = ?", sessionID).
		Order("cart_items.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return checkout.CartSnapshot{}, err
	}

	items := make([]checkout.SnapshotItem, len(rows))
	for i, row := range rows {
		items[i] = checkout.SnapshotItem{
			ProductID: row.ProductID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			Price:     row.PriceAtPickup,
		}
	}

	return checkout.NewCartSnapshot(sessionID, items), nil
}
