package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/shared"
	"github.com/walkout/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *Database
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *Database) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// CreateForCheckout persists the receipt with its line items and marks the
// session completed, all within one transaction. The cart line items are
// left untouched; they remain the session's frozen cart history.
func (r *GormReceiptRepository) CreateForCheckout(ctx context.Context, receipt *checkout.Receipt, session *checkout.ShoppingSession) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		receiptModel := &models.ReceiptModel{}
		receiptModel.FromDomain(receipt)
		if err := tx.Create(receiptModel).Error; err != nil {
			return err
		}

		itemModels := make([]models.ReceiptItemModel, len(receipt.Items))
		for i, item := range receipt.Items {
			itemModels[i].FromDomain(item)
		}
		if err := tx.Create(&itemModels).Error; err != nil {
			return err
		}

		result := tx.Model(&models.ShoppingSessionModel{}).
			Where("id = ? AND status = ?", session.ID, checkout.SessionStatusActive).
			Updates(map[string]any{
				"status":     session.Status,
				"updated_at": session.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// A concurrent checkout already completed this session.
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindBySession finds a session's receipt with its line items
func (r *GormReceiptRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) (*checkout.Receipt, error) {
	var receiptModel models.ReceiptModel
	if err := r.db.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&receiptModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	receipt := receiptModel.ToDomain()

	var itemModels []models.ReceiptItemModel
	if err := r.db.DB.WithContext(ctx).
		Where("receipt_id = ?", receipt.ID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	receipt.Items = make([]checkout.ReceiptItem, len(itemModels))
	for i, model := range itemModels {
		receipt.Items[i] = model.ToDomain()
	}

	return receipt, nil
}
