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

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// FindByID finds a session by its ID regardless of status
func (r *GormSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.ShoppingSession, error) {
	var model models.ShoppingSessionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByID finds a session by ID only if it is still active.
// Missing and completed sessions are indistinguishable to the caller.
func (r *GormSessionRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*checkout.ShoppingSession, error) {
	var model models.ShoppingSessionModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, checkout.SessionStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByUser finds a user's active session, if any
func (r *GormSessionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*checkout.ShoppingSession, error) {
	var model models.ShoppingSessionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, checkout.SessionStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates a session. The partial unique index on active sessions turns
// a concurrent double-start into ErrAlreadyExists instead of a second row.
func (r *GormSessionRepository) Save(ctx context.Context, session *checkout.ShoppingSession) error {
	model := models.ShoppingSessionModelFromDomain(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}
