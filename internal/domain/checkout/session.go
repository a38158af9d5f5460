package checkout

import (
	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/shared"
)

// SessionStatus represents the status of a shopping session
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
)

// ShoppingSession represents one bounded shopping visit for a user.
// The status only ever moves active -> completed; completed sessions
// are never reactivated.
type ShoppingSession struct {
	shared.BaseEntity
	UserID uuid.UUID
	Status SessionStatus
}

// NewShoppingSession starts a new active session for a user
func NewShoppingSession(userID uuid.UUID) *ShoppingSession {
	return &ShoppingSession{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Status:     SessionStatusActive,
	}
}

// IsActive reports whether the session still accepts cart mutations
func (s *ShoppingSession) IsActive() bool {
	return s.Status == SessionStatusActive
}

// Complete transitions the session to completed at checkout
func (s *ShoppingSession) Complete() error {
	if s.Status != SessionStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Session is not active")
	}
	s.Status = SessionStatusCompleted
	s.Touch()
	return nil
}
