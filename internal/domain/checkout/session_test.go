package checkout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/walkout/backend/internal/domain/shared"
)

func TestNewShoppingSession(t *testing.T) {
	userID := uuid.New()
	session := NewShoppingSession(userID)

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, SessionStatusActive, session.Status)
	assert.True(t, session.IsActive())
}

func TestShoppingSession_Complete(t *testing.T) {
	session := NewShoppingSession(uuid.New())

	err := session.Complete()

	assert.NoError(t, err)
	assert.Equal(t, SessionStatusCompleted, session.Status)
	assert.False(t, session.IsActive())
}

func TestShoppingSession_Complete_AlreadyCompleted(t *testing.T) {
	session := NewShoppingSession(uuid.New())
	_ = session.Complete()

	err := session.Complete()

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	// Completed sessions never reactivate
	assert.Equal(t, SessionStatusCompleted, session.Status)
}
