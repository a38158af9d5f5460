package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/identity"
	"github.com/walkout/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("+15550100")
	assert.NoError(t, err)
	return user
}

func TestSessionService_StartSession(t *testing.T) {
	mockSessionRepo := new(MockSessionRepository)
	mockUserRepo := new(MockUserRepository)
	service := NewSessionService(mockSessionRepo, mockUserRepo, zap.NewNop())

	ctx := context.Background()
	user := newTestUser(t)

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockSessionRepo.On("FindActiveByUser", ctx, user.ID).Return(nil, shared.ErrNotFound)
	mockSessionRepo.On("Save", ctx, mock.AnythingOfType("*checkout.ShoppingSession")).Return(nil)

	result, err := service.StartSession(ctx, user.ID)

	assert.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, "active", result.Status)
	mockSessionRepo.AssertExpectations(t)
}

func TestSessionService_StartSession_UserNotFound(t *testing.T) {
	mockSessionRepo := new(MockSessionRepository)
	mockUserRepo := new(MockUserRepository)
	service := NewSessionService(mockSessionRepo, mockUserRepo, zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.On("FindByID", ctx, userID).Return(nil, shared.ErrNotFound)

	_, err := service.StartSession(ctx, userID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockSessionRepo.AssertNotCalled(t, "Save")
}

func TestSessionService_StartSession_ActiveExists(t *testing.T) {
	mockSessionRepo := new(MockSessionRepository)
	mockUserRepo := new(MockUserRepository)
	service := NewSessionService(mockSessionRepo, mockUserRepo, zap.NewNop())

	ctx := context.Background()
	user := newTestUser(t)
	existing := checkout.NewShoppingSession(user.ID)

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockSessionRepo.On("FindActiveByUser", ctx, user.ID).Return(existing, nil)

	_, err := service.StartSession(ctx, user.ID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockSessionRepo.AssertNotCalled(t, "Save")
}

func TestSessionService_StartSession_LostInsertRace(t *testing.T) {
	mockSessionRepo := new(MockSessionRepository)
	mockUserRepo := new(MockUserRepository)
	service := NewSessionService(mockSessionRepo, mockUserRepo, zap.NewNop())

	ctx := context.Background()
	user := newTestUser(t)

	mockUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockSessionRepo.On("FindActiveByUser", ctx, user.ID).Return(nil, shared.ErrNotFound)
	// A concurrent start won the insert; the partial unique index rejects ours
	mockSessionRepo.On("Save", ctx, mock.AnythingOfType("*checkout.ShoppingSession")).Return(shared.ErrAlreadyExists)

	_, err := service.StartSession(ctx, user.ID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestSessionService_ActiveSession(t *testing.T) {
	mockSessionRepo := new(MockSessionRepository)
	mockUserRepo := new(MockUserRepository)
	service := NewSessionService(mockSessionRepo, mockUserRepo, zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	session := checkout.NewShoppingSession(userID)

	mockSessionRepo.On("FindActiveByUser", ctx, userID).Return(session, nil)

	result, err := service.ActiveSession(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, session.ID, result.ID)
}

func TestSessionService_ActiveSession_None(t *testing.T) {
	mockSessionRepo := new(MockSessionRepository)
	mockUserRepo := new(MockUserRepository)
	service := NewSessionService(mockSessionRepo, mockUserRepo, zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()

	mockSessionRepo.On("FindActiveByUser", ctx, userID).Return(nil, shared.ErrNotFound)

	_, err := service.ActiveSession(ctx, userID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
