package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/walkout/backend/internal/domain/identity"
	"github.com/walkout/backend/internal/domain/shared"
	"github.com/walkout/backend/internal/infrastructure/auth"
	"github.com/walkout/backend/internal/infrastructure/config"
	"github.com/walkout/backend/internal/infrastructure/otp"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phoneNumber string) (*identity.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByPhone(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newTestService(userRepo identity.UserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-that-is-long-enough",
		AccessTokenExpiration: time.Hour,
		Issuer:                "walkout-test",
	})
	return NewAuthService(userRepo, otp.NewStaticProvider("1234"), jwtService, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByPhone", ctx, "+15550100").Return(false, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	user, err := service.Register(ctx, RegisterInput{PhoneNumber: "+15550100"})

	assert.NoError(t, err)
	assert.Equal(t, "+15550100", user.PhoneNumber)
	assert.False(t, user.HasPaymentToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_PhoneTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByPhone", ctx, "+15550100").Return(true, nil)

	_, err := service.Register(ctx, RegisterInput{PhoneNumber: "+15550100"})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestAuthService_Register_InvalidPhone(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)

	_, err := service.Register(context.Background(), RegisterInput{PhoneNumber: "not-a-phone"})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	mockRepo.AssertNotCalled(t, "ExistsByPhone")
}

func TestAuthService_Verify(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	user, _ := identity.NewUser("+15550100")
	mockRepo.On("FindByPhone", ctx, "+15550100").Return(user, nil)

	result, err := service.Verify(ctx, VerifyInput{PhoneNumber: "+15550100", Code: "1234"})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)
}

func TestAuthService_Verify_WrongCode(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	user, _ := identity.NewUser("+15550100")
	mockRepo.On("FindByPhone", ctx, "+15550100").Return(user, nil)

	_, err := service.Verify(ctx, VerifyInput{PhoneNumber: "+15550100", Code: "9999"})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Verify_UnknownPhone(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("FindByPhone", ctx, "+15559999").Return(nil, shared.ErrNotFound)

	_, err := service.Verify(ctx, VerifyInput{PhoneNumber: "+15559999", Code: "1234"})

	// Indistinguishable from a wrong code
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Me(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	user, _ := identity.NewUser("+15550100")
	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	result, err := service.Me(ctx, user.ID)

	assert.NoError(t, err)
	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, "+15550100", result.PhoneNumber)
}

func TestAuthService_Me_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	// A validly signed token whose user has since disappeared must read as
	// an authentication failure, not a missing resource.
	userID := uuid.New()
	mockRepo.On("FindByID", ctx, userID).Return(nil, shared.ErrNotFound)

	_, err := service.Me(ctx, userID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_UpdatePaymentToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	user, _ := identity.NewUser("+15550100")
	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockRepo.On("Save", ctx, user).Return(nil)

	result, err := service.UpdatePaymentToken(ctx, user.ID, "tok_visa_4242")

	assert.NoError(t, err)
	assert.True(t, result.HasPaymentToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_UpdatePaymentToken_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	userID := uuid.New()
	mockRepo.On("FindByID", ctx, userID).Return(nil, shared.ErrNotFound)

	_, err := service.UpdatePaymentToken(ctx, userID, "tok_visa_4242")

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestAuthService_UpdatePaymentToken_Empty(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	user, _ := identity.NewUser("+15550100")
	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	_, err := service.UpdatePaymentToken(ctx, user.ID, "")

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save")
}
