package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/walkout/backend/internal/domain/catalog"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/identity"
	"github.com/walkout/backend/internal/infrastructure/payment"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.ShoppingSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.ShoppingSession), args.Error(1)
}

func (m *MockSessionRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*checkout.ShoppingSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.ShoppingSession), args.Error(1)
}

func (m *MockSessionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*checkout.ShoppingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.ShoppingSession), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *checkout.ShoppingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindItem(ctx context.Context, sessionID, productID uuid.UUID) (*checkout.CartItem, error) {
	args := m.Called(ctx, sessionID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CartItem), args.Error(1)
}

func (m *MockCartRepository) CreateItem(ctx context.Context, item *checkout.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, itemID uuid.UUID, expected, quantity int) error {
	args := m.Called(ctx, itemID, expected, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID, expected int) error {
	args := m.Called(ctx, itemID, expected)
	return args.Error(0)
}

func (m *MockCartRepository) Snapshot(ctx context.Context, sessionID uuid.UUID) (checkout.CartSnapshot, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(checkout.CartSnapshot), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

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

// MockReceiptRepository is a mock implementation of ReceiptRepository
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) CreateForCheckout(ctx context.Context, receipt *checkout.Receipt, session *checkout.ShoppingSession) error {
	args := m.Called(ctx, receipt, session)
	return args.Error(0)
}

func (m *MockReceiptRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) (*checkout.Receipt, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Receipt), args.Error(1)
}

// MockPaymentProvider is a mock implementation of payment.Provider
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Charge(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*payment.Result, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Result), args.Error(1)
}
