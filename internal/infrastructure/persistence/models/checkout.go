package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walkout/backend/internal/domain/checkout"
)

// ShoppingSessionModel is the persistence model for the ShoppingSession aggregate.
// A partial unique index on (user_id) WHERE status = 'active' enforces at most
// one active session per user at the store level.
type ShoppingSessionModel struct {
	BaseModel
	UserID uuid.UUID              `gorm:"type:uuid;not null;index"`
	Status checkout.SessionStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ShoppingSessionModel) TableName() string {
	return "shopping_sessions"
}

// ToDomain converts the persistence model to a domain ShoppingSession.
func (m *ShoppingSessionModel) ToDomain() *checkout.ShoppingSession {
	return &checkout.ShoppingSession{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Status:     m.Status,
	}
}

// FromDomain populates the persistence model from a domain ShoppingSession.
func (m *ShoppingSessionModel) FromDomain(s *checkout.ShoppingSession) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.UserID = s.UserID
	m.Status = s.Status
}

// ShoppingSessionModelFromDomain creates a new persistence model from a domain ShoppingSession.
func ShoppingSessionModelFromDomain(s *checkout.ShoppingSession) *ShoppingSessionModel {
	m := &ShoppingSessionModel{}
	m.FromDomain(s)
	return m
}

// CartItemModel is the persistence model for the CartItem entity.
type CartItemModel struct {
	BaseModel
	SessionID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_session_product,priority:1"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_session_product,priority:2"`
	Quantity      int             `gorm:"not null"`
	PriceAtPickup decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem.
func (m *CartItemModel) ToDomain() *checkout.CartItem {
	return &checkout.CartItem{
		BaseEntity:    m.BaseModel.ToDomain(),
		SessionID:     m.SessionID,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		PriceAtPickup: m.PriceAtPickup,
	}
}

// FromDomain populates the persistence model from a domain CartItem.
func (m *CartItemModel) FromDomain(i *checkout.CartItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.SessionID = i.SessionID
	m.ProductID = i.ProductID
	m.Quantity = i.Quantity
	m.PriceAtPickup = i.PriceAtPickup
}

// CartItemModelFromDomain creates a new persistence model from a domain CartItem.
func CartItemModelFromDomain(i *checkout.CartItem) *CartItemModel {
	m := &CartItemModel{}
	m.FromDomain(i)
	return m
}

// ReceiptModel is the persistence model for the Receipt aggregate.
type ReceiptModel struct {
	BaseModel
	SessionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TransactionID string          `gorm:"type:varchar(64);not null"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt (items loaded separately).
func (m *ReceiptModel) ToDomain() *checkout.Receipt {
	return &checkout.Receipt{
		BaseEntity:    m.BaseModel.ToDomain(),
		SessionID:     m.SessionID,
		TotalAmount:   m.TotalAmount,
		TransactionID: m.TransactionID,
	}
}

// FromDomain populates the persistence model from a domain Receipt.
func (m *ReceiptModel) FromDomain(r *checkout.Receipt) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.SessionID = r.SessionID
	m.TotalAmount = r.TotalAmount
	m.TransactionID = r.TransactionID
}

// ReceiptItemModel is the persistence model for one receipt line.
type ReceiptItemModel struct {
	BaseModel
	ReceiptID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (ReceiptItemModel) TableName() string {
	return "receipt_items"
}

// ToDomain converts the persistence model to a domain ReceiptItem.
func (m *ReceiptItemModel) ToDomain() checkout.ReceiptItem {
	return checkout.ReceiptItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		ReceiptID:   m.ReceiptID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Subtotal:    m.Subtotal,
	}
}

// FromDomain populates the persistence model from a domain ReceiptItem.
func (m *ReceiptItemModel) FromDomain(i checkout.ReceiptItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.ReceiptID = i.ReceiptID
	m.ProductName = i.ProductName
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Subtotal = i.Subtotal
}
