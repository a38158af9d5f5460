package checkout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCartItem(t *testing.T) {
	sessionID := uuid.New()
	productID := uuid.New()
	price := decimal.NewFromFloat(3.50)

	item, err := NewCartItem(sessionID, productID, 2, price)

	assert.NoError(t, err)
	assert.Equal(t, sessionID, item.SessionID)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, price.Equal(item.PriceAtPickup))
}

func TestNewCartItem_InvalidQuantity(t *testing.T) {
	price := decimal.NewFromFloat(1.00)

	_, err := NewCartItem(uuid.New(), uuid.New(), 0, price)
	assert.Error(t, err)

	_, err = NewCartItem(uuid.New(), uuid.New(), -1, price)
	assert.Error(t, err)
}

func TestCartItem_Add(t *testing.T) {
	item, _ := NewCartItem(uuid.New(), uuid.New(), 2, decimal.NewFromFloat(3.50))

	err := item.Add(3)

	assert.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartItem_Add_InvalidQuantity(t *testing.T) {
	item, _ := NewCartItem(uuid.New(), uuid.New(), 2, decimal.NewFromFloat(3.50))

	assert.Error(t, item.Add(0))
	assert.Error(t, item.Add(-2))
	assert.Equal(t, 2, item.Quantity)
}

func TestCartItem_RemoveOne(t *testing.T) {
	item, _ := NewCartItem(uuid.New(), uuid.New(), 2, decimal.NewFromFloat(3.50))

	empty := item.RemoveOne()
	assert.False(t, empty)
	assert.Equal(t, 1, item.Quantity)

	empty = item.RemoveOne()
	assert.True(t, empty)
	assert.Equal(t, 0, item.Quantity)
}

func TestCartItem_Subtotal(t *testing.T) {
	item, _ := NewCartItem(uuid.New(), uuid.New(), 3, decimal.NewFromFloat(3.50))

	assert.True(t, decimal.NewFromFloat(10.50).Equal(item.Subtotal()))
}
