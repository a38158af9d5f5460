package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/walkout/backend/internal/domain/shared"
)

// Product represents an item available for pickup.
// Products are seeded externally and read-only from this system's perspective.
type Product struct {
	shared.BaseEntity
	Name  string
	Price decimal.Decimal
}

// NewProduct creates a new product with the given name and price
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
	}, nil
}
