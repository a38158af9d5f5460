package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns every product in the catalog
	FindAll(ctx context.Context) ([]Product, error)

	// Save creates or updates a product (used by seeding)
	Save(ctx context.Context, product *Product) error
}
