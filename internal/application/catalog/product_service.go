package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/walkout/backend/internal/domain/catalog"
	"github.com/walkout/backend/internal/domain/shared"
)

// ProductService handles catalog read operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns every product in the catalog. An empty catalog is reported
// as not found rather than an empty list.
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No products available")
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ToProductResponse(&products[i]))
	}
	return responses, nil
}

// Get returns a single product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}
