package service

import (
	"context"

	"products-api/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves the full product collection.
	List(ctx context.Context) ([]model.Product, error)

	// ListInStock retrieves only products whose inStock flag is true.
	ListInStock(ctx context.Context) ([]model.Product, error)

	// Create validates the raw request body as a full record, assigns the
	// next id and persists the new product.
	Create(ctx context.Context, body []byte) (*model.Product, error)

	// Update validates the raw request body as a partial record and merges
	// the supplied fields onto the existing product with the given id.
	Update(ctx context.Context, id int, body []byte) (*model.Product, error)

	// Delete removes the product with the given id.
	Delete(ctx context.Context, id int) error
}
