package store

import (
	"context"

	"products-api/internal/model"
)

// Store defines the interface for durable persistence of the full
// product collection.
type Store interface {
	// Load reads the entire collection. A missing, empty, or unparseable
	// data file yields an empty collection, not an error; any other I/O
	// failure is returned.
	Load(ctx context.Context) ([]model.Product, error)

	// Save atomically replaces the entire collection on disk. A concurrent
	// Load observes either the previous or the new contents, never a
	// partial write.
	Save(ctx context.Context, products []model.Product) error
}
