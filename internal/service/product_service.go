package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"products-api/internal/model"
	"products-api/internal/store"
	"products-api/internal/validation"

	"github.com/rs/zerolog"
)

// productPatch holds the decoded request body for create and update.
// Pointer fields distinguish "absent" from "zero value" so partial updates
// only overwrite what the caller actually supplied.
type productPatch struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	InStock *bool    `json:"inStock"`
}

// productService implements ProductService on top of a Store.
type productService struct {
	store  store.Store
	logger zerolog.Logger

	// mu serialises the load-mutate-save cycle of mutating operations so
	// two concurrent writes cannot both start from the same snapshot and
	// lose one of the updates.
	mu sync.Mutex

	// maxID is the highest id observed or issued so far. It keeps the id
	// sequence strictly increasing even when the current maximum is
	// deleted before the next create.
	maxID int
}

// NewProductService creates a new product service.
func NewProductService(store store.Store, logger zerolog.Logger) ProductService {
	return &productService{
		store:  store,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the full product collection.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")
	return products, nil
}

// ListInStock retrieves only products that are in stock.
func (s *productService) ListInStock(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	inStock := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.InStock {
			inStock = append(inStock, p)
		}
	}

	s.logger.Debug().
		Int("total", len(products)).
		Int("in_stock", len(inStock)).
		Msg("listed in-stock products")
	return inStock, nil
}

// Create validates the body as a full record and appends a new product.
func (s *productService) Create(ctx context.Context, body []byte) (*model.Product, error) {
	if errs := validation.Validate(body, false); len(errs) > 0 {
		s.logger.Debug().Strs("errors", errs).Msg("create rejected by validation")
		return nil, &model.ValidationError{Errors: errs}
	}

	// Validation passed, so all three fields are present and well-typed.
	var in productPatch
	if err := json.Unmarshal(body, &in); err != nil {
		return nil, &model.ValidationError{Errors: []string{"Body must be a JSON object"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	if fileMax := maxID(products); fileMax > s.maxID {
		s.maxID = fileMax
	}
	s.maxID++

	product := model.Product{
		ID:      s.maxID,
		Name:    strings.TrimSpace(*in.Name),
		Price:   *in.Price,
		InStock: *in.InStock,
	}
	products = append(products, product)

	if err := s.store.Save(ctx, products); err != nil {
		s.logger.Error().Err(err).Int("product_id", product.ID).Msg("failed to save new product")
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	s.logger.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return &product, nil
}

// Update merges the supplied fields onto the existing product with the
// given id. Unspecified fields are preserved unchanged.
func (s *productService) Update(ctx context.Context, id int, body []byte) (*model.Product, error) {
	if errs := validation.Validate(body, true); len(errs) > 0 {
		s.logger.Debug().Int("product_id", id).Strs("errors", errs).Msg("update rejected by validation")
		return nil, &model.ValidationError{Errors: errs}
	}

	var patch productPatch
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, &model.ValidationError{Errors: []string{"Body must be a JSON object"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	index := -1
	for i, p := range products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	product := &products[index]
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}

	if err := s.store.Save(ctx, products); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to save updated product")
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	updated := *product
	s.logger.Info().Int("product_id", id).Msg("product updated")
	return &updated, nil
}

// Delete removes the product with the given id.
func (s *productService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	remaining := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	if err := s.store.Save(ctx, remaining); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to save after delete")
		return fmt.Errorf("failed to save products: %w", err)
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// maxID returns the highest id present in the collection, or 0 when the
// collection is empty.
func maxID(products []model.Product) int {
	highest := 0
	for _, p := range products {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest
}
