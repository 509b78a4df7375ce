package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"products-api/internal/model"

	"github.com/rs/zerolog"
)

// fileStore implements Store on top of a single JSON file holding a
// pretty-printed array of products.
type fileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a new file-backed product store. The file is not
// created until the first Save.
func NewFileStore(path string, logger zerolog.Logger) Store {
	return &fileStore{
		path:   path,
		logger: logger.With().Str("store", "file").Logger(),
	}
}

// Load reads the full product collection from the data file.
// Missing or corrupt data is normalised to an empty collection so the
// service stays available; only genuine I/O failures surface as errors.
func (s *fileStore) Load(_ context.Context) ([]model.Product, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug().Str("file", s.path).Msg("data file does not exist, starting with empty collection")
		return []model.Product{}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to read data file")
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.Warn().Err(err).Str("file", s.path).Msg("data file is not a valid product list, treating as empty")
		return []model.Product{}, nil
	}
	if products == nil {
		// the file contained a JSON null
		return []model.Product{}, nil
	}

	s.logger.Debug().Int("count", len(products)).Msg("loaded products")
	return products, nil
}

// Save serialises the full collection and replaces the data file via a
// temporary file and rename, so readers never observe a half-written file.
func (s *fileStore) Save(_ context.Context, products []model.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("file", tmp).Msg("failed to write temporary data file")
		return fmt.Errorf("failed to write temporary data file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to replace data file")
		// best-effort cleanup; the original file is untouched
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace data file %s: %w", s.path, err)
	}

	s.logger.Debug().Int("count", len(products)).Str("file", s.path).Msg("saved products")
	return nil
}
