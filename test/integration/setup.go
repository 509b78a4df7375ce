package integration

import (
	"net/http"
	"path/filepath"
	"testing"

	"products-api/internal/handler"
	"products-api/internal/router"
	"products-api/internal/service"
	"products-api/internal/store"

	"github.com/rs/zerolog"
)

// setupTestServer wires the full stack against a data file in a temporary
// directory and returns the router plus the data file path.
func setupTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	logger := zerolog.Nop()
	dataFile := filepath.Join(t.TempDir(), "products.json")

	productStore := store.NewFileStore(dataFile, logger)
	productService := service.NewProductService(productStore, logger)
	productHandler := handler.NewProductHandler(productService, logger)

	return router.New(productHandler, logger), dataFile
}
