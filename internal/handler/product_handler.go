package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"products-api/internal/model"
	"products-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Health handles GET / requests.
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Products API is running"))
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeInternalError(w, "Failed to load products", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// ListInStock handles GET /products/instock requests.
func (h *ProductHandler) ListInStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListInStock(r.Context())
	if err != nil {
		writeInternalError(w, "Failed to load products", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), body)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr.Errors, h.logger)
			return
		}
		writeInternalError(w, "Failed to save product", err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id", h.logger)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, body)
	if err != nil {
		var vErr *model.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeValidationError(w, vErr.Errors, h.logger)
		case errors.Is(err, model.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
		default:
			writeInternalError(w, "Failed to save product", err, h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeInternalError(w, "Failed to delete product", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// parseID extracts the product id from the URL path. It must be a positive
// integer.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
