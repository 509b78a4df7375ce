package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"products-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) model.Product {
	t.Helper()
	var p model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []model.Product {
	t.Helper()
	var ps []model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
	return ps
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := setupTestServer(t)

	w := doRequest(t, h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Products API is running", w.Body.String())
}

func TestProductCRUDLifecycle(t *testing.T) {
	h, _ := setupTestServer(t)

	// empty collection on first read, not an error
	w := doRequest(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProducts(t, w))

	// create
	w = doRequest(t, h, http.MethodPost, "/products", `{"name": " Keyboard ", "price": 49.99, "inStock": true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeProduct(t, w)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Keyboard", created.Name)

	// read back
	w = doRequest(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 1)
	assert.Equal(t, created, products[0])

	// partial update preserves untouched fields
	w = doRequest(t, h, http.MethodPut, "/products/1", `{"price": 7}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeProduct(t, w)
	assert.Equal(t, model.Product{ID: 1, Name: "Keyboard", Price: 7, InStock: true}, updated)

	// delete
	w = doRequest(t, h, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Product deleted successfully"}`, w.Body.String())

	// gone
	w = doRequest(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProducts(t, w))
}

func TestListIsIdempotent(t *testing.T) {
	h, _ := setupTestServer(t)

	doRequest(t, h, http.MethodPost, "/products", `{"name": "A", "price": 1, "inStock": true}`)
	doRequest(t, h, http.MethodPost, "/products", `{"name": "B", "price": 2, "inStock": false}`)

	first := doRequest(t, h, http.MethodGet, "/products", "")
	second := doRequest(t, h, http.MethodGet, "/products", "")

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIDMonotonicity(t *testing.T) {
	h, _ := setupTestServer(t)

	for i := 1; i <= 3; i++ {
		w := doRequest(t, h, http.MethodPost, "/products", `{"name": "P", "price": 1, "inStock": true}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, i, decodeProduct(t, w).ID)
	}

	// deleting the highest id must not make it available again
	w := doRequest(t, h, http.MethodDelete, "/products/3", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodPost, "/products", `{"name": "Q", "price": 1, "inStock": true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 4, decodeProduct(t, w).ID)
}

func TestInStockFilter(t *testing.T) {
	h, _ := setupTestServer(t)

	doRequest(t, h, http.MethodPost, "/products", `{"name": "A", "price": 1, "inStock": true}`)
	doRequest(t, h, http.MethodPost, "/products", `{"name": "B", "price": 2, "inStock": false}`)
	doRequest(t, h, http.MethodPost, "/products", `{"name": "C", "price": 3, "inStock": true}`)

	w := doRequest(t, h, http.MethodGet, "/products/instock", "")
	require.Equal(t, http.StatusOK, w.Code)

	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "C", products[1].Name)
}

func TestCreateValidationErrors(t *testing.T) {
	h, _ := setupTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/products", `{"foo": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid input", resp.Message)
	assert.Equal(t, []string{
		"Unknown field: foo",
		"Field 'name' must be a non-empty string",
		"Field 'price' must be a non-negative number",
		"Field 'inStock' must be a boolean",
	}, resp.Errors)
}

func TestNotFoundLeavesFileUnchanged(t *testing.T) {
	h, dataFile := setupTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/products", `{"name": "A", "price": 1, "inStock": true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	before, err := os.ReadFile(dataFile)
	require.NoError(t, err)

	w = doRequest(t, h, http.MethodPut, "/products/99", `{"price": 2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, h, http.MethodDelete, "/products/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	after, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInvalidIDRejected(t *testing.T) {
	h, _ := setupTestServer(t)

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		w := doRequest(t, h, http.MethodPut, "/products/"+id, `{"price": 2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid id", resp.Message)
	}
}

func TestCorruptDataFileToleratedOnRead(t *testing.T) {
	h, dataFile := setupTestServer(t)

	require.NoError(t, os.WriteFile(dataFile, []byte("{definitely not json"), 0o644))

	w := doRequest(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProducts(t, w))
}

func TestDataFileIsPrettyPrinted(t *testing.T) {
	h, dataFile := setupTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/products", `{"name": "A", "price": 1, "inStock": true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  \"id\": 1")
	assert.Contains(t, string(data), "  \"inStock\": true")
}
