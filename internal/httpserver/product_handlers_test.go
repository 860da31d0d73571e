package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"marketplace/internal/models"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	sellerID := env.registerSeller(t, "seller1@x.com", "Password123!")
	token := env.login(t, "seller1@x.com", "Password123!")

	product := env.createProduct(t, token, map[string]any{
		"name":     "Widget",
		"sku":      "W-1",
		"quantity": 5,
		"price":    9.99,
	})

	require.Equal(t, "Widget", product.Name)
	require.Equal(t, "W-1", product.SKU)
	require.Equal(t, 5, product.Quantity)
	require.Equal(t, 9.99, product.Price)
	require.Equal(t, sellerID, product.SellerID.String())
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	token := env.login(t, "seller1@x.com", "Password123!")

	body := map[string]any{"name": "Widget", "sku": "W-1", "quantity": 5, "price": 9.99}
	env.createProduct(t, token, body)

	rec := env.doJSON(http.MethodPost, "/products", body, token)
	require.Equal(t, http.StatusConflict, rec.Code)

	envlp := decodeEnvelope(t, rec)
	require.Equal(t, "Conflict", envlp.Error)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	token := env.login(t, "seller1@x.com", "Password123!")

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"sku": "W-1", "quantity": 1, "price": 1.0}},
		{"missing sku", map[string]any{"name": "Widget", "quantity": 1, "price": 1.0}},
		{"negative quantity", map[string]any{"name": "Widget", "sku": "W-1", "quantity": -1, "price": 1.0}},
		{"zero price", map[string]any{"name": "Widget", "sku": "W-1", "quantity": 1, "price": 0}},
		{"negative price", map[string]any{"name": "Widget", "sku": "W-1", "quantity": 1, "price": -3.5}},
		{"too many decimals", map[string]any{"name": "Widget", "sku": "W-1", "quantity": 1, "price": 9.999}},
		{"missing quantity", map[string]any{"name": "Widget", "sku": "W-1", "price": 1.0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.doJSON(http.MethodPost, "/products", tc.body, token)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCreateProductRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"name": "Widget", "sku": "W-1", "quantity": 1, "price": 1.0}

	rec := env.doJSON(http.MethodPost, "/products", body, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(http.MethodPost, "/products", body, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOwnProducts(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	env.registerSeller(t, "seller2@x.com", "Password123!")
	token1 := env.login(t, "seller1@x.com", "Password123!")
	token2 := env.login(t, "seller2@x.com", "Password123!")

	env.createProduct(t, token1, map[string]any{"name": "Widget", "sku": "W-1", "quantity": 5, "price": 9.99})
	env.createProduct(t, token2, map[string]any{"name": "Gadget", "sku": "G-1", "quantity": 3, "price": 19.99})

	rec := env.doJSON(http.MethodGet, "/products/me", nil, token1)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "W-1", items[0].SKU)
	require.NotNil(t, items[0].Seller)
	require.Equal(t, "seller1@x.com", items[0].Seller.Email)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	token := env.login(t, "seller1@x.com", "Password123!")
	created := env.createProduct(t, token, map[string]any{"name": "Widget", "sku": "W-1", "quantity": 5, "price": 9.99})

	rec := env.doJSON(http.MethodGet, "/products/"+created.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	require.Equal(t, created.ID, product.ID)
	require.NotNil(t, product.Seller)
	require.Equal(t, "seller1@x.com", product.Seller.Email)

	// password hash must never appear in any product payload
	require.NotContains(t, rec.Body.String(), "passwordHash")
	require.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/products/"+uuid.NewString(), nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	envlp := decodeEnvelope(t, rec)
	require.Equal(t, http.StatusNotFound, envlp.StatusCode)
	require.Equal(t, "Not Found", envlp.Error)
	require.Equal(t, "product not found", envlp.Message)
}

func TestGetProductBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/products/42", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchProducts(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	token := env.login(t, "seller1@x.com", "Password123!")

	env.createProduct(t, token, map[string]any{"name": "Widget", "sku": "W-1", "quantity": 5, "price": 9.99})
	env.createProduct(t, token, map[string]any{"name": "Gadget", "sku": "G-1", "quantity": 2, "price": 75.00})
	env.createProduct(t, token, map[string]any{"name": "Gizmo", "sku": "G-2", "quantity": 1, "price": 150.00})

	list := func(path string) []models.Product {
		rec := env.doJSON(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var items []models.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		return items
	}

	require.Len(t, list("/products/search"), 3)

	byName := list("/products/search?name=Widget")
	require.Len(t, byName, 1)
	require.Equal(t, "W-1", byName[0].SKU)

	bySKU := list("/products/search?sku=G-")
	require.Len(t, bySKU, 2)

	byRange := list("/products/search?minPrice=50&maxPrice=100")
	require.Len(t, byRange, 1)
	require.Equal(t, "G-1", byRange[0].SKU)

	require.Len(t, list("/products/search?minPrice=100"), 1)
	require.Len(t, list("/products/search?maxPrice=10"), 1)

	noMatch := list("/products/search?name=Nothing")
	require.NotNil(t, noMatch)
	require.Len(t, noMatch, 0)
}

func TestSearchProductsBadPrice(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/products/search?minPrice=abc", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(http.MethodGet, "/products/search?maxPrice=-5", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
