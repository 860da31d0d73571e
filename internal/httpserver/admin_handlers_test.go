package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/models"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	sellerToken := env.login(t, "seller1@x.com", "Password123!")

	for _, path := range []string{"/admin/products", "/admin/sellers"} {
		rec := env.doJSON(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)

		rec = env.doJSON(http.MethodGet, path, nil, sellerToken)
		require.Equal(t, http.StatusForbidden, rec.Code, path)

		envlp := decodeEnvelope(t, rec)
		require.Equal(t, "Forbidden", envlp.Error)
	}
}

func TestAdminGetAllProducts(t *testing.T) {
	env := newTestEnv(t)

	seller1ID := env.registerSeller(t, "seller1@x.com", "Password123!")
	env.registerSeller(t, "seller2@x.com", "Password123!")
	token1 := env.login(t, "seller1@x.com", "Password123!")
	token2 := env.login(t, "seller2@x.com", "Password123!")

	env.createProduct(t, token1, map[string]any{"name": "Widget", "sku": "W-1", "quantity": 5, "price": 9.99})
	env.createProduct(t, token2, map[string]any{"name": "Gadget", "sku": "G-1", "quantity": 3, "price": 19.99})

	env.createAdmin(t, "admin@example.com", "AdminPassword123!")
	adminToken := env.login(t, "admin@example.com", "AdminPassword123!")

	rec := env.doJSON(http.MethodGet, "/admin/products", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)

	rec = env.doJSON(http.MethodGet, "/admin/products?sellerId="+seller1ID, nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	items = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "W-1", items[0].SKU)

	rec = env.doJSON(http.MethodGet, "/admin/products?sellerId=not-a-uuid", nil, adminToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminGetAllSellers(t *testing.T) {
	env := newTestEnv(t)

	env.registerSeller(t, "seller1@x.com", "Password123!")
	env.registerSeller(t, "seller2@x.com", "Password123!")

	env.createAdmin(t, "admin@example.com", "AdminPassword123!")
	adminToken := env.login(t, "admin@example.com", "AdminPassword123!")

	rec := env.doJSON(http.MethodGet, "/admin/sellers", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var sellers []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sellers))
	require.Len(t, sellers, 2)

	// the admin account itself is not a seller and must not be listed
	for _, s := range sellers {
		require.NotEqual(t, "admin@example.com", s["email"])
		require.Contains(t, s, "id")
		require.Contains(t, s, "email")
		require.Len(t, s, 2)
	}
	require.NotContains(t, rec.Body.String(), "passwordHash")
}
