package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedRoutesRedirectToLogin(t *testing.T) {
	router, _ := newTestRouter(t)
	c := newClient(t, router)

	paths := []string{
		"/admin/manage_products",
		"/admin/add_product",
		"/admin/delete_product/1",
	}
	for _, path := range paths {
		w := c.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}
}

func TestLoginWithBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)
	c := newClient(t, router)

	w := c.postForm("/admin/login", url.Values{
		"username": {testAdminUser},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// Still locked out
	w = c.get("/admin/manage_products")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestLoginAndLogout(t *testing.T) {
	router, _ := newTestRouter(t)
	c := newClient(t, router)

	w := c.postForm("/admin/login", url.Values{
		"username": {testAdminUser},
		"password": {testAdminPass},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/manage_products", w.Header().Get("Location"))

	w = c.get("/admin/manage_products")
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.get("/admin/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = c.get("/admin/manage_products")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAddProduct(t *testing.T) {
	router, store := newTestRouter(t)
	c := newClient(t, router)
	c.login()

	w := c.postForm("/admin/add_product", url.Values{
		"name":  {"Widget"},
		"price": {"9.99"},
		"stock": {"5"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/manage_products", w.Header().Get("Location"))

	products, err := store.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)

	w = c.get("/admin/manage_products")
	assert.Contains(t, w.Body.String(), "Widget")
}

func TestAddProductMalformedNumbers(t *testing.T) {
	router, store := newTestRouter(t)
	c := newClient(t, router)
	c.login()

	w := c.postForm("/admin/add_product", url.Values{
		"name":  {"Widget"},
		"price": {"free"},
		"stock": {"5"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Price must be a number")

	w = c.postForm("/admin/add_product", url.Values{
		"name":  {"Widget"},
		"price": {"9.99"},
		"stock": {"lots"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Stock must be a whole number")

	products, err := store.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAddProductRejectsNegativeValues(t *testing.T) {
	router, store := newTestRouter(t)
	c := newClient(t, router)
	c.login()

	w := c.postForm("/admin/add_product", url.Values{
		"name":  {"Widget"},
		"price": {"-1"},
		"stock": {"5"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid price")

	products, err := store.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteProduct(t *testing.T) {
	router, store := newTestRouter(t)
	id, err := store.InsertProduct("Widget", 9.99, 5)
	require.NoError(t, err)

	c := newClient(t, router)
	c.login()

	w := c.get(fmt.Sprintf("/admin/delete_product/%d", id))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/manage_products", w.Header().Get("Location"))

	products, err := store.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteMissingProductStillRedirects(t *testing.T) {
	router, _ := newTestRouter(t)
	c := newClient(t, router)
	c.login()

	w := c.get("/admin/delete_product/999")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/manage_products", w.Header().Get("Location"))
}
