package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja-virtual/models"
)

func TestAddToCartAggregatesQuantities(t *testing.T) {
	products := &mockProductStore{products: []models.Product{testProductFixture()}}
	cartStore := &memoryCartStore{}
	router := setupRouter(t, products, &mockCategoryStore{}, &fakeImages{}, cartStore)

	rec := postForm(router, "/adicionar_carrinho/5", url.Values{"quantidade": {"2"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/carrinho", rec.Header().Get("Location"))

	rec = postForm(router, "/adicionar_carrinho/5", url.Values{"quantidade": {"3"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	require.Len(t, cartStore.cart.Items, 1, "same product must not create a second line")
	assert.Equal(t, 5, cartStore.cart.Items[0].Quantity)
	assert.Equal(t, "Relógio", cartStore.cart.Items[0].Name)
	assert.Equal(t, "999.50", cartStore.cart.TotalPrice().StringFixed(2))
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	products := &mockProductStore{products: []models.Product{testProductFixture()}}
	cartStore := &memoryCartStore{}
	router := setupRouter(t, products, &mockCategoryStore{}, &fakeImages{}, cartStore)

	rec := postForm(router, "/adicionar_carrinho/5", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, cartStore.cart.Items, 1)
	assert.Equal(t, 1, cartStore.cart.Items[0].Quantity)

	rec = postForm(router, "/adicionar_carrinho/5", url.Values{"quantidade": {"abc"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 2, cartStore.cart.Items[0].Quantity)
}

func TestAddToCartUnknownProductReturns404(t *testing.T) {
	cartStore := &memoryCartStore{}
	router := setupRouter(t, &mockProductStore{}, &mockCategoryStore{}, &fakeImages{}, cartStore)

	rec := postForm(router, "/adicionar_carrinho/123", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, cartStore.cart.Items)
}

func TestShowCartRendersTotals(t *testing.T) {
	products := &mockProductStore{products: []models.Product{testProductFixture()}}
	cartStore := &memoryCartStore{}
	cartStore.cart.Add(products.products[0], 2)
	router := setupRouter(t, products, &mockCategoryStore{}, &fakeImages{}, cartStore)

	rec := get(router, "/carrinho")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Relógio")
	assert.Contains(t, body, "399.80")
}

func TestClearCart(t *testing.T) {
	products := &mockProductStore{products: []models.Product{testProductFixture()}}
	cartStore := &memoryCartStore{}
	cartStore.cart.Add(products.products[0], 2)
	router := setupRouter(t, products, &mockCategoryStore{}, &fakeImages{}, cartStore)

	rec := postForm(router, "/esvaziar_carrinho", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, cartStore.cart.Items)
	assert.Equal(t, 0, cartStore.cart.TotalItems())
	assert.True(t, cartStore.cart.TotalPrice().IsZero())
}
