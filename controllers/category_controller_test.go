package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja-virtual/models"
	"loja-virtual/repositories"
)

func TestCreateCategorySuccess(t *testing.T) {
	categories := &mockCategoryStore{categories: testCategoriesFixture()}
	router := setupRouter(t, &mockProductStore{}, categories, &fakeImages{}, nil)

	rec := postForm(router, "/categorias/adicionar", url.Values{"nome": {"  Calçados  "}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/categorias", rec.Header().Get("Location"))
	require.NotNil(t, categories.created)
	assert.Equal(t, "Calçados", categories.created.Name)
}

func TestCreateCategoryDuplicateNameRedisplaysForm(t *testing.T) {
	categories := &mockCategoryStore{categories: testCategoriesFixture()}
	router := setupRouter(t, &mockProductStore{}, categories, &fakeImages{}, nil)

	rec := postForm(router, "/categorias/adicionar", url.Values{"nome": {"roupas"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Já existe uma categoria com esse nome.")
	assert.Nil(t, categories.created)
}

func TestUpdateCategoryToOwnNameIsAccepted(t *testing.T) {
	categories := &mockCategoryStore{categories: testCategoriesFixture()}
	router := setupRouter(t, &mockProductStore{}, categories, &fakeImages{}, nil)

	rec := postForm(router, "/categorias/editar/1", url.Values{"nome": {"Roupas"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, categories.updated)
	assert.Equal(t, "Roupas", categories.updated.Name)
}

func TestUpdateCategoryUnknownIDReturns404(t *testing.T) {
	router := setupRouter(t, &mockProductStore{}, &mockCategoryStore{}, &fakeImages{}, nil)

	rec := postForm(router, "/categorias/editar/42", url.Values{"nome": {"Nova"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCategoryWithProductsIsRefused(t *testing.T) {
	categories := &mockCategoryStore{
		categories: []models.Category{{ID: 1, Name: "Roupas", ProductCount: 3}},
		deleteErr:  repositories.ErrCategoryInUse,
	}
	router := setupRouter(t, &mockProductStore{}, categories, &fakeImages{}, nil)

	rec := postForm(router, "/categorias/excluir/1", nil)

	// refused with a notice, not an error page; nothing was removed
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/categorias", rec.Header().Get("Location"))
	assert.Empty(t, categories.deleted)

	req := get(router, "/categorias")
	assert.Contains(t, req.Body.String(), "Roupas")
}

func TestDeleteCategorySuccess(t *testing.T) {
	categories := &mockCategoryStore{categories: []models.Category{{ID: 1, Name: "Roupas"}}}
	router := setupRouter(t, &mockProductStore{}, categories, &fakeImages{}, nil)

	rec := postForm(router, "/categorias/excluir/1", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []int{1}, categories.deleted)
}
