package controllers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"loja-virtual/config"
	"loja-virtual/models"
	"loja-virtual/repositories"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		UploadDir:     t.TempDir(),
		MaxUploadSize: 5 << 20,
	}
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("test_session", store))
	router.LoadHTMLGlob("../templates/*.html")
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postMultipart(t *testing.T, router *gin.Engine, path string, fields map[string]string, fileField, fileName string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func newRecorder(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- Mock catalog store ---

type mockProductStore struct {
	products   []models.Product
	getAllErr  error
	created    *models.Product
	updated    *models.Product
	deleted    []int
	deleteErr  error
	lastFilter *int
	getAlls    int
}

func (m *mockProductStore) GetAll(ctx context.Context, categoryID *int) ([]models.Product, error) {
	m.getAlls++
	m.lastFilter = categoryID
	return m.products, m.getAllErr
}

func (m *mockProductStore) GetByID(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockProductStore) Create(ctx context.Context, product *models.Product) error {
	product.ID = 99
	cp := *product
	m.created = &cp
	return nil
}

func (m *mockProductStore) Update(ctx context.Context, product *models.Product) error {
	cp := *product
	m.updated = &cp
	return nil
}

func (m *mockProductStore) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCategoryStore struct {
	categories []models.Category
	created    *models.Category
	updated    *models.Category
	deleted    []int
	deleteErr  error
}

func (m *mockCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int) (*models.Category, error) {
	for _, cat := range m.categories {
		if cat.ID == id {
			cp := cat
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockCategoryStore) Create(ctx context.Context, category *models.Category) error {
	category.ID = 77
	cp := *category
	m.created = &cp
	return nil
}

func (m *mockCategoryStore) Update(ctx context.Context, category *models.Category) error {
	cp := *category
	m.updated = &cp
	return nil
}

func (m *mockCategoryStore) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// --- Fake image manager ---

type fakeImages struct {
	saved   []string
	removed []string
	saveErr error
}

func (f *fakeImages) IsAllowed(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func (f *fakeImages) Save(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	stored := "stored_" + fileHeader.Filename
	f.saved = append(f.saved, stored)
	return stored, nil
}

func (f *fakeImages) Remove(stored string) {
	f.removed = append(f.removed, stored)
}

func (f *fakeImages) URL(stored string) string {
	if stored == "" {
		return ""
	}
	return "/uploads/" + stored
}

// --- In-memory cart store ---

type memoryCartStore struct {
	cart models.Cart
}

func (m *memoryCartStore) Load(c *gin.Context) models.Cart {
	return m.cart
}

func (m *memoryCartStore) Save(c *gin.Context, cart models.Cart) error {
	m.cart = cart
	return nil
}

func (m *memoryCartStore) Clear(c *gin.Context) error {
	m.cart = models.Cart{}
	return nil
}
