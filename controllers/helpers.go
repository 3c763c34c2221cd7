package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"loja-virtual/models"
)

// ProductStore is the slice of the catalog store the controllers need.
type ProductStore interface {
	GetAll(ctx context.Context, categoryID *int) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
}

type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int) error
}

type ImageManager interface {
	IsAllowed(filename string) bool
	Save(c *gin.Context, fileHeader *multipart.FileHeader) (string, error)
	Remove(stored string)
	URL(stored string) string
}

// parseCategoryFilter reads the optional ?categoria= query parameter. A
// non-numeric value is silently ignored.
func parseCategoryFilter(c *gin.Context) *int {
	raw := strings.TrimSpace(c.Query("categoria"))
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}

func setFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	session.Save()
}

// takeFlashes drains the success and error notices queued for this session.
func takeFlashes(c *gin.Context) (success, failure []string) {
	session := sessions.Default(c)
	for _, f := range session.Flashes("success") {
		if msg, ok := f.(string); ok {
			success = append(success, msg)
		}
	}
	for _, f := range session.Flashes("error") {
		if msg, ok := f.(string); ok {
			failure = append(failure, msg)
		}
	}
	session.Save()
	return success, failure
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Página não encontrada"})
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// productRow builds the map the listing templates iterate over.
func productRow(p models.Product, images ImageManager) gin.H {
	return gin.H{
		"ID":          p.ID,
		"Name":        p.Name,
		"Price":       p.Price.StringFixed(2),
		"Description": p.Description,
		"Category":    p.CategoryName,
		"ImageURL":    images.URL(p.ImageFilename),
	}
}
