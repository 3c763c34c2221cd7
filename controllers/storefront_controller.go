package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-virtual/carts"
	"loja-virtual/repositories"
)

type StorefrontController struct {
	Products   ProductStore
	Categories CategoryStore
	Images     ImageManager
	Carts      carts.Store
}

// Index renders the public storefront, optionally filtered by ?categoria=.
func (ctrl *StorefrontController) Index(c *gin.Context) {
	filter := parseCategoryFilter(c)

	products, err := ctrl.Products.GetAll(c.Request.Context(), filter)
	success, failure := takeFlashes(c)
	if err != nil {
		failure = append(failure, "Não foi possível carregar os produtos.")
	}

	categories, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		failure = append(failure, "Não foi possível carregar as categorias.")
	}

	rows := make([]gin.H, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow(p, ctrl.Images))
	}

	selected := 0
	if filter != nil {
		selected = *filter
	}

	cart := ctrl.Carts.Load(c)
	c.HTML(http.StatusOK, "vitrine.html", gin.H{
		"Title":      "Loja",
		"Products":   rows,
		"Categories": categories,
		"Selected":   selected,
		"CartCount":  cart.TotalItems(),
		"Success":    success,
		"Errors":     failure,
	})
}

// Show renders the product detail page.
func (ctrl *StorefrontController) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return
	}

	product, err := ctrl.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			renderNotFound(c)
			return
		}
		setFlash(c, "error", "Não foi possível carregar o produto.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	success, failure := takeFlashes(c)
	cart := ctrl.Carts.Load(c)
	c.HTML(http.StatusOK, "produto.html", gin.H{
		"Title":     product.Name,
		"Product":   productRow(*product, ctrl.Images),
		"ImageURL":  ctrl.Images.URL(product.ImageFilename),
		"CartCount": cart.TotalItems(),
		"Success":   success,
		"Errors":    failure,
	})
}
