package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-virtual/carts"
	"loja-virtual/repositories"
)

type CartController struct {
	Products ProductStore
	Carts    carts.Store
	Images   ImageManager
}

// Add puts a product in the session cart. Adding a product that is already
// there increments its quantity instead of creating a second line.
func (ctrl *CartController) Add(c *gin.Context) {
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

	quantity, err := strconv.Atoi(c.PostForm("quantidade"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	cart := ctrl.Carts.Load(c)
	cart.Add(*product, quantity)
	if err := ctrl.Carts.Save(c, cart); err != nil {
		setFlash(c, "error", "Não foi possível atualizar o carrinho.")
		c.Redirect(http.StatusSeeOther, "/carrinho")
		return
	}

	setFlash(c, "success", "Produto adicionado ao carrinho!")
	c.Redirect(http.StatusSeeOther, "/carrinho")
}

// Show renders the cart with its derived totals.
func (ctrl *CartController) Show(c *gin.Context) {
	cart := ctrl.Carts.Load(c)
	success, failure := takeFlashes(c)

	items := make([]gin.H, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, gin.H{
			"ProductID": item.ProductID,
			"Name":      item.Name,
			"Price":     item.Price.StringFixed(2),
			"Quantity":  item.Quantity,
			"Subtotal":  item.Price.Mul(decimalFromInt(item.Quantity)).StringFixed(2),
			"ImageURL":  ctrl.Images.URL(item.Image),
		})
	}

	c.HTML(http.StatusOK, "carrinho.html", gin.H{
		"Title":      "Carrinho",
		"Items":      items,
		"TotalItems": cart.TotalItems(),
		"TotalPrice": cart.TotalPrice().StringFixed(2),
		"Success":    success,
		"Errors":     failure,
	})
}

// Clear empties the session cart.
func (ctrl *CartController) Clear(c *gin.Context) {
	if err := ctrl.Carts.Clear(c); err != nil {
		setFlash(c, "error", "Não foi possível esvaziar o carrinho.")
	} else {
		setFlash(c, "success", "Carrinho esvaziado.")
	}
	c.Redirect(http.StatusSeeOther, "/carrinho")
}
