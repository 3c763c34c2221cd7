package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"loja-virtual/config"
	"loja-virtual/models"
	"loja-virtual/repositories"
	"loja-virtual/validators"
)

type ProductController struct {
	Products   ProductStore
	Categories CategoryStore
	Images     ImageManager
}

// Index renders the management listing, same filter semantics as the
// storefront.
func (ctrl *ProductController) Index(c *gin.Context) {
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

	c.HTML(http.StatusOK, "admin_produtos.html", gin.H{
		"Title":      "Administração",
		"Products":   rows,
		"Categories": categories,
		"Selected":   selected,
		"Success":    success,
		"Errors":     failure,
	})
}

// New renders the empty add-product form.
func (ctrl *ProductController) New(c *gin.Context) {
	categories, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		setFlash(c, "error", "Não foi possível carregar as categorias.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	ctrl.renderForm(c, "Adicionar produto", "/adicionar", validators.ProductInput{}, categories, nil, false)
}

// Create validates the submitted form and inserts the product. On any
// violation the form is redisplayed with the entered values and every
// message, without touching storage.
func (ctrl *ProductController) Create(c *gin.Context) {
	categories, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		setFlash(c, "error", "Não foi possível carregar as categorias.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	input := productInput(c)
	fields, errs := validators.Product(input, categories)

	file, _ := c.FormFile("imagem")
	errs = append(errs, ctrl.validateUpload(file)...)

	if len(errs) > 0 {
		ctrl.renderForm(c, "Adicionar produto", "/adicionar", input, categories, errs, false)
		return
	}

	product := &models.Product{
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		CategoryID:  fields.CategoryID,
	}

	if file != nil {
		if stored, err := ctrl.Images.Save(c, file); err != nil {
			log.Printf("Failed to store product image: %v", err)
		} else {
			now := time.Now()
			product.ImageFilename = stored
			product.ImageUpdatedAt = &now
		}
	}

	if err := ctrl.Products.Create(c.Request.Context(), product); err != nil {
		setFlash(c, "error", "Não foi possível salvar o produto: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	setFlash(c, "success", "Produto adicionado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Edit renders the form pre-filled with the product's current values.
func (ctrl *ProductController) Edit(c *gin.Context) {
	product, ok := ctrl.fetchProduct(c)
	if !ok {
		return
	}

	categories, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		setFlash(c, "error", "Não foi possível carregar as categorias.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	input := validators.ProductInput{
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		Description: product.Description,
	}
	if product.CategoryID != nil {
		input.CategoryID = strconv.Itoa(*product.CategoryID)
	}

	ctrl.renderFormFor(c, product, input, categories, nil)
}

// Update applies the edit form. The image follows the keep-flag policy:
// keep set leaves it untouched, otherwise the old file is removed
// best-effort and either replaced by the upload or cleared.
func (ctrl *ProductController) Update(c *gin.Context) {
	product, ok := ctrl.fetchProduct(c)
	if !ok {
		return
	}

	categories, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		setFlash(c, "error", "Não foi possível carregar as categorias.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	input := productInput(c)
	fields, errs := validators.Product(input, categories)

	keep := c.PostForm("manter_imagem") != ""
	file, _ := c.FormFile("imagem")
	if !keep {
		errs = append(errs, ctrl.validateUpload(file)...)
	}

	if len(errs) > 0 {
		ctrl.renderFormFor(c, product, input, categories, errs)
		return
	}

	switch {
	case keep:
		// image untouched, even if a file was attached
	case file != nil:
		ctrl.Images.Remove(product.ImageFilename)
		if stored, err := ctrl.Images.Save(c, file); err != nil {
			log.Printf("Failed to store product image: %v", err)
			product.ImageFilename = ""
			product.ImageUpdatedAt = nil
		} else {
			now := time.Now()
			product.ImageFilename = stored
			product.ImageUpdatedAt = &now
		}
	default:
		ctrl.Images.Remove(product.ImageFilename)
		product.ImageFilename = ""
		product.ImageUpdatedAt = nil
	}

	product.Name = fields.Name
	product.Price = fields.Price
	product.Description = fields.Description
	product.CategoryID = fields.CategoryID

	if err := ctrl.Products.Update(c.Request.Context(), product); err != nil {
		setFlash(c, "error", "Não foi possível salvar o produto: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	setFlash(c, "success", "Produto atualizado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Delete removes the record and then its image file. The image removal is
// best-effort and never blocks the record deletion.
func (ctrl *ProductController) Delete(c *gin.Context) {
	product, ok := ctrl.fetchProduct(c)
	if !ok {
		return
	}

	if err := ctrl.Products.Delete(c.Request.Context(), product.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			renderNotFound(c)
			return
		}
		setFlash(c, "error", "Não foi possível excluir o produto: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	ctrl.Images.Remove(product.ImageFilename)

	setFlash(c, "success", "Produto excluído com sucesso!")
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (ctrl *ProductController) fetchProduct(c *gin.Context) (*models.Product, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return nil, false
	}

	product, err := ctrl.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			renderNotFound(c)
		} else {
			setFlash(c, "error", "Não foi possível carregar o produto.")
			c.Redirect(http.StatusSeeOther, "/admin")
		}
		return nil, false
	}
	return product, true
}

func (ctrl *ProductController) validateUpload(file *multipart.FileHeader) []string {
	if file == nil {
		return nil
	}
	if !ctrl.Images.IsAllowed(file.Filename) {
		return []string{"A imagem deve ser png, jpg, jpeg ou gif."}
	}
	if file.Size > config.AppConfig.MaxUploadSize {
		return []string{"A imagem excede o tamanho máximo permitido."}
	}
	return nil
}

func (ctrl *ProductController) renderForm(c *gin.Context, title, action string, input validators.ProductInput, categories []models.Category, errs []string, hasImage bool) {
	c.HTML(http.StatusOK, "produto_form.html", gin.H{
		"Title":      title,
		"Action":     action,
		"Values":     input,
		"Categories": categories,
		"Errors":     errs,
		"HasImage":   hasImage,
	})
}

func (ctrl *ProductController) renderFormFor(c *gin.Context, product *models.Product, input validators.ProductInput, categories []models.Category, errs []string) {
	ctrl.renderForm(c, "Editar produto", "/editar/"+strconv.Itoa(product.ID), input, categories, errs, product.ImageFilename != "")
}

func productInput(c *gin.Context) validators.ProductInput {
	return validators.ProductInput{
		Name:        c.PostForm("nome"),
		Price:       c.PostForm("preco"),
		Description: c.PostForm("descricao"),
		CategoryID:  c.PostForm("categoria_id"),
	}
}
