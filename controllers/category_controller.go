package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-virtual/models"
	"loja-virtual/repositories"
	"loja-virtual/validators"
)

type CategoryController struct {
	Categories CategoryStore
}

// Index lists categories with their product counts.
func (ctrl *CategoryController) Index(c *gin.Context) {
	categories, err := ctrl.Categories.GetAll(c.Request.Context())
	success, failure := takeFlashes(c)
	if err != nil {
		failure = append(failure, "Não foi possível carregar as categorias.")
	}

	c.HTML(http.StatusOK, "categorias.html", gin.H{
		"Title":      "Categorias",
		"Categories": categories,
		"Success":    success,
		"Errors":     failure,
	})
}

func (ctrl *CategoryController) New(c *gin.Context) {
	ctrl.renderForm(c, "Adicionar categoria", "/categorias/adicionar", "", nil)
}

func (ctrl *CategoryController) Create(c *gin.Context) {
	existing, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		setFlash(c, "error", "Não foi possível carregar as categorias.")
		c.Redirect(http.StatusSeeOther, "/categorias")
		return
	}

	input := validators.CategoryInput{Name: c.PostForm("nome")}
	name, errs := validators.Category(input, existing, 0)
	if len(errs) > 0 {
		ctrl.renderForm(c, "Adicionar categoria", "/categorias/adicionar", input.Name, errs)
		return
	}

	if err := ctrl.Categories.Create(c.Request.Context(), &models.Category{Name: name}); err != nil {
		setFlash(c, "error", "Não foi possível salvar a categoria: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/categorias")
		return
	}

	setFlash(c, "success", "Categoria adicionada com sucesso!")
	c.Redirect(http.StatusSeeOther, "/categorias")
}

func (ctrl *CategoryController) Edit(c *gin.Context) {
	category, ok := ctrl.fetchCategory(c)
	if !ok {
		return
	}
	ctrl.renderForm(c, "Editar categoria", "/categorias/editar/"+strconv.Itoa(category.ID), category.Name, nil)
}

func (ctrl *CategoryController) Update(c *gin.Context) {
	category, ok := ctrl.fetchCategory(c)
	if !ok {
		return
	}

	existing, err := ctrl.Categories.GetAll(c.Request.Context())
	if err != nil {
		setFlash(c, "error", "Não foi possível carregar as categorias.")
		c.Redirect(http.StatusSeeOther, "/categorias")
		return
	}

	input := validators.CategoryInput{Name: c.PostForm("nome")}
	name, errs := validators.Category(input, existing, category.ID)
	if len(errs) > 0 {
		ctrl.renderForm(c, "Editar categoria", "/categorias/editar/"+strconv.Itoa(category.ID), input.Name, errs)
		return
	}

	category.Name = name
	if err := ctrl.Categories.Update(c.Request.Context(), category); err != nil {
		setFlash(c, "error", "Não foi possível salvar a categoria: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/categorias")
		return
	}

	setFlash(c, "success", "Categoria atualizada com sucesso!")
	c.Redirect(http.StatusSeeOther, "/categorias")
}

// Delete refuses to remove a category that still has products, leaving both
// the category and its products intact.
func (ctrl *CategoryController) Delete(c *gin.Context) {
	category, ok := ctrl.fetchCategory(c)
	if !ok {
		return
	}

	if err := ctrl.Categories.Delete(c.Request.Context(), category.ID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryInUse):
			setFlash(c, "error", "Não é possível excluir: existem produtos nessa categoria.")
		case errors.Is(err, repositories.ErrNotFound):
			renderNotFound(c)
			return
		default:
			setFlash(c, "error", "Não foi possível excluir a categoria: "+err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/categorias")
		return
	}

	setFlash(c, "success", "Categoria excluída com sucesso!")
	c.Redirect(http.StatusSeeOther, "/categorias")
}

func (ctrl *CategoryController) fetchCategory(c *gin.Context) (*models.Category, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return nil, false
	}

	category, err := ctrl.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			renderNotFound(c)
		} else {
			setFlash(c, "error", "Não foi possível carregar a categoria.")
			c.Redirect(http.StatusSeeOther, "/categorias")
		}
		return nil, false
	}
	return category, true
}

func (ctrl *CategoryController) renderForm(c *gin.Context, title, action, name string, errs []string) {
	c.HTML(http.StatusOK, "categoria_form.html", gin.H{
		"Title":  title,
		"Action": action,
		"Name":   name,
		"Errors": errs,
	})
}
