package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loja-virtual/config"
	"loja-virtual/controllers"
	"loja-virtual/middleware"
)

type Controllers struct {
	Storefront *controllers.StorefrontController
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Cart       *controllers.CartController
	Auth       *controllers.AuthController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/", ctrl.Storefront.Index)
	router.GET("/produto/:id", ctrl.Storefront.Show)

	router.POST("/adicionar_carrinho/:id", ctrl.Cart.Add)
	router.GET("/carrinho", ctrl.Cart.Show)
	router.POST("/esvaziar_carrinho", ctrl.Cart.Clear)

	router.GET("/admin/login", ctrl.Auth.LoginForm)
	router.POST("/admin/login", ctrl.Auth.Login)
	router.POST("/admin/logout", ctrl.Auth.Logout)

	admin := router.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/admin", ctrl.Products.Index)
		admin.GET("/adicionar", ctrl.Products.New)
		admin.POST("/adicionar", ctrl.Products.Create)
		admin.GET("/editar/:id", ctrl.Products.Edit)
		admin.POST("/editar/:id", ctrl.Products.Update)
		admin.POST("/excluir/:id", ctrl.Products.Delete)

		admin.GET("/categorias", ctrl.Categories.Index)
		admin.GET("/categorias/adicionar", ctrl.Categories.New)
		admin.POST("/categorias/adicionar", ctrl.Categories.Create)
		admin.GET("/categorias/editar/:id", ctrl.Categories.Edit)
		admin.POST("/categorias/editar/:id", ctrl.Categories.Update)
		admin.POST("/categorias/excluir/:id", ctrl.Categories.Delete)
	}

	router.Static("/uploads", config.AppConfig.UploadDir)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Página não encontrada"})
	})
}
