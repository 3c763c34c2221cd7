package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"loja-virtual/carts"
	"loja-virtual/config"
	"loja-virtual/controllers"
	"loja-virtual/libs"
	"loja-virtual/repositories"
	"loja-virtual/routes"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := config.ConnectDB()
	defer db.Close()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	images := libs.NewImageStore(config.AppConfig.UploadDir)

	var cartStore carts.Store = carts.NewSessionStore()
	if client := config.ConnectRedis(); client != nil {
		defer client.Close()
		cartStore = carts.NewRedisStore(client, config.AppConfig.CartTTL)
	}

	router := gin.Default()
	store := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 86400 * 7, HttpOnly: true})
	router.Use(sessions.Sessions("loja_session", store))
	router.LoadHTMLGlob("templates/*.html")

	routes.SetupRoutes(router, routes.Controllers{
		Storefront: &controllers.StorefrontController{Products: productRepo, Categories: categoryRepo, Images: images, Carts: cartStore},
		Products:   &controllers.ProductController{Products: productRepo, Categories: categoryRepo, Images: images},
		Categories: &controllers.CategoryController{Categories: categoryRepo},
		Cart:       &controllers.CartController{Products: productRepo, Carts: cartStore, Images: images},
		Auth:       &controllers.AuthController{},
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
