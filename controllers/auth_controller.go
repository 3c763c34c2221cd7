package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"loja-virtual/config"
	"loja-virtual/utils"
)

// AuthController guards the management routes. It is only active when
// ADMIN_PASSWORD_HASH is configured; without it the admin surface stays
// open, matching the original application.
type AuthController struct{}

func (ctrl *AuthController) LoginForm(c *gin.Context) {
	if config.AppConfig.AdminPasswordHash == "" {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Entrar"})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	if config.AppConfig.AdminPasswordHash == "" {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	password := c.PostForm("senha")
	ok, err := utils.VerifyPassword(config.AppConfig.AdminPasswordHash, password)
	if err != nil || !ok {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":  "Entrar",
			"Errors": []string{"Senha incorreta."},
		})
		return
	}

	session := sessions.Default(c)
	session.Set("admin_logged_in", true)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":  "Entrar",
			"Errors": []string{"Não foi possível iniciar a sessão."},
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete("admin_logged_in")
	session.Save()
	c.Redirect(http.StatusSeeOther, "/")
}
