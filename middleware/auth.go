package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"loja-virtual/config"
)

// AdminRequired redirects to the login page unless the session is marked as
// an admin session. When no admin password hash is configured the guard is
// a no-op.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AppConfig.AdminPasswordHash == "" {
			c.Next()
			return
		}

		session := sessions.Default(c)
		if logged, _ := session.Get("admin_logged_in").(bool); !logged {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
