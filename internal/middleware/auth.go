package middleware

import (
	"net/http"

	"site-tracker/internal/authz"
	"site-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID := sess.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission consults the role policy for one action. A denied
// request has no effect: warning flash, back to the materials list.
func RequirePermission(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get("role").(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !authz.Allowed(models.UserRole(roleStr), action) {
			sess.AddFlash("You are not authorized to do that.", "warning")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/materials")
			c.Abort()
			return
		}
		c.Next()
	}
}
