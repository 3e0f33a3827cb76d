package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionKeyAdmin is the session key holding the admin login flag.
const SessionKeyAdmin = "admin_logged_in"

// AdminRequired guards admin routes. A request without a logged-in
// admin session is redirected to the login page, not rejected with
// an error status.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, ok := session.Get(SessionKeyAdmin).(bool)
		if !ok || !loggedIn {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
