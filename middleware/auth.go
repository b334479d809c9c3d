package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// UserKey is the session key holding the authenticated user's id.
const UserKey = "user_id"

// AuthRequired is a simple middleware to check the session. Requests
// without an authenticated user are redirected to the login form.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get(UserKey)
	if user == nil {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	// Continue down the chain to handler etc
	c.Next()
}
