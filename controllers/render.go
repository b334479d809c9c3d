package controllers

import (
	"net/http"
	"strconv"

	"gamevault/middleware"
	"gamevault/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// parseID reads the :id route parameter. A non-numeric id is treated
// the same as a missing row.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// viewContext assembles the per-request data every template receives:
// pending flash messages and whether a user is logged in, merged with
// the handler's own entries. Nothing is kept in ambient state.
func viewContext(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	session := sessions.Default(c)
	data["Flashes"] = utils.TakeFlashes(c)
	data["LoggedIn"] = session.Get(middleware.UserKey) != nil
	return data
}

// renderNotFound renders the 404 page for a missing or malformed id.
func renderNotFound(c *gin.Context, what string) {
	c.HTML(http.StatusNotFound, "error.html", viewContext(c, gin.H{
		"Status":  http.StatusNotFound,
		"Message": what + " not found",
	}))
}

// renderServerError renders the 500 page for unexpected storage errors.
func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", viewContext(c, gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Database error",
	}))
}
