package controllers

import (
	"net/http"
	"strings"

	"gamevault/middleware"
	models "gamevault/models/postgres"
	"gamevault/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginForm renders the login page.
func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", viewContext(c, nil))
}

// Login verifies the submitted credentials against the users table and
// stores the user's id in the session on success.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username := c.PostForm("username")
		password := c.PostForm("password")

		// Minimum input sanitizing
		if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
			utils.Flash(c, "danger", "Invalid credentials!")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			utils.Flash(c, "danger", "Invalid credentials!")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			utils.Flash(c, "danger", "Invalid credentials!")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		session.Set(middleware.UserKey, user.ID)
		if err := session.Save(); err != nil {
			renderServerError(c)
			return
		}
		utils.Flash(c, "success", "Logged in successfully!")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}

// Logout clears the session identity unconditionally, even when no
// user was logged in.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.UserKey)
	if err := session.Save(); err != nil {
		renderServerError(c)
		return
	}
	utils.Flash(c, "success", "Logged out successfully!")
	c.Redirect(http.StatusSeeOther, "/login")
}

// Dashboard renders the landing page shown after login.
func Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", viewContext(c, nil))
}

// Ping returns a basic liveness message.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
