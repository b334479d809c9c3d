package routes

import (
	"net/http"

	"gamevault/controllers"
	"gamevault/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	router.GET("/ping", controllers.Ping)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	router.GET("/login", controllers.LoginForm)
	router.POST("/login", controllers.Login(db))
	router.GET("/logout", controllers.Logout)

	// Every resource route requires a session. The source app only
	// guarded the game routes; here the guard is uniform.
	private := router.Group("/")
	private.Use(middleware.AuthRequired)
	{
		private.GET("/dashboard", controllers.Dashboard)

		games := private.Group("/games")
		{
			games.GET("", controllers.ListGames(db))
			games.GET("/add", controllers.AddGameForm(db))
			games.POST("/add", controllers.AddGame(db))
			games.GET("/edit/:id", controllers.EditGameForm(db))
			games.POST("/edit/:id", controllers.EditGame(db))
			games.POST("/delete/:id", controllers.DeleteGame(db))
		}

		developers := private.Group("/developers")
		{
			developers.GET("", controllers.ListDevelopers(db))
			developers.GET("/add", controllers.AddDeveloperForm)
			developers.POST("/add", controllers.AddDeveloper(db))
			developers.GET("/edit/:id", controllers.EditDeveloperForm(db))
			developers.POST("/edit/:id", controllers.EditDeveloper(db))
			developers.POST("/delete/:id", controllers.DeleteDeveloper(db))
		}

		platforms := private.Group("/platforms")
		{
			platforms.GET("", controllers.ListPlatforms(db))
			platforms.GET("/add", controllers.AddPlatformForm)
			platforms.POST("/add", controllers.AddPlatform(db))
			platforms.GET("/edit/:id", controllers.EditPlatformForm(db))
			platforms.POST("/edit/:id", controllers.EditPlatform(db))
			platforms.POST("/delete/:id", controllers.DeletePlatform(db))
		}

		reviews := private.Group("/reviews")
		{
			reviews.GET("", controllers.ListReviews(db))
			reviews.GET("/add", controllers.AddReviewForm(db))
			reviews.POST("/add", controllers.AddReview(db))
			reviews.GET("/edit/:id", controllers.EditReviewForm(db))
			reviews.POST("/edit/:id", controllers.EditReview(db))
			reviews.POST("/delete/:id", controllers.DeleteReview(db))
		}
	}
}
