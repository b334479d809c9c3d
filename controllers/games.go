package controllers

import (
	"errors"
	"net/http"
	"time"

	models "gamevault/models/postgres"
	"gamevault/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// gameForm is the typed input for the add/edit operations. Parsing
// happens before any entity is constructed.
type gameForm struct {
	Title       string `form:"title" binding:"required"`
	Genre       string `form:"genre" binding:"required"`
	ReleaseDate string `form:"release_date" binding:"required"`
	DeveloperID uint   `form:"developer_id" binding:"required"`
}

const releaseDateLayout = "2006-01-02"

// ListGames renders all games with their developer resolved.
func ListGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []models.Game
		if err := db.Preload("Developer").Find(&games).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "games.html", viewContext(c, gin.H{"Games": games}))
	}
}

// AddGameForm renders the creation form with the developer select.
func AddGameForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var developers []models.Developer
		if err := db.Find(&developers).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "add_game.html", viewContext(c, gin.H{"Developers": developers}))
	}
}

// AddGame creates a game from the submitted form. The referenced
// developer must exist; the whole insert runs in one transaction.
func AddGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form gameForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusSeeOther, "/games/add")
			return
		}

		releaseDate, err := time.Parse(releaseDateLayout, form.ReleaseDate)
		if err != nil {
			utils.Flash(c, "danger", "Release date must be in YYYY-MM-DD format!")
			c.Redirect(http.StatusSeeOther, "/games/add")
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var developer models.Developer
			if err := tx.First(&developer, form.DeveloperID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrConstraint
				}
				return err
			}
			game := models.Game{
				Title:       form.Title,
				Genre:       form.Genre,
				ReleaseDate: releaseDate,
				DeveloperID: form.DeveloperID,
			}
			return tx.Create(&game).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Game added successfully!")
			c.Redirect(http.StatusSeeOther, "/games")
		case utils.IsConstraintViolation(err):
			utils.Flash(c, "danger", "Selected developer does not exist!")
			c.Redirect(http.StatusSeeOther, "/games/add")
		default:
			renderServerError(c)
		}
	}
}

// EditGameForm renders the edit form for an existing game.
func EditGameForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Game")
			return
		}

		var game models.Game
		if err := db.First(&game, id).Error; err != nil {
			if utils.IsNotFound(err) {
				renderNotFound(c, "Game")
			} else {
				renderServerError(c)
			}
			return
		}

		var developers []models.Developer
		if err := db.Find(&developers).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "edit_game.html", viewContext(c, gin.H{
			"Game":       game,
			"Developers": developers,
		}))
	}
}

// EditGame overwrites every mutable field of an existing game from the
// submitted form. Missing ids never write anything.
func EditGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Game")
			return
		}

		var form gameForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusSeeOther, "/games/edit/"+c.Param("id"))
			return
		}

		releaseDate, err := time.Parse(releaseDateLayout, form.ReleaseDate)
		if err != nil {
			utils.Flash(c, "danger", "Release date must be in YYYY-MM-DD format!")
			c.Redirect(http.StatusSeeOther, "/games/edit/"+c.Param("id"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var game models.Game
			if err := tx.First(&game, id).Error; err != nil {
				return err
			}
			var developer models.Developer
			if err := tx.First(&developer, form.DeveloperID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrConstraint
				}
				return err
			}
			game.Title = form.Title
			game.Genre = form.Genre
			game.ReleaseDate = releaseDate
			game.DeveloperID = form.DeveloperID
			return tx.Save(&game).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Game updated successfully!")
			c.Redirect(http.StatusSeeOther, "/games")
		case utils.IsNotFound(err):
			renderNotFound(c, "Game")
		case utils.IsConstraintViolation(err):
			utils.Flash(c, "danger", "Selected developer does not exist!")
			c.Redirect(http.StatusSeeOther, "/games/edit/"+c.Param("id"))
		default:
			renderServerError(c)
		}
	}
}

// DeleteGame removes a game unless reviews still reference it.
func DeleteGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Game")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var game models.Game
			if err := tx.First(&game, id).Error; err != nil {
				return err
			}
			var reviews int64
			if err := tx.Model(&models.Review{}).Where("game_id = ?", id).Count(&reviews).Error; err != nil {
				return err
			}
			if reviews > 0 {
				return utils.ErrConstraint
			}
			return tx.Delete(&game).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Game deleted successfully!")
			c.Redirect(http.StatusSeeOther, "/games")
		case utils.IsNotFound(err):
			renderNotFound(c, "Game")
		case utils.IsConstraintViolation(err):
			utils.Flash(c, "danger", "Cannot delete game: reviews still reference it!")
			c.Redirect(http.StatusSeeOther, "/games")
		default:
			renderServerError(c)
		}
	}
}
