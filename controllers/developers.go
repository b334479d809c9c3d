package controllers

import (
	"net/http"

	models "gamevault/models/postgres"
	"gamevault/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Founded is a pointer so that "required" means present, not non-zero.
type developerForm struct {
	Name         string `form:"name" binding:"required"`
	Founded      *int   `form:"founded" binding:"required"`
	Headquarters string `form:"headquarters" binding:"required"`
}

// ListDevelopers renders all developers.
func ListDevelopers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var developers []models.Developer
		if err := db.Find(&developers).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "developers.html", viewContext(c, gin.H{"Developers": developers}))
	}
}

// AddDeveloperForm renders the creation form.
func AddDeveloperForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_developer.html", viewContext(c, nil))
}

// AddDeveloper creates a developer from the submitted form.
func AddDeveloper(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form developerForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusSeeOther, "/developers/add")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			developer := models.Developer{
				Name:         form.Name,
				Founded:      *form.Founded,
				Headquarters: form.Headquarters,
			}
			return tx.Create(&developer).Error
		})
		if err != nil {
			renderServerError(c)
			return
		}
		utils.Flash(c, "success", "Developer added successfully!")
		c.Redirect(http.StatusSeeOther, "/developers")
	}
}

// EditDeveloperForm renders the edit form for an existing developer.
func EditDeveloperForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Developer")
			return
		}

		var developer models.Developer
		if err := db.First(&developer, id).Error; err != nil {
			if utils.IsNotFound(err) {
				renderNotFound(c, "Developer")
			} else {
				renderServerError(c)
			}
			return
		}
		c.HTML(http.StatusOK, "edit_developer.html", viewContext(c, gin.H{"Developer": developer}))
	}
}

// EditDeveloper overwrites every field of an existing developer.
func EditDeveloper(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Developer")
			return
		}

		var form developerForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusSeeOther, "/developers/edit/"+c.Param("id"))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var developer models.Developer
			if err := tx.First(&developer, id).Error; err != nil {
				return err
			}
			developer.Name = form.Name
			developer.Founded = *form.Founded
			developer.Headquarters = form.Headquarters
			return tx.Save(&developer).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Developer updated successfully!")
			c.Redirect(http.StatusSeeOther, "/developers")
		case utils.IsNotFound(err):
			renderNotFound(c, "Developer")
		default:
			renderServerError(c)
		}
	}
}

// DeleteDeveloper removes a developer unless games still reference it.
func DeleteDeveloper(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Developer")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var developer models.Developer
			if err := tx.First(&developer, id).Error; err != nil {
				return err
			}
			var games int64
			if err := tx.Model(&models.Game{}).Where("developer_id = ?", id).Count(&games).Error; err != nil {
				return err
			}
			if games > 0 {
				return utils.ErrConstraint
			}
			return tx.Delete(&developer).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Developer deleted successfully!")
			c.Redirect(http.StatusSeeOther, "/developers")
		case utils.IsNotFound(err):
			renderNotFound(c, "Developer")
		case utils.IsConstraintViolation(err):
			utils.Flash(c, "danger", "Cannot delete developer: games still reference it!")
			c.Redirect(http.StatusSeeOther, "/developers")
		default:
			renderServerError(c)
		}
	}
}
