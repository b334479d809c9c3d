package controllers

import (
	"net/http"

	models "gamevault/models/postgres"
	"gamevault/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReleaseYear is a pointer so that "required" means present, not
// non-zero.
type platformForm struct {
	Name         string `form:"name" binding:"required"`
	Manufacturer string `form:"manufacturer" binding:"required"`
	ReleaseYear  *int   `form:"release_year" binding:"required"`
}

// ListPlatforms renders all platforms.
func ListPlatforms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var platforms []models.Platform
		if err := db.Find(&platforms).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "platforms.html", viewContext(c, gin.H{"Platforms": platforms}))
	}
}

// AddPlatformForm renders the creation form.
func AddPlatformForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_platform.html", viewContext(c, nil))
}

// AddPlatform creates a platform from the submitted form.
func AddPlatform(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form platformForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusSeeOther, "/platforms/add")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			platform := models.Platform{
				Name:         form.Name,
				Manufacturer: form.Manufacturer,
				ReleaseYear:  *form.ReleaseYear,
			}
			return tx.Create(&platform).Error
		})
		if err != nil {
			renderServerError(c)
			return
		}
		utils.Flash(c, "success", "Platform added successfully!")
		c.Redirect(http.StatusSeeOther, "/platforms")
	}
}

// EditPlatformForm renders the edit form for an existing platform.
func EditPlatformForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Platform")
			return
		}

		var platform models.Platform
		if err := db.First(&platform, id).Error; err != nil {
			if utils.IsNotFound(err) {
				renderNotFound(c, "Platform")
			} else {
				renderServerError(c)
			}
			return
		}
		c.HTML(http.StatusOK, "edit_platform.html", viewContext(c, gin.H{"Platform": platform}))
	}
}

// EditPlatform overwrites every field of an existing platform.
func EditPlatform(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Platform")
			return
		}

		var form platformForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusSeeOther, "/platforms/edit/"+c.Param("id"))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var platform models.Platform
			if err := tx.First(&platform, id).Error; err != nil {
				return err
			}
			platform.Name = form.Name
			platform.Manufacturer = form.Manufacturer
			platform.ReleaseYear = *form.ReleaseYear
			return tx.Save(&platform).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Platform updated successfully!")
			c.Redirect(http.StatusSeeOther, "/platforms")
		case utils.IsNotFound(err):
			renderNotFound(c, "Platform")
		default:
			renderServerError(c)
		}
	}
}

// DeletePlatform removes a platform. Nothing references platforms, so
// there is no dependent-row check.
func DeletePlatform(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Platform")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var platform models.Platform
			if err := tx.First(&platform, id).Error; err != nil {
				return err
			}
			return tx.Delete(&platform).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Platform deleted successfully!")
			c.Redirect(http.StatusSeeOther, "/platforms")
		case utils.IsNotFound(err):
			renderNotFound(c, "Platform")
		default:
			renderServerError(c)
		}
	}
}
