package controllers

import (
	"errors"
	"net/http"

	models "gamevault/models/postgres"
	"gamevault/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Rating is a pointer so that "required" means present, not non-zero.
type reviewForm struct {
	GameID       uint   `form:"game_id" binding:"required"`
	Rating       *int   `form:"rating" binding:"required"`
	ReviewText   string `form:"review_text"`
	ReviewerName string `form:"reviewer_name" binding:"required"`
}

// ListReviews renders all reviews with their game resolved.
func ListReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("Game").Find(&reviews).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "reviews.html", viewContext(c, gin.H{"Reviews": reviews}))
	}
}

// AddReviewForm renders the creation form with the game select.
func AddReviewForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []models.Game
		if err := db.Find(&games).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "add_review.html", viewContext(c, gin.H{"Games": games}))
	}
}

// AddReview creates a review from the submitted form. The referenced
// game must exist.
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form reviewForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "Game, rating and reviewer name are required!")
			c.Redirect(http.StatusSeeOther, "/reviews/add")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var game models.Game
			if err := tx.First(&game, form.GameID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrConstraint
				}
				return err
			}
			review := models.Review{
				GameID:       form.GameID,
				Rating:       *form.Rating,
				ReviewText:   form.ReviewText,
				ReviewerName: form.ReviewerName,
			}
			return tx.Create(&review).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Review added successfully!")
			c.Redirect(http.StatusSeeOther, "/reviews")
		case utils.IsConstraintViolation(err):
			utils.Flash(c, "danger", "Selected game does not exist!")
			c.Redirect(http.StatusSeeOther, "/reviews/add")
		default:
			renderServerError(c)
		}
	}
}

// EditReviewForm renders the edit form for an existing review.
func EditReviewForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Review")
			return
		}

		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			if utils.IsNotFound(err) {
				renderNotFound(c, "Review")
			} else {
				renderServerError(c)
			}
			return
		}

		var games []models.Game
		if err := db.Find(&games).Error; err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "edit_review.html", viewContext(c, gin.H{
			"Review": review,
			"Games":  games,
		}))
	}
}

// EditReview overwrites every field of an existing review.
func EditReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Review")
			return
		}

		var form reviewForm
		if err := c.ShouldBind(&form); err != nil {
			utils.Flash(c, "danger", "Game, rating and reviewer name are required!")
			c.Redirect(http.StatusSeeOther, "/reviews/edit/"+c.Param("id"))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var review models.Review
			if err := tx.First(&review, id).Error; err != nil {
				return err
			}
			var game models.Game
			if err := tx.First(&game, form.GameID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrConstraint
				}
				return err
			}
			review.GameID = form.GameID
			review.Rating = *form.Rating
			review.ReviewText = form.ReviewText
			review.ReviewerName = form.ReviewerName
			return tx.Save(&review).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Review updated successfully!")
			c.Redirect(http.StatusSeeOther, "/reviews")
		case utils.IsNotFound(err):
			renderNotFound(c, "Review")
		case utils.IsConstraintViolation(err):
			utils.Flash(c, "danger", "Selected game does not exist!")
			c.Redirect(http.StatusSeeOther, "/reviews/edit/"+c.Param("id"))
		default:
			renderServerError(c)
		}
	}
}

// DeleteReview removes a review. Nothing references reviews.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderNotFound(c, "Review")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var review models.Review
			if err := tx.First(&review, id).Error; err != nil {
				return err
			}
			return tx.Delete(&review).Error
		})

		switch {
		case err == nil:
			utils.Flash(c, "success", "Review deleted successfully!")
			c.Redirect(http.StatusSeeOther, "/reviews")
		case utils.IsNotFound(err):
			renderNotFound(c, "Review")
		default:
			renderServerError(c)
		}
	}
}
