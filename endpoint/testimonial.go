package endpoint

import (
	"net/http"
	"strconv"

	"github.com/from1to7/tutoring-backend/middleware"
	"github.com/from1to7/tutoring-backend/model"
	"github.com/from1to7/tutoring-backend/util"
	"github.com/gin-gonic/gin"
)

type testimonialListResponse struct {
	Success       bool                `json:"success"`
	Testimonials  []model.Testimonial `json:"testimonials"`
	AverageRating float64             `json:"averageRating"`
}

// CreateTestimonial godoc
// @Summary      Submit a testimonial
// @Description  Stores a rating (1-5) with an optional comment
// @Tags         Testimonial
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        rating formData int true "Rating between 1 and 5"
// @Param        comment formData string false "Free-text comment"
// @Success      200 {object} util.APIResponse "Testimonial stored"
// @Failure      400 {object} util.APIResponse "Rating out of range"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /testimonials [post]
func CreateTestimonial(c *gin.Context) {
	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil || rating < 1 || rating > 5 {
		util.CallUserError(c, "Rating must be between 1 and 5")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, "Database error")
		return
	}

	testimonial := model.Testimonial{
		Rating:  rating,
		Comment: optionalField(c, "comment"),
	}
	if err := db.Create(&testimonial).Error; err != nil {
		util.CallServerError(c, "Database error")
		return
	}

	util.LogTestimonialCreated(testimonial.ID, testimonial.Rating, c.ClientIP(), c.Request.UserAgent())
	util.CallSuccessOK(c)
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Description  Returns every testimonial newest-first plus the average rating
// @Tags         Testimonial
// @Produce      json
// @Success      200 {object} testimonialListResponse "Testimonials retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /testimonials [get]
func ListTestimonials(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, "Database error")
		return
	}

	// id breaks ties between rows created on the same timestamp tick.
	testimonials := []model.Testimonial{}
	if err := db.Order("created_at DESC, id DESC").Find(&testimonials).Error; err != nil {
		util.CallServerError(c, "Error retrieving testimonials")
		return
	}

	// Arithmetic mean over all stored ratings; 0 for an empty set.
	average := 0.0
	if len(testimonials) > 0 {
		sum := 0
		for _, row := range testimonials {
			sum += row.Rating
		}
		average = float64(sum) / float64(len(testimonials))
	}

	c.JSON(http.StatusOK, testimonialListResponse{
		Success:       true,
		Testimonials:  testimonials,
		AverageRating: average,
	})
}
