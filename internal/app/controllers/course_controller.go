package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/app/services"
	"github.com/ecelik/coursereg/internal/middleware"
)

// CourseController serves the public course catalog
type CourseController struct {
	enrollmentService services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(enrollmentService services.EnrollmentService) *CourseController {
	return &CourseController{
		enrollmentService: enrollmentService,
	}
}

// ListCourses returns the catalog
// @Summary List all courses
// @Description Returns every course with its teacher, schedule and live enrollment count
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CourseListResponse "Course catalog"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.enrollmentService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseListResponse{
		Success: true,
		Courses: courses,
	})
}
