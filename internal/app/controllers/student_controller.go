package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/app/services"
	"github.com/ecelik/coursereg/internal/middleware"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
)

// StudentController handles the student-facing enrollment operations
type StudentController struct {
	enrollmentService services.EnrollmentService
}

// NewStudentController creates a new StudentController
func NewStudentController(enrollmentService services.EnrollmentService) *StudentController {
	return &StudentController{
		enrollmentService: enrollmentService,
	}
}

// ListMyCourses returns the caller's enrollments
// @Summary List my courses
// @Description Returns the courses the authenticated student is enrolled in, with grades
// @Tags student
// @Produce json
// @Success 200 {object} dto.StudentCoursesResponse "Enrolled courses"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not a student"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /student/courses [get]
func (c *StudentController) ListMyCourses(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	courses, err := c.enrollmentService.ListStudentCourses(ctx.Request.Context(), sess)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentCoursesResponse{
		Success: true,
		Courses: courses,
	})
}

// Enroll adds the caller to a course
// @Summary Enroll in a course
// @Description Enrolls the authenticated student if the course has a free seat and the student is not already enrolled
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 200 {object} dto.Response "Enrolled"
// @Failure 400 {object} dto.Response "Course is full or invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not a student"
// @Failure 404 {object} dto.Response "Course not found"
// @Failure 409 {object} dto.Response "Already enrolled"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID is required"))
		return
	}

	if err := c.enrollmentService.Enroll(ctx.Request.Context(), sess, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Enrolled successfully"))
}

// Drop removes the caller from a course
// @Summary Drop a course
// @Description Removes the authenticated student's enrollment, discarding any recorded grade
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Course to drop"
// @Success 200 {object} dto.Response "Dropped"
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not a student"
// @Failure 404 {object} dto.Response "Not enrolled in this course"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /drop [post]
func (c *StudentController) Drop(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID is required"))
		return
	}

	if err := c.enrollmentService.Drop(ctx.Request.Context(), sess, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course dropped"))
}
