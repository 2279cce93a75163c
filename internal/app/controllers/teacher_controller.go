package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/app/services"
	"github.com/ecelik/coursereg/internal/middleware"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
)

// TeacherController handles roster viewing and grading
type TeacherController struct {
	enrollmentService services.EnrollmentService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(enrollmentService services.EnrollmentService) *TeacherController {
	return &TeacherController{
		enrollmentService: enrollmentService,
	}
}

// ListMyCourses returns the caller's courses with rosters
// @Summary List my taught courses
// @Description Returns the courses the authenticated teacher teaches, each with its student roster and grades
// @Tags teacher
// @Produce json
// @Success 200 {object} dto.TeacherCoursesResponse "Taught courses"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not a teacher"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /teacher/courses [get]
func (c *TeacherController) ListMyCourses(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	courses, err := c.enrollmentService.ListTeacherCourses(ctx.Request.Context(), sess)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherCoursesResponse{
		Success: true,
		Courses: courses,
	})
}

// SetGrade records a grade for an enrollment
// @Summary Record a grade
// @Description Sets the grade of an enrollment in a course taught by the authenticated teacher
// @Tags teacher
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Enrollment and grade"
// @Success 200 {object} dto.Response "Grade recorded"
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not the teacher of this course"
// @Failure 404 {object} dto.Response "Enrollment not found"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /grade [put]
func (c *TeacherController) SetGrade(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Enrollment ID and grade are required"))
		return
	}

	if err := c.enrollmentService.SetGrade(ctx.Request.Context(), sess, req.EnrollmentID, *req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Grade recorded"))
}
