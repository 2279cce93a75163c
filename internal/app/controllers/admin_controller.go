package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/app/services"
	"github.com/ecelik/coursereg/internal/middleware"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
)

// AdminController exposes the administrative console over users, courses
// and enrollments.
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ID"))
		return 0, false
	}
	return id, true
}

// ListUsers returns all accounts
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} dto.UserListResponse "All users"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	users, err := c.adminService.ListUsers(ctx.Request.Context(), sess)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{Success: true, Users: users})
}

// CreateUser creates an account
// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "New user"
// @Success 201 {object} dto.UserResponse "User created"
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 409 {object} dto.Response "Username already exists"
// @Router /admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username, password and user type are required"))
		return
	}

	user, err := c.adminService.CreateUser(ctx.Request.Context(), sess, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UserResponse{
		Success: true,
		Message: "User created",
		User:    dto.NewUserView(user),
	})
}

// UpdateUser updates an account
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.Response "User updated"
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 404 {object} dto.Response "User not found"
// @Failure 409 {object} dto.Response "Username already exists"
// @Router /admin/users/{id} [put]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if err := c.adminService.UpdateUser(ctx.Request.Context(), sess, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User updated"))
}

// DeleteUser removes an account
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.Response "User deleted"
// @Failure 400 {object} dto.Response "User still teaches courses"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 404 {object} dto.Response "User not found"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), sess, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User deleted"))
}

// CreateCourse creates a course
// @Summary Create course
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "New course"
// @Success 201 {object} dto.Response "Course created"
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 404 {object} dto.Response "Teacher not found"
// @Failure 409 {object} dto.Response "Course code already exists"
// @Router /admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course code, name, teacher and capacity are required"))
		return
	}

	if _, err := c.adminService.CreateCourse(ctx.Request.Context(), sess, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Course created"))
}

// UpdateCourse updates a course
// @Summary Update course
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "New course state"
// @Success 200 {object} dto.Response "Course updated"
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 404 {object} dto.Response "Course not found"
// @Failure 409 {object} dto.Response "Course code already exists"
// @Router /admin/courses/{id} [put]
func (c *AdminController) UpdateCourse(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course code, name, teacher and capacity are required"))
		return
	}

	if err := c.adminService.UpdateCourse(ctx.Request.Context(), sess, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course updated"))
}

// DeleteCourse removes a course and its enrollments
// @Summary Delete course
// @Tags admin
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.Response "Course deleted"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 404 {object} dto.Response "Course not found"
// @Router /admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteCourse(ctx.Request.Context(), sess, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course deleted"))
}

// ListEnrollments returns every enrollment
// @Summary List enrollments
// @Tags admin
// @Produce json
// @Success 200 {object} dto.EnrollmentListResponse "All enrollments"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Router /admin/enrollments [get]
func (c *AdminController) ListEnrollments(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	enrollments, err := c.adminService.ListEnrollments(ctx.Request.Context(), sess)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EnrollmentListResponse{Success: true, Enrollments: enrollments})
}

// DeleteEnrollment force-drops a student
// @Summary Delete enrollment
// @Tags admin
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.Response "Enrollment deleted"
// @Failure 401 {object} dto.Response "Not logged in"
// @Failure 403 {object} dto.Response "Not an admin"
// @Failure 404 {object} dto.Response "Enrollment not found"
// @Router /admin/enrollments/{id} [delete]
func (c *AdminController) DeleteEnrollment(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteEnrollment(ctx.Request.Context(), sess, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Enrollment deleted"))
}
