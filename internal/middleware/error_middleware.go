package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every error body has
// the shape {"success": false, "message": "..."}.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(messageFor(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrCourseFull):
		c.JSON(400, dto.NewErrorResponse("Course is full"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Invalid username or password"))
	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(401, dto.NewErrorResponse("Not logged in"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(403, dto.NewErrorResponse("Permission denied"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(404, dto.NewErrorResponse("Enrollment not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrNotEnrolled):
		c.JSON(404, dto.NewErrorResponse("Not enrolled in this course"))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(409, dto.NewErrorResponse("Already enrolled in this course"))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(409, dto.NewErrorResponse("Username already exists"))
	case errors.Is(err, apperrors.ErrCourseCodeExists):
		c.JSON(409, dto.NewErrorResponse("Course code already exists"))
	case errors.Is(err, apperrors.ErrCourseTeacherGone):
		c.JSON(409, dto.NewErrorResponse("Assigned teacher no longer exists"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse("Internal server error"))
	}
}

// messageFor surfaces a wrapped CustomError message when one exists
func messageFor(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
