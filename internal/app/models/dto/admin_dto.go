package dto

import "github.com/ecelik/coursereg/internal/app/models"

// CreateUserRequest creates a user through the admin console
type CreateUserRequest struct {
	Username string `json:"username" binding:"required" example:"teacher3"`
	Password string `json:"password" binding:"required" example:"secret"`
	UserType *int   `json:"usertype" binding:"required" example:"1"`
}

// UpdateUserRequest updates a user; empty fields are left unchanged
type UpdateUserRequest struct {
	Username string `json:"username" example:"teacher3"`
	Password string `json:"password" example:"newsecret"`
	UserType *int   `json:"usertype" example:"1"`
}

// UserListResponse wraps the admin user listing
type UserListResponse struct {
	Success bool       `json:"success" example:"true"`
	Users   []UserView `json:"users"`
}

// UserResponse wraps a single user
type UserResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message,omitempty"`
	User    UserView `json:"user"`
}

// CourseRequest creates or updates a course through the admin console
type CourseRequest struct {
	CourseCode string `json:"course_code" binding:"required" example:"CS162"`
	CourseName string `json:"course_name" binding:"required" example:"Operating Systems"`
	TeacherID  int64  `json:"teacher_id" binding:"required" example:"2"`
	Time       string `json:"time" example:"TTh 14:00-15:30"`
	Capacity   *int   `json:"capacity" binding:"required" example:"25"`
}

// EnrollmentView is the admin view of an enrollment row
type EnrollmentView struct {
	ID          int64  `json:"id" example:"7"`
	StudentID   int64  `json:"student_id" example:"4"`
	StudentName string `json:"student_name" example:"student1"`
	CourseID    int64  `json:"course_id" example:"1"`
	CourseCode  string `json:"course_code" example:"CS162"`
	Grade       *int   `json:"grade"`
}

// NewEnrollmentView maps an enrollment (with relations populated) to its
// admin view.
func NewEnrollmentView(e *models.Enrollment) EnrollmentView {
	view := EnrollmentView{
		ID:        e.ID,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		Grade:     e.Grade,
	}
	if e.Student != nil {
		view.StudentName = e.Student.Username
	}
	if e.Course != nil {
		view.CourseCode = e.Course.Code
	}
	return view
}

// EnrollmentListResponse wraps the admin enrollment listing
type EnrollmentListResponse struct {
	Success     bool             `json:"success" example:"true"`
	Enrollments []EnrollmentView `json:"enrollments"`
}
