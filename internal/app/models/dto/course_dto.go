package dto

import "github.com/ecelik/coursereg/internal/app/models"

// CourseView is the catalog view of a course with its computed enrollment
// state. Field names follow the frontend contract ("time" is the schedule
// string).
type CourseView struct {
	ID            int64  `json:"id" example:"1"`
	CourseCode    string `json:"course_code" example:"CS162"`
	CourseName    string `json:"course_name" example:"Operating Systems"`
	TeacherName   string `json:"teacher_name" example:"teacher2"`
	Time          string `json:"time" example:"TTh 14:00-15:30"`
	Capacity      int    `json:"capacity" example:"25"`
	EnrolledCount int    `json:"enrolled_count" example:"12"`
	IsFull        bool   `json:"is_full" example:"false"`
}

// NewCourseView maps a course model (with counts populated) to its view.
func NewCourseView(c *models.Course) CourseView {
	return CourseView{
		ID:            c.ID,
		CourseCode:    c.Code,
		CourseName:    c.Name,
		TeacherName:   c.TeacherName,
		Time:          c.Schedule,
		Capacity:      c.Capacity,
		EnrolledCount: c.EnrolledCount,
		IsFull:        c.IsFull(),
	}
}

// CourseListResponse wraps the public course catalog
type CourseListResponse struct {
	Success bool         `json:"success" example:"true"`
	Courses []CourseView `json:"courses"`
}

// StudentCourse pairs a course with the caller's grade in it
type StudentCourse struct {
	Course CourseView `json:"course"`
	Grade  *int       `json:"grade"` // null until assigned
}

// StudentCoursesResponse wraps a student's enrollments
type StudentCoursesResponse struct {
	Success bool            `json:"success" example:"true"`
	Courses []StudentCourse `json:"courses"`
}

// RosterStudent is one roster row as seen by the course's teacher. ID is the
// enrollment id; the grade endpoint takes it back.
type RosterStudent struct {
	ID          int64  `json:"id" example:"7"`
	StudentName string `json:"student_name" example:"student1"`
	Grade       *int   `json:"grade"`
}

// TeacherCourse is a course taught by the caller together with its roster
type TeacherCourse struct {
	CourseView
	Students []RosterStudent `json:"students"`
}

// TeacherCoursesResponse wraps a teacher's courses and rosters
type TeacherCoursesResponse struct {
	Success bool            `json:"success" example:"true"`
	Courses []TeacherCourse `json:"courses"`
}

// EnrollRequest identifies the course to enroll in or drop
type EnrollRequest struct {
	CourseID int64 `json:"course_id" binding:"required" example:"1"`
}

// GradeRequest assigns a grade to an enrollment. Grade is a pointer so zero
// is a valid value.
type GradeRequest struct {
	EnrollmentID int64 `json:"enrollment_id" binding:"required" example:"7"`
	Grade        *int  `json:"grade" binding:"required" example:"95"`
}
