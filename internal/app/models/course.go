package models

// Course represents a course in the catalog. The teacher of record is a
// foreign key to the users table; teacher renames therefore never break the
// link between a teacher and their courses.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	Code      string `json:"course_code" db:"course_code"`
	Name      string `json:"course_name" db:"course_name"`
	TeacherID int64  `json:"teacher_id" db:"teacher_id"`
	Schedule  string `json:"time" db:"schedule"`
	Capacity  int    `json:"capacity" db:"capacity"`

	// Denormalized/computed fields (populated by list queries)
	TeacherName   string `json:"teacher_name,omitempty"`
	EnrolledCount int    `json:"enrolled_count"`
}

// IsFull reports whether the course has reached capacity. EnrolledCount must
// have been populated by the query that produced the course.
func (c *Course) IsFull() bool {
	return c.EnrolledCount >= c.Capacity
}
