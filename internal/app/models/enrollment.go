package models

import "time"

// Enrollment links one student to one course. The (student_id, course_id)
// pair is unique; a student cannot hold two enrollments for the same course.
type Enrollment struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"student_id" db:"student_id"`
	CourseID  int64 `json:"course_id" db:"course_id"`
	Grade     *int  `json:"grade" db:"grade"` // nil until a teacher assigns one

	// Relations (populated when needed)
	Course  *Course `json:"course,omitempty"`
	Student *User   `json:"student,omitempty"`
}

// Session is a server-side authenticated session row. The browser only ever
// holds the opaque token.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`

	User *User `json:"user,omitempty"`
}
