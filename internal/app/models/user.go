package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id" example:"1"`           // Unique identifier for the user
	Username string `json:"username" db:"username"`           // Unique login name, compared case-sensitively
	Password string `json:"-" db:"password"`                  // Bcrypt hash of the user's password (excluded from JSON)
	Role     Role   `json:"usertype" db:"role" example:"0"`   // 0 student, 1 teacher, 2 admin
}
