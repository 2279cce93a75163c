package dto

import "github.com/ecelik/coursereg/internal/app/models"

// LoginRequest represents the login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"student1"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// UserView is the public view of a user. The role travels as the numeric
// "usertype" field (0 student, 1 teacher, 2 admin).
type UserView struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"student1"`
	UserType int    `json:"usertype" example:"0"`
}

// NewUserView maps a user model to its public view.
func NewUserView(u *models.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		UserType: int(u.Role),
	}
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Success  bool     `json:"success" example:"true"`
	Message  string   `json:"message" example:"Login successful"`
	Redirect string   `json:"redirect" example:"/student.html"`
	User     UserView `json:"user"`
}

// CurrentUserResponse wraps the authenticated user's public view
type CurrentUserResponse struct {
	Success bool     `json:"success" example:"true"`
	User    UserView `json:"user"`
}
