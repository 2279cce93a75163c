package models

// Role defines the user role type. The numeric values are part of the wire
// format: clients receive them as the "usertype" field.
type Role int

const (
	RoleStudent Role = 0
	RoleTeacher Role = 1
	RoleAdmin   Role = 2
)

// String returns a human-readable role name for logging.
func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleTeacher:
		return "teacher"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// LandingPath returns the page a user of this role is redirected to after
// login.
func (r Role) LandingPath() string {
	switch r {
	case RoleTeacher:
		return "/teacher.html"
	case RoleAdmin:
		return "/admin.html"
	default:
		return "/student.html"
	}
}
