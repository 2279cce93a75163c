package auth

import (
	"github.com/ecelik/coursereg/internal/app/models"
)

// Session is the authenticated context attached to a request: who the caller
// is and what role they hold. It is threaded explicitly into every service
// call rather than kept as ambient per-request state, so the services can be
// exercised without a live web server.
type Session struct {
	UserID   int64
	Username string
	Role     models.Role
}
