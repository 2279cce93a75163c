package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/app/services"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/auth"
)

// sessionContextKey is the gin context key holding the resolved session
const sessionContextKey = "session"

// AuthMiddleware resolves the session cookie into an authenticated session
// and guards routes by role.
type AuthMiddleware struct {
	authService services.AuthService
	cookies     *auth.SessionCookies
}

// NewAuthMiddleware creates a new authentication middleware instance
func NewAuthMiddleware(authService services.AuthService, cookies *auth.SessionCookies) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		cookies:     cookies,
	}
}

// SessionAuth validates the session cookie against the session store and
// stores the resolved session in the request context. Requests without a
// valid session are rejected with 401.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := m.cookies.Read(c.Request)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		sess, err := m.authService.Resolve(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RoleRequired rejects authenticated requests whose session role does not
// match. Must run after SessionAuth.
func (m *AuthMiddleware) RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		if sess.Role != role {
			HandleAPIError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session placed by SessionAuth
func SessionFromContext(c *gin.Context) (auth.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return auth.Session{}, false
	}
	sess, ok := value.(auth.Session)
	return sess, ok
}
