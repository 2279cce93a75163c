package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/app/services"
	"github.com/ecelik/coursereg/internal/middleware"
	"github.com/ecelik/coursereg/internal/pkg/auth"
	"github.com/ecelik/coursereg/internal/pkg/logger"
)

// AuthController handles login, logout and session introspection
type AuthController struct {
	authService services.AuthService
	cookies     *auth.SessionCookies
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookies *auth.SessionCookies) *AuthController {
	return &AuthController{
		authService: authService,
		cookies:     cookies,
	}
}

// Login authenticates a user and starts a session
// @Summary Log in
// @Description Verifies credentials, creates a server-side session and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.Response "Missing username or password"
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.cookies.Write(ctx.Writer, ctx.Request, session.Token); err != nil {
		logger.Error().Err(err).Msg("Failed to write session cookie")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Redirect: session.User.Role.LandingPath(),
		User:     dto.NewUserView(session.User),
	})
}

// Logout ends the current session
// @Summary Log out
// @Description Deletes the server-side session and expires the cookie. Succeeds even without a session.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response "Logged out"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, ok := c.cookies.Read(ctx.Request); ok {
		if err := c.authService.Logout(ctx.Request.Context(), token); err != nil {
			logger.Warn().Err(err).Msg("Failed to delete session row on logout")
		}
	}

	if err := c.cookies.Clear(ctx.Writer, ctx.Request); err != nil {
		logger.Warn().Err(err).Msg("Failed to clear session cookie")
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out"))
}

// CurrentUser returns the authenticated user
// @Summary Current user
// @Description Returns the user bound to the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CurrentUserResponse "Authenticated user"
// @Failure 401 {object} dto.Response "Not logged in"
// @Router /current-user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
		return
	}

	ctx.JSON(http.StatusOK, dto.CurrentUserResponse{
		Success: true,
		User: dto.UserView{
			ID:       sess.UserID,
			Username: sess.Username,
			UserType: int(sess.Role),
		},
	})
}
