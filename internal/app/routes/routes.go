package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecelik/coursereg/internal/app/controllers"
	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/login", authController.Login)
	api.POST("/logout", authController.Logout)
	api.GET("/courses", courseController.ListCourses)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/current-user", authController.CurrentUser)

		// Student routes
		student := authenticated.Group("")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.GET("/student/courses", studentController.ListMyCourses)
			student.POST("/enroll", studentController.Enroll)
			student.POST("/drop", studentController.Drop)
		}

		// Teacher routes
		teacher := authenticated.Group("")
		teacher.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacher.GET("/teacher/courses", teacherController.ListMyCourses)
			teacher.PUT("/grade", teacherController.SetGrade)
		}

		// Admin routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", adminController.ListUsers)
			admin.POST("/users", adminController.CreateUser)
			admin.PUT("/users/:id", adminController.UpdateUser)
			admin.DELETE("/users/:id", adminController.DeleteUser)

			admin.POST("/courses", adminController.CreateCourse)
			admin.PUT("/courses/:id", adminController.UpdateCourse)
			admin.DELETE("/courses/:id", adminController.DeleteCourse)

			admin.GET("/enrollments", adminController.ListEnrollments)
			admin.DELETE("/enrollments/:id", adminController.DeleteEnrollment)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger routes are set up in bootstrap.go already
}
