package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/santiv/proyecta/internal/app/controllers"
	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	projectController *controllers.ProjectController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/accounts/me", accountController.GetProfile)

		// Student self-service
		studentOnly := authenticated.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			studentOnly.PUT("/students/me", accountController.UpdateProfile)
			studentOnly.GET("/students/me/project", projectController.GetAssignedProject)
		}

		// Coordinator administration
		coordinatorOnly := authenticated.Group("")
		coordinatorOnly.Use(authMiddleware.RoleRequired(string(models.RoleCoordinator)))
		{
			coordinatorOnly.POST("/students", accountController.RegisterStudent)
			coordinatorOnly.POST("/projects", projectController.CreateProject)
			coordinatorOnly.PUT("/students/:email/project", projectController.AssignProject)
		}
	}
}
