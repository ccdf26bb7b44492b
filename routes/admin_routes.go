package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/controllers"
	"github.com/wen-dev/wen_backend/middleware"
	"github.com/wen-dev/wen_backend/models"
)

// RegisterAdminRoutes sets up all admin-related routes
func RegisterAdminRoutes(e *echo.Echo, auth *controllers.AuthController, admin *controllers.AdminController, approval *controllers.ApprovalController, embedding *controllers.EmbeddingController) {
	// Admin routes group
	adminGroup := e.Group("/api/admin")

	// Public routes (no auth required)
	adminGroup.POST("/login", auth.Login)

	// Protected routes (require admin authentication)
	protected := adminGroup.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.Use(middleware.RequireRole(models.RoleAdmin))

	// User management routes
	protected.GET("/users", admin.GetAllUsers)
	protected.POST("/users", admin.CreateUser)
	protected.PUT("/users/:id/role", admin.UpdateUserRole)
	protected.DELETE("/users/:id", admin.DeleteUser)

	// Moderation routes
	protected.POST("/businesses/:id/approve", approval.ApproveBusiness)

	// Embedding queue routes
	protected.GET("/embedding-queue", embedding.GetQueue)
	protected.POST("/embedding-queue/sync", embedding.SyncEmbeddings)
}
